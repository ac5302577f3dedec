package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		log:    logger.OrNop(log).Named("auth"),
		now:    time.Now,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

type LoginResponse struct {
	ID         uint   `json:"id"`
	Login      string `json:"login"`
	Role       string `json:"tipo"`
	EmployeeID *uint  `json:"funcionario_id"`
	Token      string `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	login := strings.TrimSpace(req.Login)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("login = ?", login).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Usuário ou senha inválidos.")
			return
		}
		h.log.Error("login lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro ao autenticar.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.log.Info("login rejected", zap.String("login", login))
		httperr.Unauthorized(c, "invalid_credentials", "Usuário ou senha inválidos.")
		return
	}

	token, err := middleware.SignToken(h.config.JWTSecret, user.ID, user.Login, user.Role, user.EmployeeID, h.now())
	if err != nil {
		h.log.Error("token signing failed", zap.Error(err))
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		ID:         user.ID,
		Login:      user.Login,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
		Token:      token,
	})
}
