package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type MeHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMeHandler(db *gorm.DB, log *zap.Logger) *MeHandler {
	return &MeHandler{db: db, log: logger.OrNop(log).Named("me")}
}

type MeResponse struct {
	ID         uint             `json:"id"`
	Login      string           `json:"login"`
	Role       string           `json:"tipo"`
	EmployeeID *uint            `json:"funcionario_id"`
	Employee   *models.Employee `json:"funcionario"`
}

// GetMe devolve o usuário do token e, quando houver, o funcionário vinculado.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		httperr.Unauthorized(c, "user_not_in_context", "Usuário não autenticado.")
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).
		Preload("Employee").
		First(&user, *userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return
		}
		respondError(c, h.log, err, "failed_to_load_user", "Erro ao carregar usuário.")
		return
	}

	httpresp.OK(c, MeResponse{
		ID:         user.ID,
		Login:      user.Login,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
		Employee:   user.Employee,
	})
}
