package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type StudioConfigHandler struct {
	db    *gorm.DB
	cache cache.StudioConfigCache
	log   *zap.Logger
}

func NewStudioConfigHandler(db *gorm.DB, c cache.StudioConfigCache, log *zap.Logger) *StudioConfigHandler {
	if c == nil {
		c = cache.NoopStudioConfigCache{}
	}
	return &StudioConfigHandler{db: db, cache: c, log: logger.OrNop(log).Named("studio_config")}
}

type UpdateStudioConfigRequest struct {
	StudioName   string  `json:"studio_name"`
	StudioLogo   *string `json:"studio_logo"`
	PrimaryColor string  `json:"primary_color"`
	FontFamily   string  `json:"font_family"`
}

// Get nunca falha para o front: qualquer problema devolve os padrões.
func (h *StudioConfigHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if cfg, ok := h.cache.Get(ctx); ok {
		c.JSON(http.StatusOK, cfg)
		return
	}

	cfg := models.DefaultStudioConfig()

	var row models.StudioConfig
	err := h.db.WithContext(ctx).First(&row, models.StudioConfigID).Error
	switch {
	case err == nil:
		cfg = withDefaults(row)
		h.cache.Set(ctx, &cfg)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// linha ainda não criada: padrões
	default:
		h.log.Warn("studio config read failed, using defaults", zap.Error(err))
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *StudioConfigHandler) Update(c *gin.Context) {
	var req UpdateStudioConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	cfg := models.DefaultStudioConfig()
	if v := strings.TrimSpace(req.StudioName); v != "" {
		cfg.StudioName = v
	}
	if req.StudioLogo != nil {
		cfg.StudioLogo = strings.TrimSpace(*req.StudioLogo)
	}
	if v := strings.TrimSpace(req.PrimaryColor); v != "" {
		cfg.PrimaryColor = v
	}
	if v := strings.TrimSpace(req.FontFamily); v != "" {
		cfg.FontFamily = v
	}

	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&cfg).Error; err != nil {

		h.log.Error("studio config save failed", zap.Error(err))
		httperr.Internal(c, "failed_to_update_config", "Erro ao salvar configurações do estúdio.")
		return
	}

	h.cache.Invalidate(ctx)
	c.JSON(http.StatusOK, cfg)
}

func withDefaults(row models.StudioConfig) models.StudioConfig {
	def := models.DefaultStudioConfig()
	if row.StudioName == "" {
		row.StudioName = def.StudioName
	}
	if row.PrimaryColor == "" {
		row.PrimaryColor = def.PrimaryColor
	}
	if row.FontFamily == "" {
		row.FontFamily = def.FontFamily
	}
	return row
}
