package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// Seed garante o usuário gestor e a linha de configuração id = 1.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	tx := db.WithContext(ctx)

	studio := models.DefaultStudioConfig()
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&studio).Error; err != nil {
		return fmt.Errorf("seed config: %w", err)
	}

	var existing models.User
	err := tx.Where("login = ?", cfg.ManagerLogin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed manager lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.ManagerPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed manager hash: %w", err)
	}

	manager := models.User{
		Login:        cfg.ManagerLogin,
		PasswordHash: string(hash),
		Role:         models.UserRoleSuperadmin,
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&manager).Error; err != nil {
		return fmt.Errorf("seed manager: %w", err)
	}

	log.Info("manager user created", zap.String("login", manager.Login))
	return nil
}
