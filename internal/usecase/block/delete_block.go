package block

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/block"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type DeleteBlockInput struct {
	BlockID uint

	// rotas do gestor: grava histórico "desbloquear"
	ManagerID *uint
	Reason    string
}

type DeleteBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewDeleteBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *DeleteBlock {
	return &DeleteBlock{
		repo:  repo,
		audit: audit,
		log:   logger.OrNop(log).Named("block"),
	}
}

func (uc *DeleteBlock) Execute(ctx context.Context, in DeleteBlockInput) error {
	var hist *models.BlockHistory

	if in.ManagerID != nil {
		b, err := uc.repo.Get(ctx, in.BlockID)
		if err != nil {
			return err
		}
		hist = &models.BlockHistory{
			ManagerID:  *in.ManagerID,
			EmployeeID: b.EmployeeID,
			Date:       b.Date,
			Kind:       b.Kind,
			Times:      b.Times,
			Action:     models.BlockActionUnblock,
			Reason:     strings.TrimSpace(in.Reason),
		}
	}

	if err := uc.repo.Delete(ctx, in.BlockID, hist); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ManagerID,
		Action:   "block_deleted",
		Entity:   "schedule_block",
		EntityID: &in.BlockID,
	})

	uc.log.Info("block deleted", zap.Uint("block_id", in.BlockID), zap.Bool("by_manager", in.ManagerID != nil))
	return nil
}
