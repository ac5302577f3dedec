package block

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/block"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBlockInput struct {
	EmployeeID uint
	Date       string
	Kind       string
	Times      []string
	Reason     string

	// preenchido nas rotas do gestor: grava histórico "bloquear"
	ManagerID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCreateBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateBlock {
	return &CreateBlock{
		repo:  repo,
		audit: audit,
		log:   logger.OrNop(log).Named("block"),
	}
}

func (uc *CreateBlock) Execute(
	ctx context.Context,
	in CreateBlockInput,
) (*models.ScheduleBlock, error) {

	if !validators.IsDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	times, err := domain.Normalize(in.Kind, in.Times)
	if err != nil {
		return nil, err
	}

	ok, err := uc.repo.EmployeeExists(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	b := &models.ScheduleBlock{
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		Kind:       in.Kind,
		Times:      times,
		Reason:     strings.TrimSpace(in.Reason),
	}

	var hist *models.BlockHistory
	if in.ManagerID != nil {
		hist = &models.BlockHistory{
			ManagerID:  *in.ManagerID,
			EmployeeID: b.EmployeeID,
			Date:       b.Date,
			Kind:       b.Kind,
			Times:      b.Times,
			Action:     models.BlockActionBlock,
			Reason:     b.Reason,
		}
	}

	if err := uc.repo.Create(ctx, b, hist); err != nil {
		uc.log.Error("create block failed", zap.Uint("employee_id", in.EmployeeID), zap.Error(err))
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ManagerID,
		Action:   "block_created",
		Entity:   "schedule_block",
		EntityID: &b.ID,
		Metadata: map[string]any{"funcionario_id": b.EmployeeID, "data": b.Date, "tipo": b.Kind},
	})

	uc.log.Info("block created",
		zap.Uint("block_id", b.ID),
		zap.Uint("employee_id", b.EmployeeID),
		zap.String("date", b.Date),
		zap.String("kind", b.Kind),
	)

	return b, nil
}
