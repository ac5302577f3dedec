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

type UpdateBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewUpdateBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateBlock {
	return &UpdateBlock{
		repo:  repo,
		audit: audit,
		log:   logger.OrNop(log).Named("block"),
	}
}

// Execute aplica a atualização parcial. Tipo e horários são revalidados
// juntos, usando os valores atuais para o que não veio.
func (uc *UpdateBlock) Execute(
	ctx context.Context,
	id uint,
	ch domain.Changes,
	userID *uint,
) (*models.ScheduleBlock, error) {

	if ch.Empty() {
		return nil, httperr.ErrBusiness("nothing_to_update")
	}

	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if ch.Date != nil {
		if !validators.IsDate(*ch.Date) {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		b.Date = *ch.Date
	}

	if ch.Kind != nil || ch.Times != nil {
		kind := b.Kind
		if ch.Kind != nil {
			kind = *ch.Kind
		}

		times := ch.Times
		if times == nil && kind == b.Kind {
			current, err := domain.DecodeTimes(b.Times)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_block_times")
			}
			times = current
		}

		raw, err := domain.Normalize(kind, times)
		if err != nil {
			return nil, err
		}
		b.Kind = kind
		b.Times = raw
	}

	if ch.Reason != nil {
		b.Reason = strings.TrimSpace(*ch.Reason)
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "block_updated",
		Entity:   "schedule_block",
		EntityID: &b.ID,
	})

	uc.log.Info("block updated", zap.Uint("block_id", b.ID))
	return b, nil
}
