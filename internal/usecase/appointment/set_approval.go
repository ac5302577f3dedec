package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
)

// SetApproval é a troca direta do flag, sem passar pela solicitação.
type SetApproval struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetApproval(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetApproval {
	return &SetApproval{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetApproval) Execute(ctx context.Context, id uint, approved bool, userID *uint) error {
	if err := uc.repo.SetApproved(ctx, id, approved); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_approval_set",
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]any{"aprovado": approved},
	})
	return nil
}
