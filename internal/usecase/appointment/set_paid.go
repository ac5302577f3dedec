package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type SetPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewSetPaid(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *SetPaid {
	return &SetPaid{
		repo:  repo,
		audit: audit,
		log:   logger.OrNop(log).Named("appointment"),
	}
}

// Execute troca o flag pago. Ao marcar como pago registra o pagamento
// no histórico do cliente, quando o cliente for encontrado (id, depois nome).
func (uc *SetPaid) Execute(ctx context.Context, id uint, paid bool, userID *uint) error {
	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return err
	}

	var entry *models.ClientHistoryEntry
	if paid {
		client, err := uc.repo.FindClient(ctx, ap.ClientID, ap.ClientName)
		if err != nil {
			return err
		}
		if client != nil {
			entry = domain.PaymentHistoryEntry(ap, client.ID)
		} else {
			uc.log.Warn("payment without resolvable client",
				zap.Uint("appointment_id", ap.ID),
				zap.String("client", ap.ClientName),
			)
		}
	}

	if err := uc.repo.SetPaid(ctx, id, paid, entry); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_paid_set",
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]any{"pago": paid, "historico": entry != nil},
	})
	return nil
}
