package appointment

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

// UpdateAppointmentInput substitui os campos editáveis.
// Tipo, aprovação e pagamento não mudam por aqui.
type UpdateAppointmentInput struct {
	ID         uint
	Date       string
	Time       string
	ClientName string
	Service    string
	Price      *float64
	EmployeeID *uint

	UserID *uint
}

type UpdateAppointment struct {
	repo   domain.Repository
	blocks BlockChecker
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	blocks BlockChecker,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		blocks: blocks,
		audit:  audit,
		log:    logger.OrNop(log).Named("appointment"),
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if !validators.IsDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !validators.IsTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_client")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.EmployeeID != nil {
		if _, err := uc.repo.GetEmployee(ctx, *in.EmployeeID); err != nil {
			return nil, err
		}
		if err := assertFree(ctx, uc.blocks, in.EmployeeID, in.Date, in.Time); err != nil {
			return nil, err
		}
	}

	client, err := uc.repo.GetOrCreateClient(ctx, name)
	if err != nil {
		return nil, err
	}

	ap.Date = in.Date
	ap.Time = in.Time
	ap.ClientID = &client.ID
	ap.ClientName = client.Name
	ap.Service = strings.TrimSpace(in.Service)
	ap.Price = in.Price
	ap.EmployeeID = in.EmployeeID
	ap.Employee = nil

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.log.Info("appointment updated", zap.Uint("appointment_id", ap.ID))
	return ap, nil
}
