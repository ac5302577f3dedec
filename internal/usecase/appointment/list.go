package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

// UpcomingLimit: o dashboard mostra os 5 próximos.
const UpcomingLimit = 5

type ListAppointments struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListAppointments(
	repo domain.Repository,
	clock *timezone.Clock,
) *ListAppointments {
	return &ListAppointments{
		repo:  repo,
		clock: clock,
	}
}

// ByDay lista o dia, opcionalmente de um funcionário.
func (uc *ListAppointments) ByDay(
	ctx context.Context,
	date string,
	employeeID *uint,
) ([]dto.AppointmentDTO, error) {

	if !validators.IsDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	return uc.list(ctx, domain.Filter{From: date, To: date, EmployeeID: employeeID})
}

func (uc *ListAppointments) ByPeriod(
	ctx context.Context,
	from, to string,
	employeeID *uint,
) ([]dto.AppointmentDTO, error) {

	if !validators.IsDate(from) || !validators.IsDate(to) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if from > to {
		return nil, httperr.ErrBusiness("invalid_period")
	}
	return uc.list(ctx, domain.Filter{From: from, To: to, EmployeeID: employeeID})
}

// Upcoming: a partir de hoje (fuso do estúdio), no máximo UpcomingLimit.
func (uc *ListAppointments) Upcoming(
	ctx context.Context,
	employeeID *uint,
) ([]dto.AppointmentDTO, error) {

	return uc.list(ctx, domain.Filter{
		From:       uc.clock.Today(),
		EmployeeID: employeeID,
		Limit:      UpcomingLimit,
	})
}

func (uc *ListAppointments) list(ctx context.Context, f domain.Filter) ([]dto.AppointmentDTO, error) {
	apps, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentDTOs(apps), nil
}
