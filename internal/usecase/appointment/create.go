package appointment

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/block"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

// BlockChecker é satisfeito por usecase/block.CheckBlock.
type BlockChecker interface {
	Execute(ctx context.Context, employeeID uint, date, hhmm string) (block.Result, error)
}

// assertFree devolve date_blocked / time_blocked quando há bloqueio.
func assertFree(ctx context.Context, blocks BlockChecker, employeeID *uint, date, hhmm string) error {
	if employeeID == nil {
		return nil
	}
	res, err := blocks.Execute(ctx, *employeeID, date, hhmm)
	if err != nil {
		return err
	}
	return block.ConflictError(res, date, hhmm)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Date       string
	Time       string
	ClientName string
	Service    string
	Type       string
	Price      *float64
	EmployeeID *uint

	// usuário autenticado, só para auditoria
	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	blocks BlockChecker
	audit  *audit.Dispatcher
	clock  *timezone.Clock
	log    *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	blocks BlockChecker,
	audit *audit.Dispatcher,
	clock *timezone.Clock,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		blocks: blocks,
		audit:  audit,
		clock:  clock,
		log:    logger.OrNop(log).Named("appointment"),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Formato
	// --------------------------------------------------
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

	// --------------------------------------------------
	// 2️⃣ Funcionário + bloqueio de agenda
	// --------------------------------------------------
	var emp *models.Employee
	if in.EmployeeID != nil {
		var err error
		emp, err = uc.repo.GetEmployee(ctx, *in.EmployeeID)
		if err != nil {
			return nil, err
		}
		if err := assertFree(ctx, uc.blocks, in.EmployeeID, in.Date, in.Time); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 3️⃣ Cliente (get or create, pré-cadastro)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(ctx, name)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Agendamento (+ solicitação quando precisa aprovar)
	// --------------------------------------------------
	ap := &models.Appointment{
		Date:       in.Date,
		Time:       in.Time,
		ClientID:   &client.ID,
		ClientName: client.Name,
		EmployeeID: in.EmployeeID,
		Service:    strings.TrimSpace(in.Service),
		Type:       domain.NormalizeType(in.Type),
		Price:      in.Price,
		Approved:   domain.ResolveApproval(emp),
	}

	var req *models.ApprovalRequest
	if !ap.Approved {
		req = domain.NewApprovalRequest(ap, uc.clock.Now())
	}

	if err := uc.repo.CreateAppointment(ctx, ap, req); err != nil {
		uc.log.Error("create appointment failed", zap.String("date", in.Date), zap.Error(err))
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"aprovado": ap.Approved},
	})

	uc.log.Info("appointment created",
		zap.Uint("appointment_id", ap.ID),
		zap.String("date", ap.Date),
		zap.String("time", ap.Time),
		zap.Bool("approved", ap.Approved),
	)

	return ap, nil
}
