package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// Filter é usado pelas listagens (dia, período, próximos).
type Filter struct {
	From       string
	To         string
	EmployeeID *uint
	Limit      int
}

type Repository interface {
	// -------- Employee --------
	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
	) (*models.Client, error)

	// FindClient tenta pelo id e depois pelo nome (sem caixa).
	// Retorna nil, nil quando não encontra.
	FindClient(
		ctx context.Context,
		id *uint,
		name string,
	) (*models.Client, error)

	// -------- Appointment --------
	// CreateAppointment grava o agendamento e, quando req != nil,
	// a solicitação pendente na mesma transação.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		req *models.ApprovalRequest,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	SetApproved(
		ctx context.Context,
		id uint,
		approved bool,
	) error

	// SetPaid grava o flag e, quando entry != nil, o histórico do cliente.
	SetPaid(
		ctx context.Context,
		id uint,
		paid bool,
		entry *models.ClientHistoryEntry,
	) error

	// -------- Listings --------
	ListAppointments(
		ctx context.Context,
		f Filter,
	) ([]models.Appointment, error)

	// -------- Approval requests --------
	ListPendingRequests(
		ctx context.Context,
	) ([]models.ApprovalRequest, error)

	GetRequest(
		ctx context.Context,
		id uint,
	) (*models.ApprovalRequest, error)

	// ApproveRequest marca o agendamento como aprovado e salva a solicitação.
	ApproveRequest(
		ctx context.Context,
		req *models.ApprovalRequest,
	) error

	// RejectRequest apaga o agendamento e salva a solicitação.
	RejectRequest(
		ctx context.Context,
		req *models.ApprovalRequest,
	) error
}
