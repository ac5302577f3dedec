// Package appointmenttest traz um Repository fake para testes de use case
// e handler. Cada método delega para o Fn correspondente quando definido.
package appointmenttest

import (
	"context"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type Repository struct {
	GetEmployeeFn         func(ctx context.Context, id uint) (*models.Employee, error)
	GetOrCreateClientFn   func(ctx context.Context, name string) (*models.Client, error)
	FindClientFn          func(ctx context.Context, id *uint, name string) (*models.Client, error)
	CreateAppointmentFn   func(ctx context.Context, ap *models.Appointment, req *models.ApprovalRequest) error
	GetAppointmentFn      func(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointmentFn   func(ctx context.Context, ap *models.Appointment) error
	DeleteAppointmentFn   func(ctx context.Context, id uint) error
	SetApprovedFn         func(ctx context.Context, id uint, approved bool) error
	SetPaidFn             func(ctx context.Context, id uint, paid bool, entry *models.ClientHistoryEntry) error
	ListAppointmentsFn    func(ctx context.Context, f domain.Filter) ([]models.Appointment, error)
	ListPendingRequestsFn func(ctx context.Context) ([]models.ApprovalRequest, error)
	GetRequestFn          func(ctx context.Context, id uint) (*models.ApprovalRequest, error)
	ApproveRequestFn      func(ctx context.Context, req *models.ApprovalRequest) error
	RejectRequestFn       func(ctx context.Context, req *models.ApprovalRequest) error
}

func (f *Repository) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	if f.GetEmployeeFn != nil {
		return f.GetEmployeeFn(ctx, id)
	}
	return nil, httperr.ErrBusiness("employee_not_found")
}

func (f *Repository) GetOrCreateClient(ctx context.Context, name string) (*models.Client, error) {
	if f.GetOrCreateClientFn != nil {
		return f.GetOrCreateClientFn(ctx, name)
	}
	return &models.Client{ID: 1, Name: name, Status: models.ClientStatusPreRegistered}, nil
}

func (f *Repository) FindClient(ctx context.Context, id *uint, name string) (*models.Client, error) {
	if f.FindClientFn != nil {
		return f.FindClientFn(ctx, id, name)
	}
	return nil, nil
}

func (f *Repository) CreateAppointment(ctx context.Context, ap *models.Appointment, req *models.ApprovalRequest) error {
	if f.CreateAppointmentFn != nil {
		return f.CreateAppointmentFn(ctx, ap, req)
	}
	return nil
}

func (f *Repository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.GetAppointmentFn != nil {
		return f.GetAppointmentFn(ctx, id)
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *Repository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.UpdateAppointmentFn != nil {
		return f.UpdateAppointmentFn(ctx, ap)
	}
	return nil
}

func (f *Repository) DeleteAppointment(ctx context.Context, id uint) error {
	if f.DeleteAppointmentFn != nil {
		return f.DeleteAppointmentFn(ctx, id)
	}
	return nil
}

func (f *Repository) SetApproved(ctx context.Context, id uint, approved bool) error {
	if f.SetApprovedFn != nil {
		return f.SetApprovedFn(ctx, id, approved)
	}
	return nil
}

func (f *Repository) SetPaid(ctx context.Context, id uint, paid bool, entry *models.ClientHistoryEntry) error {
	if f.SetPaidFn != nil {
		return f.SetPaidFn(ctx, id, paid, entry)
	}
	return nil
}

func (f *Repository) ListAppointments(ctx context.Context, filter domain.Filter) ([]models.Appointment, error) {
	if f.ListAppointmentsFn != nil {
		return f.ListAppointmentsFn(ctx, filter)
	}
	return nil, nil
}

func (f *Repository) ListPendingRequests(ctx context.Context) ([]models.ApprovalRequest, error) {
	if f.ListPendingRequestsFn != nil {
		return f.ListPendingRequestsFn(ctx)
	}
	return nil, nil
}

func (f *Repository) GetRequest(ctx context.Context, id uint) (*models.ApprovalRequest, error) {
	if f.GetRequestFn != nil {
		return f.GetRequestFn(ctx, id)
	}
	return nil, httperr.ErrBusiness("request_not_found")
}

func (f *Repository) ApproveRequest(ctx context.Context, req *models.ApprovalRequest) error {
	if f.ApproveRequestFn != nil {
		return f.ApproveRequestFn(ctx, req)
	}
	return nil
}

func (f *Repository) RejectRequest(ctx context.Context, req *models.ApprovalRequest) error {
	if f.RejectRequestFn != nil {
		return f.RejectRequestFn(ctx, req)
	}
	return nil
}

var _ domain.Repository = (*Repository)(nil)
