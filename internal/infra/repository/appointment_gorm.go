package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// notFound troca ErrRecordNotFound pelo erro de negócio.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, notFound(err, "employee_not_found")
	}
	return &emp, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) findClientByName(
	ctx context.Context,
	name string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("LOWER(nome) = LOWER(?)", strings.TrimSpace(name)).
		Order("id ASC").
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
) (*models.Client, error) {

	client, err := r.findClientByName(ctx, name)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = &models.Client{
		Name:   strings.TrimSpace(name),
		Status: models.ClientStatusPreRegistered,
	}
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func (r *AppointmentGormRepository) FindClient(
	ctx context.Context,
	id *uint,
	name string,
) (*models.Client, error) {

	if id != nil {
		var client models.Client
		err := r.db.WithContext(ctx).First(&client, *id).Error
		if err == nil {
			return &client, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if strings.TrimSpace(name) == "" {
		return nil, nil
	}

	client, err := r.findClientByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return client, err
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	req *models.ApprovalRequest,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(ap).Error; err != nil {
			return err
		}
		if req == nil {
			return nil
		}
		req.AppointmentID = ap.ID
		return tx.Create(req).Error
	})
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&ap, id).Error; err != nil {
		return nil, notFound(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

func (r *AppointmentGormRepository) SetApproved(
	ctx context.Context,
	id uint,
	approved bool,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("aprovado", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

func (r *AppointmentGormRepository) SetPaid(
	ctx context.Context,
	id uint,
	paid bool,
	entry *models.ClientHistoryEntry,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Appointment{}).
			Where("id = ?", id).
			Update("pago", paid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if entry == nil {
			return nil
		}
		return tx.Create(entry).Error
	})
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.Filter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("agendamentos.*").
		Joins("LEFT JOIN funcionarios f ON f.id = agendamentos.funcionario_id").
		Preload("Employee")

	switch {
	case f.From != "" && f.To != "":
		q = q.Where("agendamentos.data BETWEEN ? AND ?", f.From, f.To)
	case f.From != "":
		q = q.Where("agendamentos.data >= ?", f.From)
	}

	if f.EmployeeID != nil {
		q = q.Where("agendamentos.funcionario_id = ?", *f.EmployeeID)
	}

	q = q.Order("agendamentos.data ASC, agendamentos.horario ASC, f.nome ASC")

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Approval requests
// --------------------------------------------------

func (r *AppointmentGormRepository) ListPendingRequests(
	ctx context.Context,
) ([]models.ApprovalRequest, error) {

	var reqs []models.ApprovalRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.RequestPending)).
		Order("data_solicitacao DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *AppointmentGormRepository) GetRequest(
	ctx context.Context,
	id uint,
) (*models.ApprovalRequest, error) {

	var req models.ApprovalRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, notFound(err, "request_not_found")
	}
	return &req, nil
}

// resolveRequest só troca o status se ainda estiver pendente.
func resolveRequest(tx *gorm.DB, req *models.ApprovalRequest) error {
	res := tx.Model(&models.ApprovalRequest{}).
		Where("id = ? AND status = ?", req.ID, string(domain.RequestPending)).
		Update("status", req.Status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("request_already_resolved")
	}
	return nil
}

func (r *AppointmentGormRepository) ApproveRequest(
	ctx context.Context,
	req *models.ApprovalRequest,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveRequest(tx, req); err != nil {
			return err
		}
		return tx.Model(&models.Appointment{}).
			Where("id = ?", req.AppointmentID).
			Update("aprovado", true).Error
	})
}

func (r *AppointmentGormRepository) RejectRequest(
	ctx context.Context,
	req *models.ApprovalRequest,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveRequest(tx, req); err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, req.AppointmentID).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
