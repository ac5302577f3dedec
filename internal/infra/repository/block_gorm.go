package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/block"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type BlockGormRepository struct {
	db *gorm.DB
}

func NewBlockGormRepository(db *gorm.DB) *BlockGormRepository {
	return &BlockGormRepository{db: db}
}

func (r *BlockGormRepository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BlockGormRepository) ListForEmployeeDay(ctx context.Context, employeeID uint, date string) ([]models.ScheduleBlock, error) {
	var rows []models.ScheduleBlock
	if err := r.db.WithContext(ctx).
		Where("funcionario_id = ? AND data = ?", employeeID, date).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BlockGormRepository) ListForEmployee(ctx context.Context, employeeID uint) ([]models.ScheduleBlock, error) {
	var rows []models.ScheduleBlock
	if err := r.db.WithContext(ctx).
		Where("funcionario_id = ?", employeeID).
		Order("data DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type activeBlockRow struct {
	ID           uint      `gorm:"column:id"`
	EmployeeID   uint      `gorm:"column:funcionario_id"`
	Date         string    `gorm:"column:data"`
	Kind         string    `gorm:"column:tipo_bloqueio"`
	Times        string    `gorm:"column:horarios_bloqueados"`
	Reason       string    `gorm:"column:motivo"`
	CreatedAt    time.Time `gorm:"column:criado_em"`
	EmployeeName string    `gorm:"column:funcionario_nome"`
}

func (r *BlockGormRepository) ListActive(ctx context.Context, fromDate string) ([]domain.ActiveBlock, error) {
	var rows []activeBlockRow
	if err := r.db.WithContext(ctx).
		Table("bloqueios b").
		Select("b.id, b.funcionario_id, b.data, b.tipo_bloqueio, b.horarios_bloqueados, b.motivo, b.criado_em, f.nome AS funcionario_nome").
		Joins("INNER JOIN funcionarios f ON f.id = b.funcionario_id").
		Where("b.data >= ?", fromDate).
		Order("b.data ASC, f.nome ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ActiveBlock, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ActiveBlock{
			ScheduleBlock: models.ScheduleBlock{
				ID:         row.ID,
				EmployeeID: row.EmployeeID,
				Date:       row.Date,
				Kind:       row.Kind,
				Times:      row.Times,
				Reason:     row.Reason,
				CreatedAt:  row.CreatedAt,
			},
			EmployeeName: row.EmployeeName,
		})
	}
	return out, nil
}

type historyRow struct {
	ID           uint      `gorm:"column:id"`
	ManagerID    uint      `gorm:"column:gestor_id"`
	EmployeeID   uint      `gorm:"column:funcionario_id"`
	Date         string    `gorm:"column:data"`
	Kind         string    `gorm:"column:tipo_bloqueio"`
	Times        string    `gorm:"column:horarios_bloqueados"`
	Action       string    `gorm:"column:acao"`
	Reason       string    `gorm:"column:motivo"`
	CreatedAt    time.Time `gorm:"column:criado_em"`
	ManagerLogin *string   `gorm:"column:gestor_login"`
	EmployeeName *string   `gorm:"column:funcionario_nome"`
}

func (r *BlockGormRepository) ListHistory(ctx context.Context, employeeID uint) ([]domain.HistoryRow, error) {
	var rows []historyRow
	if err := r.db.WithContext(ctx).
		Table("bloqueios_historico h").
		Select("h.id, h.gestor_id, h.funcionario_id, h.data, h.tipo_bloqueio, h.horarios_bloqueados, h.acao, h.motivo, h.criado_em, u.login AS gestor_login, f.nome AS funcionario_nome").
		Joins("LEFT JOIN usuarios u ON u.id = h.gestor_id").
		Joins("LEFT JOIN funcionarios f ON f.id = h.funcionario_id").
		Where("h.funcionario_id = ?", employeeID).
		Order("h.criado_em DESC, h.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.HistoryRow, 0, len(rows))
	for _, row := range rows {
		hr := domain.HistoryRow{
			BlockHistory: models.BlockHistory{
				ID:         row.ID,
				ManagerID:  row.ManagerID,
				EmployeeID: row.EmployeeID,
				Date:       row.Date,
				Kind:       row.Kind,
				Times:      row.Times,
				Action:     row.Action,
				Reason:     row.Reason,
				CreatedAt:  row.CreatedAt,
			},
		}
		if row.ManagerLogin != nil {
			hr.ManagerLogin = *row.ManagerLogin
		}
		if row.EmployeeName != nil {
			hr.EmployeeName = *row.EmployeeName
		}
		out = append(out, hr)
	}
	return out, nil
}

func (r *BlockGormRepository) Get(ctx context.Context, id uint) (*models.ScheduleBlock, error) {
	var b models.ScheduleBlock
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err, "block_not_found")
	}
	return &b, nil
}

func (r *BlockGormRepository) Create(ctx context.Context, b *models.ScheduleBlock, h *models.BlockHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		if h == nil {
			return nil
		}
		return tx.Create(h).Error
	})
}

func (r *BlockGormRepository) Update(ctx context.Context, b *models.ScheduleBlock) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BlockGormRepository) Delete(ctx context.Context, id uint, h *models.BlockHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.ScheduleBlock{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("block_not_found")
		}
		if h == nil {
			return nil
		}
		return tx.Create(h).Error
	})
}

var _ domain.Repository = (*BlockGormRepository)(nil)
