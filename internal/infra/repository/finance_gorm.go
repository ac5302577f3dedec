package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/finance"
)

type FinanceGormRepository struct {
	db *gorm.DB
}

func NewFinanceGormRepository(db *gorm.DB) *FinanceGormRepository {
	return &FinanceGormRepository{db: db}
}

type entryRow struct {
	EmployeeID   *uint    `gorm:"column:funcionario_id"`
	EmployeeName *string  `gorm:"column:nome"`
	PercStudio   *float64 `gorm:"column:perc_estudio"`
	PercEmployee *float64 `gorm:"column:perc_funcionario"`
	Price        *float64 `gorm:"column:valor_previsto"`
	Type         string   `gorm:"column:tipo"`
}

func (r *FinanceGormRepository) ListPaidEntries(ctx context.Context, q domain.Query) ([]domain.Entry, error) {
	tx := r.db.WithContext(ctx).
		Table("agendamentos a").
		Select("a.funcionario_id, f.nome, f.perc_estudio, f.perc_funcionario, a.valor_previsto, a.tipo").
		Joins("LEFT JOIN funcionarios f ON f.id = a.funcionario_id").
		Where("a.pago = ?", true).
		Where("a.data BETWEEN ? AND ?", q.From, q.To)

	if q.ApprovedOnly {
		tx = tx.Where("a.aprovado = ?", true)
	}
	if q.EmployeeID != nil {
		tx = tx.Where("a.funcionario_id = ?", *q.EmployeeID)
	}
	if q.Type != "" {
		tx = tx.Where("LOWER(a.tipo) = ?", strings.ToLower(q.Type))
	}

	var rows []entryRow
	if err := tx.Order("a.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		e := domain.Entry{Type: row.Type}
		if row.Price != nil {
			e.Price = *row.Price
		}
		// funcionário removido conta como sem funcionário
		if row.EmployeeID != nil && row.EmployeeName != nil {
			e.EmployeeID = row.EmployeeID
			e.EmployeeName = *row.EmployeeName
			e.PercStudio = deref(row.PercStudio)
			e.PercEmployee = deref(row.PercEmployee)
		}
		out = append(out, e)
	}
	return out, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

var _ domain.Repository = (*FinanceGormRepository)(nil)
