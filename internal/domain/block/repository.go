package block

import (
	"context"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// ActiveBlock é a linha de /bloqueios/ativos (com nome do funcionário).
type ActiveBlock struct {
	models.ScheduleBlock
	EmployeeName string
}

// HistoryRow é a linha de histórico com login do gestor e nome do funcionário.
type HistoryRow struct {
	models.BlockHistory
	ManagerLogin string
	EmployeeName string
}

// Changes é a atualização parcial de um bloqueio.
type Changes struct {
	Date   *string
	Kind   *string
	Times  []string
	Reason *string
}

func (c Changes) Empty() bool {
	return c.Date == nil && c.Kind == nil && c.Times == nil && c.Reason == nil
}

type Repository interface {
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)

	ListForEmployeeDay(ctx context.Context, employeeID uint, date string) ([]models.ScheduleBlock, error)
	ListForEmployee(ctx context.Context, employeeID uint) ([]models.ScheduleBlock, error)
	ListActive(ctx context.Context, fromDate string) ([]ActiveBlock, error)
	ListHistory(ctx context.Context, employeeID uint) ([]HistoryRow, error)

	Get(ctx context.Context, id uint) (*models.ScheduleBlock, error)

	// Create grava o bloqueio e, quando h != nil, o histórico na mesma transação.
	Create(ctx context.Context, b *models.ScheduleBlock, h *models.BlockHistory) error
	Update(ctx context.Context, b *models.ScheduleBlock) error

	// Delete remove o bloqueio e, quando h != nil, grava o histórico.
	Delete(ctx context.Context, id uint, h *models.BlockHistory) error
}
