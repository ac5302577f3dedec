package block

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/block"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type memoryRepo struct {
	employees map[uint]string
	blocks    map[uint]*models.ScheduleBlock
	history   []models.BlockHistory
	nextID    uint

	createErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		employees: map[uint]string{1: "Rafa", 2: "Bia"},
		blocks:    map[uint]*models.ScheduleBlock{},
	}
}

func (m *memoryRepo) EmployeeExists(_ context.Context, id uint) (bool, error) {
	_, ok := m.employees[id]
	return ok, nil
}

func (m *memoryRepo) ListForEmployeeDay(_ context.Context, employeeID uint, date string) ([]models.ScheduleBlock, error) {
	var out []models.ScheduleBlock
	for _, b := range m.sorted() {
		if b.EmployeeID == employeeID && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListForEmployee(_ context.Context, employeeID uint) ([]models.ScheduleBlock, error) {
	var out []models.ScheduleBlock
	for _, b := range m.sorted() {
		if b.EmployeeID == employeeID {
			out = append(out, *b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (m *memoryRepo) ListActive(_ context.Context, from string) ([]domain.ActiveBlock, error) {
	var out []domain.ActiveBlock
	for _, b := range m.sorted() {
		name, ok := m.employees[b.EmployeeID]
		if ok && b.Date >= from {
			out = append(out, domain.ActiveBlock{ScheduleBlock: *b, EmployeeName: name})
		}
	}
	return out, nil
}

func (m *memoryRepo) ListHistory(_ context.Context, employeeID uint) ([]domain.HistoryRow, error) {
	var out []domain.HistoryRow
	for i := len(m.history) - 1; i >= 0; i-- {
		h := m.history[i]
		if h.EmployeeID == employeeID {
			out = append(out, domain.HistoryRow{BlockHistory: h, ManagerLogin: "gestor", EmployeeName: m.employees[h.EmployeeID]})
		}
	}
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id uint) (*models.ScheduleBlock, error) {
	b, ok := m.blocks[id]
	if !ok {
		return nil, httperr.ErrBusiness("block_not_found")
	}
	cp := *b
	return &cp, nil
}

func (m *memoryRepo) Create(_ context.Context, b *models.ScheduleBlock, h *models.BlockHistory) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	b.ID = m.nextID
	cp := *b
	m.blocks[b.ID] = &cp
	if h != nil {
		m.history = append(m.history, *h)
	}
	return nil
}

func (m *memoryRepo) Update(_ context.Context, b *models.ScheduleBlock) error {
	cp := *b
	m.blocks[b.ID] = &cp
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id uint, h *models.BlockHistory) error {
	if _, ok := m.blocks[id]; !ok {
		return httperr.ErrBusiness("block_not_found")
	}
	delete(m.blocks, id)
	if h != nil {
		m.history = append(m.history, *h)
	}
	return nil
}

func (m *memoryRepo) sorted() []*models.ScheduleBlock {
	out := make([]*models.ScheduleBlock, 0, len(m.blocks))
	for _, b := range m.blocks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var _ domain.Repository = (*memoryRepo)(nil)
