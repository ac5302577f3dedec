package block

import (
	"context"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/block"
	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

type ListBlocks struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListBlocks(repo domain.Repository, clock *timezone.Clock) *ListBlocks {
	return &ListBlocks{repo: repo, clock: clock}
}

// ForEmployee: mais recentes primeiro.
func (uc *ListBlocks) ForEmployee(ctx context.Context, employeeID uint) ([]dto.BlockDTO, error) {
	rows, err := uc.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BlockDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewBlockDTO(&rows[i], "", domain.DecodeTimes))
	}
	return out, nil
}

// Active: de hoje em diante, só de funcionários existentes.
func (uc *ListBlocks) Active(ctx context.Context) ([]dto.BlockDTO, error) {
	rows, err := uc.repo.ListActive(ctx, uc.clock.Today())
	if err != nil {
		return nil, err
	}

	out := make([]dto.BlockDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewBlockDTO(&rows[i].ScheduleBlock, rows[i].EmployeeName, domain.DecodeTimes))
	}
	return out, nil
}

func (uc *ListBlocks) History(ctx context.Context, employeeID uint) ([]dto.BlockHistoryDTO, error) {
	rows, err := uc.repo.ListHistory(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BlockHistoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewBlockHistoryDTO(&rows[i].BlockHistory, rows[i].ManagerLogin, rows[i].EmployeeName, domain.DecodeTimes))
	}
	return out, nil
}

func (uc *ListBlocks) Get(ctx context.Context, id uint) (*dto.BlockDTO, error) {
	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewBlockDTO(b, "", domain.DecodeTimes)
	return &out, nil
}
