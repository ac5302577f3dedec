package approval

import (
	"context"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type ListPending struct {
	repo domain.Repository
}

func NewListPending(repo domain.Repository) *ListPending {
	return &ListPending{repo: repo}
}

// Execute: mais recentes primeiro. Nunca devolve nil.
func (uc *ListPending) Execute(ctx context.Context) ([]models.ApprovalRequest, error) {
	reqs, err := uc.repo.ListPendingRequests(ctx)
	if err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []models.ApprovalRequest{}
	}
	return reqs, nil
}
