package approval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment/appointmenttest"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// store simula solicitações e agendamentos em memória.
type store struct {
	requests     map[uint]*models.ApprovalRequest
	appointments map[uint]*models.Appointment
}

func newStore() (*store, *appointmenttest.Repository) {
	s := &store{
		requests: map[uint]*models.ApprovalRequest{
			1: {ID: 1, AppointmentID: 10, Status: "pendente"},
			2: {ID: 2, AppointmentID: 20, Status: "pendente"},
		},
		appointments: map[uint]*models.Appointment{
			10: {ID: 10},
			20: {ID: 20},
		},
	}

	repo := &appointmenttest.Repository{
		GetRequestFn: func(_ context.Context, id uint) (*models.ApprovalRequest, error) {
			r, ok := s.requests[id]
			if !ok {
				return nil, httperr.ErrBusiness("request_not_found")
			}
			cp := *r
			return &cp, nil
		},
		ApproveRequestFn: func(_ context.Context, req *models.ApprovalRequest) error {
			s.requests[req.ID].Status = req.Status
			s.appointments[req.AppointmentID].Approved = true
			return nil
		},
		RejectRequestFn: func(_ context.Context, req *models.ApprovalRequest) error {
			s.requests[req.ID].Status = req.Status
			delete(s.appointments, req.AppointmentID)
			return nil
		},
	}
	return s, repo
}

func TestApproveRequest(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore()
	uc := NewApproveRequest(repo, nil, nil)

	req, err := uc.Execute(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "aprovado", req.Status)
	assert.Equal(t, "aprovado", s.requests[1].Status)
	assert.True(t, s.appointments[10].Approved)

	_, err = uc.Execute(ctx, 1, nil)
	assert.True(t, httperr.IsBusiness(err, "request_already_resolved"))

	_, err = NewRejectRequest(repo, nil, nil).Execute(ctx, 1, nil)
	assert.True(t, httperr.IsBusiness(err, "request_already_resolved"))
	assert.Contains(t, s.appointments, uint(10))

	_, err = uc.Execute(ctx, 77, nil)
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))
}

func TestRejectRequest(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore()
	uc := NewRejectRequest(repo, nil, nil)

	req, err := uc.Execute(ctx, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "rejeitado", req.Status)
	assert.NotContains(t, s.appointments, uint(20))
	assert.Contains(t, s.appointments, uint(10))

	_, err = NewApproveRequest(repo, nil, nil).Execute(ctx, 2, nil)
	assert.True(t, httperr.IsBusiness(err, "request_already_resolved"))
}

func TestListPending_NeverNil(t *testing.T) {
	out, err := NewListPending(&appointmenttest.Repository{}).Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
