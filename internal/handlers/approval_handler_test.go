package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment/appointmenttest"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	ucApproval "github.com/BruksfildServices01/studio-scheduler/internal/usecase/approval"
)

func newApprovalRouter(repo *appointmenttest.Repository) *gin.Engine {
	h := NewApprovalHandler(
		ucApproval.NewListPending(repo),
		ucApproval.NewApproveRequest(repo, nil, nil),
		ucApproval.NewRejectRequest(repo, nil, nil),
		nil,
	)

	r := newRouter()
	r.GET("/solicitacoes/", h.ListPending)
	r.POST("/solicitacoes/:id/aprovar", h.Approve)
	r.POST("/solicitacoes/:id/rejeitar", h.Reject)
	return r
}

func TestApprovalHandler(t *testing.T) {
	requests := map[uint]*models.ApprovalRequest{
		1: {ID: 1, AppointmentID: 10, Status: string(domain.RequestPending)},
		2: {ID: 2, AppointmentID: 11, Status: string(domain.RequestApproved)},
		3: {ID: 3, AppointmentID: 12, Status: string(domain.RequestPending)},
	}
	var deleted []uint

	repo := &appointmenttest.Repository{
		GetRequestFn: func(_ context.Context, id uint) (*models.ApprovalRequest, error) {
			if req, ok := requests[id]; ok {
				cp := *req
				return &cp, nil
			}
			return nil, httperr.ErrBusiness("request_not_found")
		},
		RejectRequestFn: func(_ context.Context, req *models.ApprovalRequest) error {
			deleted = append(deleted, req.AppointmentID)
			return nil
		},
	}
	r := newApprovalRouter(repo)

	t.Run("list is never null", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/solicitacoes/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("approve pending", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/solicitacoes/1/aprovar", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"status":"aprovado"}`, w.Body.String())
	})

	t.Run("already resolved", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/solicitacoes/2/aprovar", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "request_already_resolved", errorCode(t, w))
	})

	t.Run("unknown request", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/solicitacoes/99/rejeitar", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("reject removes the appointment", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/solicitacoes/3/rejeitar", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"status":"rejeitado"}`, w.Body.String())
		assert.Equal(t, []uint{12}, deleted)
	})
}
