package approval

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// ======================================================
// APPROVE
// ======================================================

type ApproveRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewApproveRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ApproveRequest {
	return &ApproveRequest{
		repo:  repo,
		audit: audit,
		log:   logger.OrNop(log).Named("approval"),
	}
}

// Execute aprova a solicitação e marca o agendamento como aprovado.
func (uc *ApproveRequest) Execute(
	ctx context.Context,
	requestID uint,
	managerID *uint,
) (*models.ApprovalRequest, error) {

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := domain.Approve(req); err != nil {
		return nil, err
	}

	if err := uc.repo.ApproveRequest(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   managerID,
		Action:   "request_approved",
		Entity:   "approval_request",
		EntityID: &req.ID,
		Metadata: map[string]any{"agendamento_id": req.AppointmentID},
	})

	uc.log.Info("request approved",
		zap.Uint("request_id", req.ID),
		zap.Uint("appointment_id", req.AppointmentID),
	)
	return req, nil
}

// ======================================================
// REJECT
// ======================================================

type RejectRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewRejectRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *RejectRequest {
	return &RejectRequest{
		repo:  repo,
		audit: audit,
		log:   logger.OrNop(log).Named("approval"),
	}
}

// Execute rejeita a solicitação e apaga o agendamento.
func (uc *RejectRequest) Execute(
	ctx context.Context,
	requestID uint,
	managerID *uint,
) (*models.ApprovalRequest, error) {

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := domain.Reject(req); err != nil {
		return nil, err
	}

	if err := uc.repo.RejectRequest(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   managerID,
		Action:   "request_rejected",
		Entity:   "approval_request",
		EntityID: &req.ID,
		Metadata: map[string]any{"agendamento_id": req.AppointmentID},
	})

	uc.log.Info("request rejected",
		zap.Uint("request_id", req.ID),
		zap.Uint("appointment_id", req.AppointmentID),
	)
	return req, nil
}
