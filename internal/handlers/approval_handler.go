package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	ucApproval "github.com/BruksfildServices01/studio-scheduler/internal/usecase/approval"
)

type ApprovalHandler struct {
	listUC    *ucApproval.ListPending
	approveUC *ucApproval.ApproveRequest
	rejectUC  *ucApproval.RejectRequest
	log       *zap.Logger
}

func NewApprovalHandler(
	listUC *ucApproval.ListPending,
	approveUC *ucApproval.ApproveRequest,
	rejectUC *ucApproval.RejectRequest,
	log *zap.Logger,
) *ApprovalHandler {
	return &ApprovalHandler{
		listUC:    listUC,
		approveUC: approveUC,
		rejectUC:  rejectUC,
		log:       logger.OrNop(log).Named("approval"),
	}
}

func (h *ApprovalHandler) ListPending(c *gin.Context) {
	reqs, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_requests", "Erro ao listar solicitações.")
		return
	}
	httpresp.Slice(c, reqs)
}

func (h *ApprovalHandler) Approve(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	req, err := h.approveUC.Execute(c.Request.Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.log, err, "failed_to_approve_request", "Erro ao aprovar solicitação.")
		return
	}
	httpresp.OK(c, gin.H{"ok": true, "status": req.Status})
}

func (h *ApprovalHandler) Reject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	req, err := h.rejectUC.Execute(c.Request.Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.log, err, "failed_to_reject_request", "Erro ao rejeitar solicitação.")
		return
	}
	httpresp.OK(c, gin.H{"ok": true, "status": req.Status})
}
