package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	updateUC   *ucAppointment.UpdateAppointment
	deleteUC   *ucAppointment.DeleteAppointment
	approvalUC *ucAppointment.SetApproval
	paidUC     *ucAppointment.SetPaid
	listUC     *ucAppointment.ListAppointments
	log        *zap.Logger
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	approvalUC *ucAppointment.SetApproval,
	paidUC *ucAppointment.SetPaid,
	listUC *ucAppointment.ListAppointments,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		approvalUC: approvalUC,
		paidUC:     paidUC,
		listUC:     listUC,
		log:        logger.OrNop(log).Named("appointment"),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date       string   `json:"data" binding:"required"`
	Time       string   `json:"horario" binding:"required"`
	ClientName string   `json:"cliente" binding:"required"`
	Service    string   `json:"servico"`
	Type       string   `json:"tipo"`
	Price      *float64 `json:"valor_previsto"`
	EmployeeID *uint    `json:"funcionario_id"`
}

type UpdateAppointmentRequest struct {
	Date       string   `json:"data" binding:"required"`
	Time       string   `json:"horario" binding:"required"`
	ClientName string   `json:"cliente" binding:"required"`
	Service    string   `json:"servico"`
	Price      *float64 `json:"valor_previsto"`
	EmployeeID *uint    `json:"funcionario_id"`
}

type SetApprovalRequest struct {
	Approved *bool `json:"aprovado" binding:"required"`
}

type SetPaidRequest struct {
	Paid *bool `json:"pago" binding:"required"`
}

// ======================================================
// WRITE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Date:       req.Date,
		Time:       req.Time,
		ClientName: req.ClientName,
		Service:    req.Service,
		Type:       req.Type,
		Price:      req.Price,
		EmployeeID: req.EmployeeID,
		UserID:     middleware.CurrentUserID(c),
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID:         id,
		Date:       req.Date,
		Time:       req.Time,
		ClientName: req.ClientName,
		Service:    req.Service,
		Price:      req.Price,
		EmployeeID: req.EmployeeID,
		UserID:     middleware.CurrentUserID(c),
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		respondError(c, h.log, err, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	httpresp.Message(c, "Agendamento removido")
}

func (h *AppointmentHandler) SetApproval(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	if err := h.approvalUC.Execute(c.Request.Context(), id, *req.Approved, middleware.CurrentUserID(c)); err != nil {
		respondError(c, h.log, err, "failed_to_update_approval", "Erro ao atualizar aprovação.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

// SetPaid atende /pagamento e /pagamento-com-historico: marcar como pago
// sempre registra o pagamento no histórico do cliente.
func (h *AppointmentHandler) SetPaid(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req SetPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	if err := h.paidUC.Execute(c.Request.Context(), id, *req.Paid, middleware.CurrentUserID(c)); err != nil {
		respondError(c, h.log, err, "failed_to_update_payment", "Erro ao atualizar pagamento.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDay(c *gin.Context) {
	out, err := h.listUC.ByDay(c.Request.Context(), c.Param("data"), nil)
	h.writeList(c, out, err)
}

func (h *AppointmentHandler) ListByEmployeeAndDay(c *gin.Context) {
	employeeID, ok := idParam(c, "fid")
	if !ok {
		return
	}
	out, err := h.listUC.ByDay(c.Request.Context(), c.Param("data"), &employeeID)
	h.writeList(c, out, err)
}

func (h *AppointmentHandler) ListByPeriod(c *gin.Context) {
	out, err := h.listUC.ByPeriod(c.Request.Context(), c.Param("ini"), c.Param("fim"), nil)
	h.writeList(c, out, err)
}

func (h *AppointmentHandler) ListByEmployeeAndPeriod(c *gin.Context) {
	employeeID, ok := idParam(c, "fid")
	if !ok {
		return
	}
	out, err := h.listUC.ByPeriod(c.Request.Context(), c.Param("ini"), c.Param("fim"), &employeeID)
	h.writeList(c, out, err)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	employeeID, ok := optionalUintQuery(c, "funcionario_id")
	if !ok {
		return
	}
	out, err := h.listUC.Upcoming(c.Request.Context(), employeeID)
	h.writeList(c, out, err)
}

func (h *AppointmentHandler) writeList(c *gin.Context, out []dto.AppointmentDTO, err error) {
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}
	httpresp.Slice(c, out)
}
