package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// ===============================
// Approval rule
// ===============================

// ResolveApproval decide se o agendamento nasce aprovado.
// Sem funcionário atribuído não há quem precise aprovar.
func ResolveApproval(emp *models.Employee) bool {
	if emp == nil {
		return true
	}
	return !emp.RequiresApproval
}

// NormalizeType aplica o default "tatuagem".
func NormalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return models.AppointmentTypeTattoo
	}
	return t
}

// ===============================
// Domain Actions
// ===============================

func NewApprovalRequest(ap *models.Appointment, now time.Time) *models.ApprovalRequest {
	return &models.ApprovalRequest{
		Kind:          RequestKindInclusion,
		AppointmentID: ap.ID,
		EmployeeID:    ap.EmployeeID,
		Date:          ap.Date,
		Time:          ap.Time,
		ClientName:    ap.ClientName,
		Service:       ap.Service,
		Status:        string(InitialRequestStatus()),
		RequestedAt:   now,
	}
}

func Approve(req *models.ApprovalRequest) error {
	if err := CanResolve(RequestStatus(req.Status)); err != nil {
		return err
	}
	req.Status = string(RequestApproved)
	return nil
}

func Reject(req *models.ApprovalRequest) error {
	if err := CanResolve(RequestStatus(req.Status)); err != nil {
		return err
	}
	req.Status = string(RequestRejected)
	return nil
}

// PaymentHistoryEntry monta o registro de pagamento no histórico do cliente.
func PaymentHistoryEntry(ap *models.Appointment, clientID uint) *models.ClientHistoryEntry {
	desc := "Pagamento de " + ap.Type + " em " + ap.Date
	if ap.Service != "" {
		desc = "Pagamento: " + ap.Service + " em " + ap.Date
	}

	return &models.ClientHistoryEntry{
		ClientID:    clientID,
		Kind:        models.ClientHistoryPayment,
		Description: desc,
		Amount:      ap.Price,
		EmployeeID:  ap.EmployeeID,
	}
}
