package appointment

import "github.com/BruksfildServices01/studio-scheduler/internal/httperr"

// ===============================
// Approval Request Status
// ===============================

type RequestStatus string

const (
	RequestPending  RequestStatus = "pendente"
	RequestApproved RequestStatus = "aprovado"
	RequestRejected RequestStatus = "rejeitado"
)

// inclusão de agendamento é o único tipo de solicitação hoje
const RequestKindInclusion = "inclusao"

// ===============================
// Validations
// ===============================

// CanResolve: só solicitações pendentes podem ser aprovadas ou rejeitadas
func CanResolve(current RequestStatus) error {
	if current != RequestPending {
		return httperr.ErrBusiness("request_already_resolved")
	}
	return nil
}

func InitialRequestStatus() RequestStatus {
	return RequestPending
}
