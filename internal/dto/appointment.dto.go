package dto

import "github.com/BruksfildServices01/studio-scheduler/internal/models"

type AppointmentDTO struct {
	ID           uint     `json:"id"`
	Date         string   `json:"data"`
	Time         string   `json:"horario"`
	ClientID     *uint    `json:"cliente_id"`
	ClientName   string   `json:"cliente"`
	Service      string   `json:"servico"`
	Type         string   `json:"tipo"`
	EmployeeID   *uint    `json:"funcionario_id"`
	EmployeeName string   `json:"funcionario"`
	Price        *float64 `json:"valor_previsto"`
	Approved     bool     `json:"aprovado"`
	Paid         bool     `json:"pago"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	out := AppointmentDTO{
		ID:         ap.ID,
		Date:       ap.Date,
		Time:       ap.Time,
		ClientID:   ap.ClientID,
		ClientName: ap.ClientName,
		Service:    ap.Service,
		Type:       ap.Type,
		EmployeeID: ap.EmployeeID,
		Price:      ap.Price,
		Approved:   ap.Approved,
		Paid:       ap.Paid,
	}
	if ap.Employee != nil {
		out.EmployeeName = ap.Employee.Name
	}
	return out
}

func NewAppointmentDTOs(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentDTO(&aps[i]))
	}
	return out
}
