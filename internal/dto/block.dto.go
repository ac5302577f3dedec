package dto

import (
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type BlockDTO struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"funcionario_id"`
	EmployeeName string    `json:"funcionario_nome,omitempty"`
	Date         string    `json:"data"`
	Kind         string    `json:"tipo_bloqueio"`
	Times        []string  `json:"horarios_bloqueados"`
	Reason       string    `json:"motivo"`
	CreatedAt    time.Time `json:"criado_em"`
}

type BlockHistoryDTO struct {
	ID           uint      `json:"id"`
	ManagerID    uint      `json:"gestor_id"`
	ManagerLogin string    `json:"gestor_login"`
	EmployeeID   uint      `json:"funcionario_id"`
	EmployeeName string    `json:"funcionario_nome"`
	Date         string    `json:"data"`
	Kind         string    `json:"tipo_bloqueio"`
	Times        []string  `json:"horarios_bloqueados"`
	Action       string    `json:"acao"`
	Reason       string    `json:"motivo"`
	CreatedAt    time.Time `json:"criado_em"`
}

// TimesDecoder lê a coluna JSON de horários. Erro vira lista vazia.
type TimesDecoder func(raw string) ([]string, error)

func NewBlockDTO(b *models.ScheduleBlock, employeeName string, decode TimesDecoder) BlockDTO {
	times, err := decode(b.Times)
	if err != nil {
		times = []string{}
	}
	return BlockDTO{
		ID:           b.ID,
		EmployeeID:   b.EmployeeID,
		EmployeeName: employeeName,
		Date:         b.Date,
		Kind:         b.Kind,
		Times:        times,
		Reason:       b.Reason,
		CreatedAt:    b.CreatedAt,
	}
}

func NewBlockHistoryDTO(h *models.BlockHistory, managerLogin, employeeName string, decode TimesDecoder) BlockHistoryDTO {
	times, err := decode(h.Times)
	if err != nil {
		times = []string{}
	}
	return BlockHistoryDTO{
		ID:           h.ID,
		ManagerID:    h.ManagerID,
		ManagerLogin: managerLogin,
		EmployeeID:   h.EmployeeID,
		EmployeeName: employeeName,
		Date:         h.Date,
		Kind:         h.Kind,
		Times:        times,
		Action:       h.Action,
		Reason:       h.Reason,
		CreatedAt:    h.CreatedAt,
	}
}
