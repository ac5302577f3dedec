package models

import "time"

// Snapshot do agendamento aguardando decisão do gestor.
// Não há FK para agendamentos: a rejeição apaga o agendamento e a
// solicitação continua como registro.
type ApprovalRequest struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Kind          string `gorm:"column:tipo;size:20;not null" json:"tipo"`
	AppointmentID uint   `gorm:"column:agendamento_id;index;not null" json:"agendamento_id"`
	EmployeeID    *uint  `gorm:"column:funcionario_id" json:"funcionario_id"`

	Date       string `gorm:"column:data;size:10" json:"data"`
	Time       string `gorm:"column:horario;size:5" json:"horario"`
	ClientName string `gorm:"column:cliente;size:100" json:"cliente"`
	Service    string `gorm:"column:servico;size:255" json:"servico"`

	Status      string    `gorm:"size:20;not null;index" json:"status"`
	RequestedAt time.Time `gorm:"column:data_solicitacao;not null" json:"data_solicitacao"`
}

func (ApprovalRequest) TableName() string { return "solicitacoes" }
