package models

import "time"

const (
	AppointmentTypeTattoo   = "tatuagem"
	AppointmentTypePiercing = "piercing"
)

// Datas e horários ficam como texto (YYYY-MM-DD / HH:MM) para que os
// filtros de período sejam comparações lexicais.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"column:data;size:10;not null;index:idx_agendamentos_data_horario,priority:1" json:"data"`
	Time string `gorm:"column:horario;size:5;not null;index:idx_agendamentos_data_horario,priority:2" json:"horario"`

	ClientID   *uint  `gorm:"column:cliente_id" json:"cliente_id"`
	ClientName string `gorm:"column:cliente;size:100;not null" json:"cliente"`

	EmployeeID *uint     `gorm:"column:funcionario_id;index" json:"funcionario_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Service string   `gorm:"column:servico;size:255" json:"servico"`
	Type    string   `gorm:"column:tipo;size:20;not null" json:"tipo"`
	Price   *float64 `gorm:"column:valor_previsto" json:"valor_previsto"`

	Approved bool `gorm:"column:aprovado;not null" json:"aprovado"`
	Paid     bool `gorm:"column:pago;not null" json:"pago"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string { return "agendamentos" }
