package models

import "time"

const ClientHistoryPayment = "pagamento"

type ClientHistoryEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"column:cliente_id;index;not null" json:"cliente_id"`
	Kind        string    `gorm:"column:tipo;size:30;not null" json:"tipo"`
	Description string    `gorm:"column:descricao;type:text" json:"descricao"`
	Amount      *float64  `gorm:"column:valor" json:"valor"`
	EmployeeID  *uint     `gorm:"column:funcionario_id" json:"funcionario_id"`
	RecordedAt  time.Time `gorm:"column:data_registro;autoCreateTime" json:"data_registro"`
}

func (ClientHistoryEntry) TableName() string { return "cliente_historico" }
