package models

import "time"

const (
	BlockKindFullDay       = "dia_completo"
	BlockKindSpecificTimes = "horarios_especificos"

	BlockActionBlock   = "bloquear"
	BlockActionUnblock = "desbloquear"
)

type ScheduleBlock struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EmployeeID uint   `gorm:"column:funcionario_id;not null;index:idx_bloqueios_func_data,priority:1" json:"funcionario_id"`
	Date       string `gorm:"column:data;size:10;not null;index:idx_bloqueios_func_data,priority:2" json:"data"`
	Kind       string `gorm:"column:tipo_bloqueio;size:30;not null" json:"tipo_bloqueio"`

	// lista JSON de "HH:MM", vazia para dia completo
	Times  string `gorm:"column:horarios_bloqueados;type:text" json:"-"`
	Reason string `gorm:"column:motivo;size:255" json:"motivo"`

	CreatedAt time.Time `gorm:"column:criado_em" json:"criado_em"`
}

func (ScheduleBlock) TableName() string { return "bloqueios" }

type BlockHistory struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ManagerID  uint   `gorm:"column:gestor_id;not null" json:"gestor_id"`
	EmployeeID uint   `gorm:"column:funcionario_id;not null;index" json:"funcionario_id"`
	Date       string `gorm:"column:data;size:10" json:"data"`
	Kind       string `gorm:"column:tipo_bloqueio;size:30" json:"tipo_bloqueio"`
	Times      string `gorm:"column:horarios_bloqueados;type:text" json:"-"`
	Action     string `gorm:"column:acao;size:20;not null" json:"acao"`
	Reason     string `gorm:"column:motivo;size:255" json:"motivo"`

	CreatedAt time.Time `gorm:"column:criado_em" json:"criado_em"`
}

func (BlockHistory) TableName() string { return "bloqueios_historico" }
