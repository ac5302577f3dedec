package models

import "time"

const (
	EmployeeRoleAdmin = "Administrador"

	DefaultPercEmployee = 70.0
)

type Employee struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nome;size:100;not null" json:"nome"`
	Role string `gorm:"column:cargo;size:60" json:"cargo"`

	// perc_estudio = 100 - perc_funcionario
	PercStudio   float64 `gorm:"column:perc_estudio;not null" json:"perc_estudio"`
	PercEmployee float64 `gorm:"column:perc_funcionario;not null" json:"perc_funcionario"`

	RequiresApproval bool `gorm:"column:requer_aprovacao;not null" json:"requer_aprovacao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Employee) TableName() string { return "funcionarios" }

// SetPercEmployee mantém os dois percentuais somando 100.
func (e *Employee) SetPercEmployee(p float64) {
	e.PercEmployee = p
	e.PercStudio = 100 - p
}
