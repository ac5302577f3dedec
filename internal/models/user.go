package models

import "time"

const (
	UserRoleSuperadmin = "superadmin"
	UserRoleAdmin      = "admin"
	UserRoleEmployee   = "funcionario"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Login        string `gorm:"size:100;uniqueIndex;not null" json:"login"`
	PasswordHash string `gorm:"column:senha_hash;size:255;not null" json:"-"`
	Role         string `gorm:"column:tipo;size:20;not null" json:"tipo"`

	EmployeeID *uint     `gorm:"column:funcionario_id;index" json:"funcionario_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "usuarios" }

// RoleForEmployeeRole define o tipo do usuário criado junto com o funcionário.
func RoleForEmployeeRole(cargo string) string {
	if cargo == EmployeeRoleAdmin {
		return UserRoleAdmin
	}
	return UserRoleEmployee
}
