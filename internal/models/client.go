package models

import "time"

const (
	ClientStatusPreRegistered = "pre_cadastro"
	ClientStatusConfirmed     = "confirmado"
)

// Cliente do estúdio. Pode nascer de um agendamento (pré-cadastro)
// e ser completado depois com a ficha de anamnese.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string   `gorm:"column:nome;size:100;not null;index" json:"nome"`
	Phone   string   `gorm:"column:telefone;size:20" json:"telefone"`
	Mobile  string   `gorm:"column:celular;size:20" json:"celular"`
	Email   string   `gorm:"size:100" json:"email"`
	CPF     string   `gorm:"column:cpf;size:14" json:"cpf"`
	Address string   `gorm:"column:endereco;size:255" json:"endereco"`
	Notes   string   `gorm:"column:informacao;type:text" json:"informacao"`
	Amount  *float64 `gorm:"column:valor" json:"valor"`
	Status  string   `gorm:"size:20;not null" json:"status"`

	// anamnese
	Procedure           string `gorm:"column:procedimento;size:255" json:"procedimento"`
	Allergies           string `gorm:"column:alergias;size:255" json:"alergias"`
	UsesAnestheticCream string `gorm:"column:usa_pomada_anestesica;size:20" json:"usa_pomada_anestesica"`
	Smokes              string `gorm:"column:fuma;size:20" json:"fuma"`
	Drinks              string `gorm:"column:bebe;size:20" json:"bebe"`

	HasForm  bool   `gorm:"column:tem_ficha;not null" json:"tem_ficha"`
	FormPath string `gorm:"column:ficha_path;size:255" json:"ficha_path"`

	EmployeeID   *uint  `gorm:"column:funcionario_id" json:"funcionario_id"`
	RegisteredAt string `gorm:"column:data_cadastro;size:10" json:"data_cadastro"`

	CreatedAt time.Time `gorm:"column:data_criacao" json:"data_criacao"`
	UpdatedAt time.Time `json:"-"`
}

func (Client) TableName() string { return "clientes" }
