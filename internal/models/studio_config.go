package models

import "time"

const StudioConfigID uint = 1

// Configuração visual do estúdio (linha única, id = 1)
type StudioConfig struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	StudioName   string    `gorm:"column:nome_estudio;size:100;not null" json:"studio_name"`
	StudioLogo   string    `gorm:"column:logo_path;size:255" json:"studio_logo"`
	PrimaryColor string    `gorm:"column:cor_primaria;size:20" json:"primary_color"`
	FontFamily   string    `gorm:"column:fonte;size:100" json:"font_family"`
	UpdatedAt    time.Time `json:"-"`
}

func (StudioConfig) TableName() string { return "config" }

func DefaultStudioConfig() StudioConfig {
	return StudioConfig{
		ID:           StudioConfigID,
		StudioName:   "Meu Estúdio",
		PrimaryColor: "#ff4500",
		FontFamily:   "Roboto, Arial, sans-serif",
	}
}
