package models

import "time"

// Barbeiro cadastrado pela administração; somente leitura para o fluxo de agendamento
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:100" json:"specialization"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	// "Mon,Tue,Wed,Thu,Fri" — códigos fixos de três letras
	WorkingDays string `gorm:"size:60;not null" json:"working_days"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
