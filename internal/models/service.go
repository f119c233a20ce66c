package models

import "time"

// Serviço oferecido pela barbearia (rótulo usado no formulário de agendamento)
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price  float64 `json:"price"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
