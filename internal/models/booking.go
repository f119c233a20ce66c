package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Referência pública usada em confirmações por e-mail
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BarberID uint   `gorm:"uniqueIndex:idx_barber_slot,priority:1" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	// Dia e horário do slot (Time sempre em "HH:MM", alinhado à grade de 30min)
	Date time.Time `gorm:"type:date;uniqueIndex:idx_barber_slot,priority:2" json:"date"`
	Time string    `gorm:"size:5;uniqueIndex:idx_barber_slot,priority:3" json:"time"`

	Service string `gorm:"size:100;not null" json:"service"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
