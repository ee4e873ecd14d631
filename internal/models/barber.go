package models

import "time"

type Barber struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name            string `gorm:"size:100;not null" json:"name"`
	Phone           string `gorm:"size:20" json:"phone"`
	Email           string `gorm:"size:100" json:"email"`
	Specialty       string `gorm:"size:200" json:"specialty"`
	ExperienceYears int    `json:"experience_years"`
	Bio             string `gorm:"type:text" json:"bio"`
	IsAvailable     bool   `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
