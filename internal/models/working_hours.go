package models

import "time"

// WorkingHours describes one barber's open interval for a single weekday.
// Weekday follows time.Weekday (Sunday = 0). At most one row per
// (barber, weekday).
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:idx_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"` // "15:04"
	EndTime   string `gorm:"size:5" json:"end_time"`
	IsWorking bool   `gorm:"default:true" json:"is_working"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
