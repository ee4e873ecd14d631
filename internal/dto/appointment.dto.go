package dto

import (
	"time"

	"github.com/google/uuid"
)

// AgendaItemDTO is one row of the barber's agenda.
type AgendaItemDTO struct {
	ID          uuid.UUID `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	TotalPrice  float64   `json:"total_price"`
	Notes       string    `json:"notes"`
}

// AgendaSummaryDTO carries the day's per-status counts. Counts cover the
// whole day regardless of any status filter on the item list.
type AgendaSummaryDTO struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Confirmed  int `json:"confirmed"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	NoShow     int `json:"no_show"`
}

// AgendaDTO is the barber's agenda for one day: filtered items plus the
// dashboard counts.
type AgendaDTO struct {
	Items   []AgendaItemDTO  `json:"items"`
	Summary AgendaSummaryDTO `json:"summary"`
}

// ClientAppointmentDTO is one row of a client's own appointment list.
// QueuePosition counts the earlier live appointments of the same barber on
// the same day; nil for past or terminal appointments.
type ClientAppointmentDTO struct {
	ID            uuid.UUID `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	BarberName    string    `json:"barber_name"`
	ServiceName   string    `json:"service_name"`
	TotalPrice    float64   `json:"total_price"`
	Notes         string    `json:"notes"`
	QueuePosition *int64    `json:"queue_position,omitempty"`
}
