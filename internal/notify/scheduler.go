package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/audit"
	"github.com/barberbook/barbershop-api/internal/config"
	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/metrics"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/timezone"
)

// noShowGrace is how long past the scheduled end a live appointment may sit
// before the sweep marks it no_show.
const noShowGrace = 30 * time.Minute

type Scheduler struct {
	db     *gorm.DB
	cfg    *config.Config
	audit  *audit.Dispatcher
	client *twilio.RestClient
	cron   *cron.Cron
}

func NewScheduler(db *gorm.DB, cfg *config.Config, dispatcher *audit.Dispatcher) *Scheduler {
	s := &Scheduler{
		db:    db,
		cfg:   cfg,
		audit: dispatcher,
		cron:  cron.New(),
	}

	if cfg.RemindersEnabled() {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return s
}

func (s *Scheduler) Start() {
	// Reminders every day at 9 AM, overdue sweep every 15 minutes.
	s.cron.AddFunc("0 9 * * *", s.SendDailyReminders)
	s.cron.AddFunc("*/15 * * * *", s.SweepOverdue)

	s.cron.Start()
	log.Println("appointment scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// SweepOverdue marks live appointments long past their end as no_show.
func (s *Scheduler) SweepOverdue() {
	now := timezone.Now()
	cutoff := now.Add(-noShowGrace)

	var overdue []models.Appointment
	if err := s.db.
		Where(
			"status IN ? AND end_time < ?",
			[]string{
				string(domain.StatusPending),
				string(domain.StatusConfirmed),
				string(domain.StatusInProgress),
			},
			cutoff,
		).
		Find(&overdue).Error; err != nil {
		log.Printf("no-show sweep query failed: %v", err)
		return
	}

	for i := range overdue {
		ap := &overdue[i]
		if err := domain.Transition(ap, domain.StatusNoShow, now); err != nil {
			continue
		}
		if err := s.db.Save(ap).Error; err != nil {
			log.Printf("no-show sweep update failed for %s: %v", ap.ID, err)
			continue
		}

		metrics.NoShowSweepsTotal.Inc()
		s.audit.Dispatch(audit.Event{
			Action:   audit.ActionNoShowSwept,
			Entity:   "appointment",
			EntityID: ap.ID.String(),
		})
	}
}

// SendDailyReminders texts clients about tomorrow's live appointments.
func (s *Scheduler) SendDailyReminders() {
	if s.client == nil {
		return
	}

	dayStart, _ := timezone.DayBounds(timezone.Now().Add(24 * time.Hour))
	dayEnd := dayStart.Add(24 * time.Hour)

	var upcoming []models.Appointment
	if err := s.db.
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where(
			"status IN ? AND start_time >= ? AND start_time < ?",
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			dayStart, dayEnd,
		).
		Find(&upcoming).Error; err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}

	for _, ap := range upcoming {
		if ap.Client.Phone == "" {
			continue
		}

		body := fmt.Sprintf(
			"Reminder: %s with %s tomorrow at %s.",
			ap.Service.Name,
			ap.Barber.Name,
			ap.StartTime.Format("15:04"),
		)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(ap.Client.Phone)
		params.SetFrom(s.cfg.TwilioFromNumber)
		params.SetBody(body)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			log.Printf("failed to send reminder to %s: %v", ap.Client.Phone, err)
		}
	}
}
