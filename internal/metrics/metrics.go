package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barbershop_bookings_total",
		Help: "Appointments successfully booked.",
	})

	BookingConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barbershop_booking_conflicts_total",
		Help: "Booking attempts rejected by the conflict checker.",
	})

	CancellationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barbershop_cancellations_total",
		Help: "Appointments cancelled by clients.",
	})

	StatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barbershop_status_changes_total",
		Help: "Barber-driven status transitions by target status.",
	}, []string{"status"})

	ReviewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barbershop_reviews_total",
		Help: "Reviews submitted.",
	})

	NoShowSweepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barbershop_no_show_sweeps_total",
		Help: "Appointments marked no_show by the overdue sweep.",
	})
)
