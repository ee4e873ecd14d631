package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/timezone"
	ucAppointment "github.com/barberbook/barbershop-api/internal/usecase/appointment"
)

// PublicHandler serves the unauthenticated browse surface: barbers, their
// services and reviews, and the availability calendar feed.
type PublicHandler struct {
	db           *gorm.DB
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availability *ucAppointment.GetAvailability) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
	}
}

type barberSummary struct {
	models.Barber
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

type ratingRow struct {
	BarberID uint
	Avg      float64
	Cnt      int64
}

func (h *PublicHandler) barberRatings() (map[uint]ratingRow, error) {
	var rows []ratingRow
	err := h.db.Model(&models.Review{}).
		Select("barber_id, AVG(rating) as avg, COUNT(*) as cnt").
		Group("barber_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]ratingRow, len(rows))
	for _, r := range rows {
		out[r.BarberID] = r
	}
	return out, nil
}

// ListBarbers returns the available barbers ordered by average rating.
func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("is_available = true").
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	ratings, err := h.barberRatings()
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	out := make([]barberSummary, 0, len(barbers))
	for _, b := range barbers {
		r := ratings[b.ID]
		out = append(out, barberSummary{
			Barber:        b,
			AverageRating: r.Avg,
			ReviewCount:   r.Cnt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating > out[j].AverageRating
	})

	c.JSON(http.StatusOK, gin.H{"barbers": out})
}

// GetBarber returns one barber with active services and reviews.
func (h *PublicHandler) GetBarber(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barber_id = ? AND active = true", barber.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	var reviews []models.Review
	if err := h.db.
		Preload("Client").
		Where("barber_id = ?", barber.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	var avg float64
	for _, r := range reviews {
		avg += float64(r.Rating)
	}
	if len(reviews) > 0 {
		avg /= float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"barber":         barber,
		"services":       services,
		"reviews":        reviews,
		"average_rating": avg,
	})
}

// Availability feeds the calendar widget with "HH:MM" start times.
func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Date is required.")
		return
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	var serviceID uint64
	if s := c.Query("service_id"); s != "" {
		serviceID, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
			return
		}
	}

	times, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		BarberID:  uint(barberID),
		Date:      date,
		ServiceID: uint(serviceID),
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available_times": times})
}
