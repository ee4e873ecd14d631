package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/timezone"
	ucAppointment "github.com/barberbook/barbershop-api/internal/usecase/appointment"
	ucReview "github.com/barberbook/barbershop-api/internal/usecase/review"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *ucAppointment.BookAppointment
	cancel     *ucAppointment.CancelAppointment
	setStatus  *ucAppointment.SetAppointmentStatus
	listClient *ucAppointment.ListClientAppointments
	agendaDay  *ucAppointment.AgendaByDate
	agendaMon  *ucAppointment.AgendaByMonth
	review     *ucReview.SubmitReview
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	cancel *ucAppointment.CancelAppointment,
	setStatus *ucAppointment.SetAppointmentStatus,
	listClient *ucAppointment.ListClientAppointments,
	agendaDay *ucAppointment.AgendaByDate,
	agendaMon *ucAppointment.AgendaByMonth,
	review *ucReview.SubmitReview,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		cancel:     cancel,
		setStatus:  setStatus,
		listClient: listClient,
		agendaDay:  agendaDay,
		agendaMon:  agendaMon,
		review:     review,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Notes     string `json:"notes"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ======================================================
// CLIENT SIDE
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ClientID:  currentProfileID(c),
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	items, err := h.listClient.Execute(c.Request.Context(), currentProfileID(c))
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), currentProfileID(c), currentUserID(c), id)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SubmitReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review payload.")
		return
	}

	rv, err := h.review.Execute(c.Request.Context(), ucReview.SubmitReviewInput{
		ClientID:      currentProfileID(c),
		UserID:        currentUserID(c),
		AppointmentID: id,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, rv)
}

// ======================================================
// BARBER SIDE
// ======================================================

func (h *AppointmentHandler) AgendaByDate(c *gin.Context) {
	dateStr := c.DefaultQuery("date", timezone.Now().Format("2006-01-02"))

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	status := domain.Status(c.Query("status"))
	if status != "" && !domain.IsValidStatus(status) {
		httperr.BadRequest(c, "invalid_status_filter", "Unknown status.")
		return
	}

	agenda, err := h.agendaDay.Execute(c.Request.Context(), currentProfileID(c), date, status)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, agenda)
}

func (h *AppointmentHandler) AgendaByMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid year or month.")
		return
	}

	items, err := h.agendaMon.Execute(c.Request.Context(), currentProfileID(c), year, month)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status payload.")
		return
	}

	ap, err := h.setStatus.Execute(
		c.Request.Context(),
		currentProfileID(c),
		currentUserID(c),
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, ap)
}
