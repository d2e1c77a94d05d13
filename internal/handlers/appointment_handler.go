package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "salonbook/internal/errors"
	"salonbook/internal/money"
	"salonbook/internal/pagination"
	"salonbook/internal/services"
)

// AppointmentHandler handles appointment-related requests.
type AppointmentHandler struct {
	appointmentService services.AppointmentServicer
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointmentService services.AppointmentServicer) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// ScheduleAppointmentRequest represents the request payload for scheduling an
// appointment. Date, time, and price arrive as untrusted strings from the
// form boundary.
type ScheduleAppointmentRequest struct {
	Client  string `json:"client" binding:"required,max=100"`
	Date    string `json:"date" binding:"required,calendar_date"`
	Time    string `json:"time" binding:"required,hhmm"`
	Service string `json:"service" binding:"max=100"`
	Price   string `json:"price" binding:"omitempty,max=20"`
}

// ScheduleAppointment handles the creation of a new appointment
// @Summary     Schedule an appointment
// @Description Schedule a client appointment; a price creates a linked income record
// @Tags        appointments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ScheduleAppointmentRequest true "Appointment details"
// @Success     201 {object} models.Appointment "Appointment scheduled"
// @Failure     400 {object} ErrorResponse "Invalid input or past date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /appointments [post]
func (h *AppointmentHandler) ScheduleAppointment(c *gin.Context) {
	var req ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var priceCents *int64
	if req.Price != "" {
		cents, parseErr := money.ParseDecimalToCents(req.Price)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must be a positive decimal amount"))
			return
		}
		priceCents = &cents
	}

	appointment, err := h.appointmentService.ScheduleAppointment(req.Client, date, req.Time, req.Service, priceCents)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment": appointment,
		"message":     "Appointment scheduled",
	})
}

// GetAppointmentByID handles the retrieval of a single appointment
// @Summary     Get an appointment
// @Description Get a single appointment by ID
// @Tags        appointments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Appointment ID"
// @Success     200 {object} models.Appointment "Appointment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Appointment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	appointment, err := h.appointmentService.GetAppointmentByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// ListAppointments handles the retrieval of all appointments
// @Summary     List appointments
// @Description Get all appointments ordered by date then time
// @Tags        appointments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 50, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Appointment] "Appointments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.appointmentService.ListAppointments(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteAppointment handles the deletion of an appointment and its linked income
// @Summary     Delete an appointment
// @Description Delete an appointment; a linked income record is removed with it
// @Tags        appointments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Appointment ID"
// @Success     200 {object} services.DeletedAppointment "Deletion summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Appointment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.appointmentService.DeleteAppointment(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	message := "Appointment deleted"
	if deleted.RemovedIncomeCents != nil {
		message = fmt.Sprintf("Appointment deleted along with its income of %s", money.FormatCents(*deleted.RemovedIncomeCents))
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted": deleted,
		"message": message,
	})
}
