package handler

import (
	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/response"
	"sitterdesk/internal/schedule"

	"github.com/gin-gonic/gin"
)

// AppointmentRequest defines the payload for creating or updating an
// appointment. Date is ISO; Time is free-form and normalized on save.
type AppointmentRequest struct {
	Date     string `json:"date" binding:"required,iso_date"`
	Time     string `json:"time"`
	Type     string `json:"type" binding:"required"`
	ForPetID string `json:"for_pet_id"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// ListAppointments returns appointments, optionally from a date onward.
// GET /api/appointments?from=YYYY-MM-DD
func (s *Server) ListAppointments(c *gin.Context) {
	query := s.DB.Where("property_id = ?", s.config.GetPropertyID())
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}

	var appointments []models.Appointment
	err := query.Order("date ASC, time ASC").Find(&appointments).Error
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, appointments)
}

// CreateAppointment creates an appointment.
// POST /api/appointments
func (s *Server) CreateAppointment(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	appointment := models.Appointment{
		PropertyID: s.config.GetPropertyID(),
		Date:       req.Date,
		Time:       schedule.NormalizeTime(req.Time),
		Type:       req.Type,
		ForPetID:   req.ForPetID,
		Location:   req.Location,
		Notes:      req.Notes,
	}
	if HandleServiceError(c, s.DB.Create(&appointment).Error) {
		return
	}
	response.SuccessI18n(c, "appointment.created", appointment)
}

// UpdateAppointment updates an appointment.
// PUT /api/appointments/:id
func (s *Server) UpdateAppointment(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	var appointment models.Appointment
	err := s.DB.First(&appointment, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID()).Error
	if HandleServiceError(c, err) {
		return
	}

	appointment.Date = req.Date
	appointment.Time = schedule.NormalizeTime(req.Time)
	appointment.Type = req.Type
	appointment.ForPetID = req.ForPetID
	appointment.Location = req.Location
	appointment.Notes = req.Notes
	if HandleServiceError(c, s.DB.Save(&appointment).Error) {
		return
	}
	response.SuccessI18n(c, "appointment.updated", appointment)
}

// DeleteAppointment removes an appointment.
// DELETE /api/appointments/:id
func (s *Server) DeleteAppointment(c *gin.Context) {
	result := s.DB.Delete(&models.Appointment{}, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID())
	if HandleServiceError(c, result.Error) {
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, app_errors.ErrResourceNotFound)
		return
	}
	response.SuccessI18n(c, "appointment.deleted", nil)
}
