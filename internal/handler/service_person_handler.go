package handler

import (
	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/response"
	"sitterdesk/internal/schedule"

	"github.com/gin-gonic/gin"
)

// ServicePersonRequest defines the payload for service visit rows. A row
// is either recurring (service_day holds a weekday) or date-scoped
// (visit_date plus optional start and end times).
type ServicePersonRequest struct {
	Name          string `json:"name" binding:"required"`
	ServiceDay    string `json:"service_day"`
	ServiceTime   string `json:"service_time"`
	VisitDate     string `json:"visit_date" binding:"omitempty,iso_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	PaymentStatus string `json:"payment_status"`
	PaymentAmount string `json:"payment_amount"`
	Notes         string `json:"notes"`
	NeedsAccess   bool   `json:"needs_access"`
	Phone         string `json:"phone"`
}

func (req *ServicePersonRequest) apply(sp *models.ServicePerson) {
	sp.Name = req.Name
	sp.ServiceDay = req.ServiceDay
	sp.ServiceTime = schedule.NormalizeTime(req.ServiceTime)
	sp.VisitDate = req.VisitDate
	sp.StartTime = schedule.NormalizeTime(req.StartTime)
	sp.EndTime = schedule.NormalizeTime(req.EndTime)
	sp.PaymentStatus = req.PaymentStatus
	sp.PaymentAmount = req.PaymentAmount
	sp.Notes = req.Notes
	sp.NeedsAccess = req.NeedsAccess
	sp.Phone = req.Phone
}

// ListServicePeople returns all service visit rows.
// GET /api/service-people
func (s *Server) ListServicePeople(c *gin.Context) {
	var people []models.ServicePerson
	err := s.DB.Where("property_id = ?", s.config.GetPropertyID()).
		Order("created_at ASC").
		Find(&people).Error
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, people)
}

// CreateServicePerson creates a service visit row.
// POST /api/service-people
func (s *Server) CreateServicePerson(c *gin.Context) {
	var req ServicePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	sp := models.ServicePerson{PropertyID: s.config.GetPropertyID()}
	req.apply(&sp)
	if HandleServiceError(c, s.DB.Create(&sp).Error) {
		return
	}
	response.SuccessI18n(c, "service.created", sp)
}

// UpdateServicePerson updates a service visit row.
// PUT /api/service-people/:id
func (s *Server) UpdateServicePerson(c *gin.Context) {
	var req ServicePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	var sp models.ServicePerson
	err := s.DB.First(&sp, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID()).Error
	if HandleServiceError(c, err) {
		return
	}

	req.apply(&sp)
	if HandleServiceError(c, s.DB.Save(&sp).Error) {
		return
	}
	response.SuccessI18n(c, "service.updated", sp)
}

// DeleteServicePerson removes a service visit row.
// DELETE /api/service-people/:id
func (s *Server) DeleteServicePerson(c *gin.Context) {
	result := s.DB.Delete(&models.ServicePerson{}, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID())
	if HandleServiceError(c, result.Error) {
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, app_errors.ErrResourceNotFound)
		return
	}
	response.SuccessI18n(c, "service.deleted", nil)
}
