package handler

import (
	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/response"

	"github.com/gin-gonic/gin"
)

// AlertRequest defines the payload for creating or updating an alert.
type AlertRequest struct {
	Type     string `json:"type" binding:"required,oneof=danger warning info"`
	Category string `json:"category" binding:"required,oneof=pets house general"`
	Text     string `json:"text" binding:"required"`
	Active   *bool  `json:"active"`
}

// ListAlerts returns alerts, most severe first. Inactive alerts are
// included only when the all query parameter is set.
// GET /api/alerts
func (s *Server) ListAlerts(c *gin.Context) {
	query := s.DB.Where("property_id = ?", s.config.GetPropertyID())
	if c.Query("all") == "" {
		query = query.Where("active = ?", true)
	}

	var alerts []models.Alert
	err := query.
		Order("CASE type WHEN 'danger' THEN 0 WHEN 'warning' THEN 1 ELSE 2 END").
		Order("created_at DESC").
		Find(&alerts).Error
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, alerts)
}

// CreateAlert creates an alert.
// POST /api/alerts
func (s *Server) CreateAlert(c *gin.Context) {
	var req AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	alert := models.Alert{
		PropertyID: s.config.GetPropertyID(),
		Type:       req.Type,
		Category:   req.Category,
		Text:       req.Text,
		Active:     req.Active == nil || *req.Active,
	}
	if HandleServiceError(c, s.DB.Create(&alert).Error) {
		return
	}
	response.SuccessI18n(c, "alert.created", alert)
}

// UpdateAlert updates an alert.
// PUT /api/alerts/:id
func (s *Server) UpdateAlert(c *gin.Context) {
	var req AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	var alert models.Alert
	err := s.DB.First(&alert, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID()).Error
	if HandleServiceError(c, err) {
		return
	}

	alert.Type = req.Type
	alert.Category = req.Category
	alert.Text = req.Text
	if req.Active != nil {
		alert.Active = *req.Active
	}
	if HandleServiceError(c, s.DB.Save(&alert).Error) {
		return
	}
	response.SuccessI18n(c, "alert.updated", alert)
}

// DeleteAlert removes an alert.
// DELETE /api/alerts/:id
func (s *Server) DeleteAlert(c *gin.Context) {
	result := s.DB.Delete(&models.Alert{}, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID())
	if HandleServiceError(c, result.Error) {
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, app_errors.ErrResourceNotFound)
		return
	}
	response.SuccessI18n(c, "alert.deleted", nil)
}
