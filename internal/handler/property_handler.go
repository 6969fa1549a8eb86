package handler

import (
	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/response"
	"sitterdesk/internal/services"

	"github.com/gin-gonic/gin"
)

// GetProperty returns the property details with the wifi password
// decrypted for display.
// GET /api/property
func (s *Server) GetProperty(c *gin.Context) {
	property, err := s.PropertyService.Get()
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, property)
}

// UpdateProperty applies a partial update to the property.
// PUT /api/property
func (s *Server) UpdateProperty(c *gin.Context) {
	var req services.PropertyUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	property, err := s.PropertyService.Update(req)
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "property.updated", property)
}
