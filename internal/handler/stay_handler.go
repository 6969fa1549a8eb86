package handler

import (
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/response"

	"github.com/gin-gonic/gin"
)

// StayRequest defines the payload for sitter stays.
type StayRequest struct {
	SitterName string `json:"sitter_name" binding:"required"`
	StartDate  string `json:"start_date" binding:"required,iso_date"`
	EndDate    string `json:"end_date" binding:"required,iso_date"`
	Notes      string `json:"notes"`
	Active     *bool  `json:"active"`
}

func (req *StayRequest) toModel() *models.Stay {
	return &models.Stay{
		SitterName: req.SitterName,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Notes:      req.Notes,
		Active:     req.Active == nil || *req.Active,
	}
}

// ListStays returns all stays.
// GET /api/stays
func (s *Server) ListStays(c *gin.Context) {
	stays, err := s.StayService.List()
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, stays)
}

// CurrentStay returns the stay covering today, or a 404 when the house
// is between sitters.
// GET /api/stays/current
func (s *Server) CurrentStay(c *gin.Context) {
	stay, err := s.StayService.Current(time.Now())
	if err != nil {
		response.ErrorI18nFromAPIError(c, app_errors.ErrResourceNotFound, "stay.none_active")
		return
	}
	response.Success(c, stay)
}

// CreateStay schedules a stay.
// POST /api/stays
func (s *Server) CreateStay(c *gin.Context) {
	var req StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	stay := req.toModel()
	if HandleServiceError(c, s.StayService.Create(stay)) {
		return
	}
	response.SuccessI18n(c, "stay.created", stay)
}

// UpdateStay updates a stay.
// PUT /api/stays/:id
func (s *Server) UpdateStay(c *gin.Context) {
	var req StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	stay, err := s.StayService.Update(c.Param("id"), req.toModel())
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "stay.updated", stay)
}

// DeleteStay removes a stay.
// DELETE /api/stays/:id
func (s *Server) DeleteStay(c *gin.Context) {
	if HandleServiceError(c, s.StayService.Delete(c.Param("id"))) {
		return
	}
	response.SuccessI18n(c, "stay.deleted", nil)
}
