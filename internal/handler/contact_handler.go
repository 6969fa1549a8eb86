package handler

import (
	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/response"

	"github.com/gin-gonic/gin"
)

// ContactRequest defines the payload for creating or updating a contact.
type ContactRequest struct {
	Role         string `json:"role"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active"`
}

// ListContacts returns contacts in display order.
// GET /api/contacts
func (s *Server) ListContacts(c *gin.Context) {
	var contacts []models.Contact
	err := s.DB.Where("property_id = ? AND active = ?", s.config.GetPropertyID(), true).
		Order("display_order ASC, created_at ASC").
		Find(&contacts).Error
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, contacts)
}

// CreateContact creates a contact.
// POST /api/contacts
func (s *Server) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	contact := models.Contact{
		PropertyID:   s.config.GetPropertyID(),
		Role:         req.Role,
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Notes:        req.Notes,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active == nil || *req.Active,
	}
	if HandleServiceError(c, s.DB.Create(&contact).Error) {
		return
	}
	response.SuccessI18n(c, "contact.created", contact)
}

// UpdateContact updates a contact.
// PUT /api/contacts/:id
func (s *Server) UpdateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	var contact models.Contact
	err := s.DB.First(&contact, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID()).Error
	if HandleServiceError(c, err) {
		return
	}

	contact.Role = req.Role
	contact.Name = req.Name
	contact.Phone = req.Phone
	contact.Address = req.Address
	contact.Notes = req.Notes
	contact.DisplayOrder = req.DisplayOrder
	if req.Active != nil {
		contact.Active = *req.Active
	}
	if HandleServiceError(c, s.DB.Save(&contact).Error) {
		return
	}
	response.SuccessI18n(c, "contact.updated", contact)
}

// DeleteContact removes a contact.
// DELETE /api/contacts/:id
func (s *Server) DeleteContact(c *gin.Context) {
	result := s.DB.Delete(&models.Contact{}, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID())
	if HandleServiceError(c, result.Error) {
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, app_errors.ErrResourceNotFound)
		return
	}
	response.SuccessI18n(c, "contact.deleted", nil)
}
