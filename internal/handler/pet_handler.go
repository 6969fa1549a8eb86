package handler

import (
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/response"
	"sitterdesk/internal/schedule"

	"github.com/gin-gonic/gin"
)

// petView decorates a pet with its rendered age.
type petView struct {
	models.Pet
	Age string `json:"age,omitempty"`
}

func toPetView(pet models.Pet) petView {
	return petView{Pet: pet, Age: schedule.CalculateAge(pet.Birthdate, time.Now())}
}

// ListPets returns all pets with rendered ages.
// GET /api/pets
func (s *Server) ListPets(c *gin.Context) {
	pets, err := s.PetService.List()
	if HandleServiceError(c, err) {
		return
	}
	views := make([]petView, 0, len(pets))
	for _, pet := range pets {
		views = append(views, toPetView(pet))
	}
	response.Success(c, views)
}

// GetPet returns a single pet.
// GET /api/pets/:id
func (s *Server) GetPet(c *gin.Context) {
	pet, err := s.PetService.Get(c.Param("id"))
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, toPetView(*pet))
}

// CreatePet creates a pet. Schedule times are normalized and smart
// medicine end dates derived by the service.
// POST /api/pets
func (s *Server) CreatePet(c *gin.Context) {
	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	if pet.Name == "" {
		response.Error(c, app_errors.NewValidationError("name is required"))
		return
	}

	if HandleServiceError(c, s.PetService.Create(&pet)) {
		return
	}
	response.SuccessI18n(c, "pet.created", toPetView(pet))
}

// UpdatePet replaces a pet record.
// PUT /api/pets/:id
func (s *Server) UpdatePet(c *gin.Context) {
	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	if pet.Name == "" {
		response.Error(c, app_errors.NewValidationError("name is required"))
		return
	}

	updated, err := s.PetService.Update(c.Param("id"), &pet)
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "pet.updated", toPetView(*updated))
}

// DeletePet removes a pet.
// DELETE /api/pets/:id
func (s *Server) DeletePet(c *gin.Context) {
	if HandleServiceError(c, s.PetService.Delete(c.Param("id"))) {
		return
	}
	response.SuccessI18n(c, "pet.deleted", nil)
}
