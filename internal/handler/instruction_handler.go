package handler

import (
	"encoding/json"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/response"
	"sitterdesk/internal/schedule"

	"github.com/gin-gonic/gin"
)

// InstructionRequest defines the payload for house instructions. The
// schedule block is optional; without it the instruction is reference
// material only.
type InstructionRequest struct {
	Category     string          `json:"category" binding:"required"`
	Subcategory  string          `json:"subcategory"`
	Instructions json.RawMessage `json:"instructions"`
	Schedule     *struct {
		Frequency       string `json:"frequency" binding:"required,oneof=none one_time daily weekly monthly"`
		Day             string `json:"day"`
		Date            string `json:"date" binding:"omitempty,iso_date"`
		Time            string `json:"time"`
		GeneralTime     string `json:"general_time"`
		DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=0"`
		RemindDayBefore bool   `json:"remind_day_before"`
	} `json:"schedule"`
}

func (req *InstructionRequest) apply(inst *models.HouseInstruction) {
	inst.Category = req.Category
	inst.Subcategory = req.Subcategory
	if req.Instructions != nil {
		inst.Instructions = []byte(req.Instructions)
	}
	if req.Schedule == nil {
		inst.ScheduleFrequency = models.FrequencyNone
		inst.ScheduleDay = ""
		inst.ScheduleDate = ""
		inst.ScheduleTime = ""
		inst.ScheduleGeneralTime = ""
		inst.ScheduleDurationMinutes = 0
		inst.RemindDayBefore = false
		return
	}
	inst.ScheduleFrequency = req.Schedule.Frequency
	inst.ScheduleDay = req.Schedule.Day
	inst.ScheduleDate = req.Schedule.Date
	inst.ScheduleTime = schedule.NormalizeTime(req.Schedule.Time)
	inst.ScheduleGeneralTime = req.Schedule.GeneralTime
	inst.ScheduleDurationMinutes = req.Schedule.DurationMinutes
	inst.RemindDayBefore = req.Schedule.RemindDayBefore
}

// ListInstructions returns house instructions grouped by category on
// the client; the server just orders them stably.
// GET /api/instructions
func (s *Server) ListInstructions(c *gin.Context) {
	var instructions []models.HouseInstruction
	err := s.DB.Where("property_id = ?", s.config.GetPropertyID()).
		Order("category ASC, created_at ASC").
		Find(&instructions).Error
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, instructions)
}

// CreateInstruction creates a house instruction.
// POST /api/instructions
func (s *Server) CreateInstruction(c *gin.Context) {
	var req InstructionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	inst := models.HouseInstruction{PropertyID: s.config.GetPropertyID()}
	req.apply(&inst)
	if HandleServiceError(c, s.DB.Create(&inst).Error) {
		return
	}
	response.SuccessI18n(c, "instruction.created", inst)
}

// UpdateInstruction updates a house instruction.
// PUT /api/instructions/:id
func (s *Server) UpdateInstruction(c *gin.Context) {
	var req InstructionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	var inst models.HouseInstruction
	err := s.DB.First(&inst, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID()).Error
	if HandleServiceError(c, err) {
		return
	}

	req.apply(&inst)
	if HandleServiceError(c, s.DB.Save(&inst).Error) {
		return
	}
	response.SuccessI18n(c, "instruction.updated", inst)
}

// DeleteInstruction removes a house instruction.
// DELETE /api/instructions/:id
func (s *Server) DeleteInstruction(c *gin.Context) {
	result := s.DB.Delete(&models.HouseInstruction{}, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID())
	if HandleServiceError(c, result.Error) {
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, app_errors.ErrResourceNotFound)
		return
	}
	response.SuccessI18n(c, "instruction.deleted", nil)
}
