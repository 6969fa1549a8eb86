package handler

import (
	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/response"
	"sitterdesk/internal/schedule"

	"github.com/gin-gonic/gin"
)

// TaskRequest defines the payload for daily tasks.
type TaskRequest struct {
	Title    string `json:"title" binding:"required"`
	Time     string `json:"time"`
	Category string `json:"category" binding:"omitempty,oneof=pets house general"`
	Notes    string `json:"notes"`
	Active   *bool  `json:"active"`
}

// ListTasks returns daily tasks. Deactivated tasks are included only
// when the all query parameter is set.
// GET /api/tasks
func (s *Server) ListTasks(c *gin.Context) {
	query := s.DB.Where("property_id = ?", s.config.GetPropertyID())
	if c.Query("all") == "" {
		query = query.Where("active = ?", true)
	}

	var tasks []models.DailyTask
	err := query.Order("created_at ASC").Find(&tasks).Error
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, tasks)
}

// CreateTask creates a daily task.
// POST /api/tasks
func (s *Server) CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	category := req.Category
	if category == "" {
		category = models.CategoryGeneral
	}
	task := models.DailyTask{
		PropertyID: s.config.GetPropertyID(),
		Title:      req.Title,
		Time:       schedule.NormalizeTime(req.Time),
		Category:   category,
		Notes:      req.Notes,
		Active:     req.Active == nil || *req.Active,
	}
	if HandleServiceError(c, s.DB.Create(&task).Error) {
		return
	}
	response.SuccessI18n(c, "task.created", task)
}

// UpdateTask updates a daily task.
// PUT /api/tasks/:id
func (s *Server) UpdateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrValidation, err.Error()))
		return
	}

	var task models.DailyTask
	err := s.DB.First(&task, "id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID()).Error
	if HandleServiceError(c, err) {
		return
	}

	task.Title = req.Title
	task.Time = schedule.NormalizeTime(req.Time)
	if req.Category != "" {
		task.Category = req.Category
	}
	task.Notes = req.Notes
	if req.Active != nil {
		task.Active = *req.Active
	}
	if HandleServiceError(c, s.DB.Save(&task).Error) {
		return
	}
	response.SuccessI18n(c, "task.updated", task)
}

// DeleteTask deactivates a task. Tasks are soft-deleted so completed
// history keeps its titles.
// DELETE /api/tasks/:id
func (s *Server) DeleteTask(c *gin.Context) {
	result := s.DB.Model(&models.DailyTask{}).
		Where("id = ? AND property_id = ?", c.Param("id"), s.config.GetPropertyID()).
		Update("active", false)
	if HandleServiceError(c, result.Error) {
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, app_errors.ErrResourceNotFound)
		return
	}
	response.SuccessI18n(c, "task.deleted", nil)
}
