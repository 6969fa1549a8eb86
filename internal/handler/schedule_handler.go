package handler

import (
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/response"

	"github.com/gin-gonic/gin"
)

const isoDate = "2006-01-02"

// GetSchedule returns the master schedule for a day, both as the flat
// sorted agenda and grouped by display time. Defaults to today.
// GET /api/schedule?date=YYYY-MM-DD
func (s *Server) GetSchedule(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(isoDate, raw)
		if err != nil {
			response.ErrorI18nFromAPIError(c, app_errors.ErrValidation, "validation.bad_date")
			return
		}
		day = parsed
	}

	view, err := s.ScheduleService.ForDate(day)
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, view)
}
