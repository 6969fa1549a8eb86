package handler

import (
	"fmt"
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/response"

	"github.com/gin-gonic/gin"
)

// ExportData streams a gzip JSON backup of the portal content.
// GET /api/export
func (s *Server) ExportData(c *gin.Context) {
	filename := fmt.Sprintf("sitterdesk-backup-%s.json.gz", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/gzip")

	if err := s.ImportExportService.Export(c.Writer); err != nil {
		// Headers are already out; all we can do is log through the
		// error handler path without writing a second body.
		c.Error(err)
	}
}

// ImportData restores a backup uploaded as the request body.
// POST /api/import
func (s *Server) ImportData(c *gin.Context) {
	if HandleServiceError(c, s.ImportExportService.Import(c.Request.Body)) {
		return
	}
	response.SuccessI18n(c, "import.completed", nil)
}

// ListAccessLogs returns portal entries, newest first, paginated.
// GET /api/access-logs?page=&page_size=
func (s *Server) ListAccessLogs(c *gin.Context) {
	var entries []models.AccessLog
	page, err := response.Paginate(c, s.AccessLogService.Query(), &entries)
	if err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}
	response.Success(c, page)
}
