// Package handler provides HTTP handlers for the application
package handler

import (
	"net/http"
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/response"
	"sitterdesk/internal/services"
	"sitterdesk/internal/types"
	"sitterdesk/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Server bundles the handler dependencies.
type Server struct {
	DB                  *gorm.DB
	config              types.ConfigManager
	PropertyService     *services.PropertyService
	PetService          *services.PetService
	StayService         *services.StayService
	ScheduleService     *services.ScheduleService
	SessionService      *services.SessionService
	AccessLogService    *services.AccessLogService
	ImportExportService *services.ImportExportService
}

// NewServerParams defines the dependencies for the server handler.
type NewServerParams struct {
	DB                  *gorm.DB
	Config              types.ConfigManager
	PropertyService     *services.PropertyService
	PetService          *services.PetService
	StayService         *services.StayService
	ScheduleService     *services.ScheduleService
	SessionService      *services.SessionService
	AccessLogService    *services.AccessLogService
	ImportExportService *services.ImportExportService
}

// NewServer creates a new server handler instance.
func NewServer(params NewServerParams) *Server {
	return &Server{
		DB:                  params.DB,
		config:              params.Config,
		PropertyService:     params.PropertyService,
		PetService:          params.PetService,
		StayService:         params.StayService,
		ScheduleService:     params.ScheduleService,
		SessionService:      params.SessionService,
		AccessLogService:    params.AccessLogService,
		ImportExportService: params.ImportExportService,
	}
}

// HandleServiceError handles service errors uniformly across all handlers.
// Returns true if an error was handled (response already sent to client).
func HandleServiceError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if apiErr, ok := err.(*app_errors.APIError); ok {
		response.Error(c, apiErr)
		return true
	}

	if dbErr := app_errors.ParseDBError(err); dbErr != nil {
		response.Error(c, dbErr)
		return true
	}

	logrus.WithContext(c.Request.Context()).WithError(err).Error("unexpected service error")
	response.Error(c, app_errors.ErrInternalServer)
	return true
}

// Health handles the liveness endpoint.
func (s *Server) Health(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	sqlDB, err := s.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"version":   version.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
