package handler

import (
	"net/http"

	"goeco/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// StatusHandler reports service liveness including storage reachability.
type StatusHandler struct {
	db *gorm.DB
}

// NewStatusHandler is the constructor for StatusHandler, injected by Fx.
func NewStatusHandler(db *gorm.DB) *StatusHandler {
	return &StatusHandler{db: db}
}

// Status reports whether the service and its database are reachable.
func (h *StatusHandler) Status(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return response.InternalServerError(c, "DATABASE_ERROR", "Database handle unavailable")
	}
	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return response.InternalServerError(c, "DATABASE_ERROR", "Database unreachable")
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Service is running"}, "Service is healthy")
}

// Welcome is the unauthenticated landing route.
func Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to GoEco-Living!"})
}
