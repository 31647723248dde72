package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.Chart)
	registerTransactionRoutes(v1, services.Transaction)
	registerJournalRoutes(v1, services.Journal)
	registerReportingRoutes(v1, services.Reporting)
}

// parseTimeParam parses an optional date query parameter. Both RFC 3339
// timestamps and bare dates are accepted.
func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
