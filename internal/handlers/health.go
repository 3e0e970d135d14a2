package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/icb-gaia/app-cadastro/internal/config"
)

// HealthCheck godoc
// @Summary Health check
// @Description Reports the health of the service and its dependencies
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	mongoStatus := "healthy"
	if err := config.MongoDB.Client().Ping(ctx, nil); err != nil {
		mongoStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if config.Redis == nil {
		redisStatus = "unavailable"
	} else if err := config.Redis.Ping(ctx).Err(); err != nil {
		redisStatus = "unhealthy"
	}

	status := http.StatusOK
	overall := "healthy"
	if mongoStatus != "healthy" {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":    overall,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": gin.H{
			"mongodb": mongoStatus,
			"redis":   redisStatus,
		},
	})
}
