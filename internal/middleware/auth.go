package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/icb-gaia/app-cadastro/internal/config"
)

// AdminAuth guards the moderation endpoints with the configured static bearer
// token. A missing or malformed header yields 401; a well-formed header with
// the wrong token yields 403. The comparison is constant time.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(config.AppConfig.AdminToken)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		c.Next()
	}
}
