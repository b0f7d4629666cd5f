package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/AquaPirot/pirotskevesti/utils"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
				utils.TrackError("panic", "handler")
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}
