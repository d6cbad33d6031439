package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery converts a handler panic into a 500 response instead of
// killing the connection. The backend being a remote spreadsheet means
// plenty of partially-typed data flows through the handlers; a panic on
// one request must not take the server down.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				id, _ := c.Get("requestID")
				log.Printf("PANIC recovered [%v]: %v", id, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
