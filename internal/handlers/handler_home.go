package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// home is a minimal landing route for liveness probes and humans poking at
// the root path.
func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "barter_books_app", "status": "ok"})
}
