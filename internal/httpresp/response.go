package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Deleted confirms a removal and echoes the removed record under key.
func Deleted(c *gin.Context, message, key string, record any) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		key:       record,
	})
}
