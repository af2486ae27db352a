package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/barbernet/backend/internal/httperr"
)

// storeErr answers a failed store call. The driver message is logged
// server-side only; clients get the code and a generic message.
func storeErr(c *gin.Context, code string, err error) {
	log.Printf("%s: %v", code, err)
	httperr.Internal(c, code, "Database error.")
}
