package pizzaserver

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the storefront's cart session identifier. A missing
// or blank header gets a fresh identifier, echoed back so the client can
// persist it.
const SessionHeader = "X-Session-ID"

func sessionID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(SessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SessionHeader, id)
	return id
}
