package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UserHeader carries the acting user's id on every authenticated route.
// Identity extraction happens upstream of this service; the header value is
// trusted as-is.
const UserHeader = "X-Sharer-User-Id"

const userIDKey = "userID"

// Identity extracts the numeric user id from the sharer header and aborts
// with 400 when it is missing or malformed.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + UserHeader + " header"})
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + UserHeader + " header"})
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// CallerID returns the user id set by Identity.
func CallerID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
