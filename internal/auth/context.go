package auth

import "github.com/gin-gonic/gin"

// GetStaffUsername returns the authenticated staff member's username or empty string.
func GetStaffUsername(c *gin.Context) string {
	if v, ok := c.Get("staffUsername"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
