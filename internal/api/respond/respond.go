// Package respond defines the single JSON envelope used by every endpoint:
// {"data": ...} on success, {"error": "..."} on failure.
package respond

import "github.com/gin-gonic/gin"

func Data(c *gin.Context, status int, v interface{}) {
	c.JSON(status, gin.H{"data": v})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
