package utils

import "github.com/gin-gonic/gin"

// JSONError renders the structured error envelope used across the API.
func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// JSONRetryable marks a degraded failure the caller may retry.
func JSONRetryable(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message, "retryable": true}})
}
