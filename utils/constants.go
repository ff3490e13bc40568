// File: utils/constants.go
package utils

// Gin context keys shared by middleware and handlers.
const (
	ContextUserID = "userID"
	ContextLogger = "logger"
)
