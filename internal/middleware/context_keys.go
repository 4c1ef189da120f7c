package middleware

import "github.com/gin-gonic/gin"

// operatorKey is the key used to store the authenticated operator's username.
const operatorKey = contextKey("operator")

// GetOperatorFromContext retrieves the authenticated operator from the Gin context.
// It returns the username and a boolean indicating if it was found.
func GetOperatorFromContext(c *gin.Context) (string, bool) {
	operatorVal := c.Request.Context().Value(operatorKey)
	if operatorVal == nil {
		return "", false
	}

	operator, ok := operatorVal.(string)
	if !ok || operator == "" {
		return "", false
	}

	return operator, true
}
