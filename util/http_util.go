// util/http_util.go
package util

import (
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"message": message})
}

func GetOperatorIDFromContext(c *gin.Context) (string, error) {
	operatorID, exists := c.Get("operatorID")
	if !exists {
		return "", nil
	}
	return operatorID.(string), nil
}
