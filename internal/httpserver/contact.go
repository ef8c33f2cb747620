package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	contactsvc "nexusai-site/internal/service/contact"
)

const (
	invalidBodyMessage  = "Invalid request body"
	sendFailedMessage   = "Failed to send message. Please try again later."
	maxContactBodyBytes = 64 << 10
)

func contactHandler(svc ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes)

		var in contactsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, invalidBodyMessage)
			return
		}

		res, err := svc.Submit(c.Request.Context(), in)
		if err != nil {
			var verr *contactsvc.ValidationError
			if errors.As(err, &verr) {
				body := gin.H{"error": verr.Message}
				if len(verr.Fields) > 0 {
					body["fields"] = verr.Fields
				}
				c.JSON(http.StatusBadRequest, body)
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": sendFailedMessage})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
