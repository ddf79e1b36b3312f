package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func abortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Error: msg, RequestID: requestIDFrom(c)})
}

// statusFor maps a conversion error to an HTTP status.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, cv2pdf.ErrConfigInvalid),
		errors.Is(err, cv2pdf.ErrInvalidPageSize),
		errors.Is(err, cv2pdf.ErrInvalidOrientation),
		errors.Is(err, cv2pdf.ErrInvalidMargin),
		errors.Is(err, cv2pdf.ErrInvalidWatermarkColor),
		errors.Is(err, cv2pdf.ErrInvalidWatermarkOpacity),
		errors.Is(err, cv2pdf.ErrInvalidWatermarkAngle):
		return http.StatusUnprocessableEntity
	case cv2pdf.IsBackendError(err):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, cv2pdf.ErrPoolClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides internal detail from 5xx responses.
func publicMessage(status int, err error) string {
	switch status {
	case http.StatusBadGateway:
		return "PDF backend unavailable"
	case http.StatusGatewayTimeout:
		return "render timed out"
	case http.StatusServiceUnavailable:
		return "server is shutting down"
	case http.StatusInternalServerError:
		return "internal error"
	}
	return err.Error()
}
