package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gd03champ/ai-comm-agg/internal/domain/searchlink"
	"github.com/gd03champ/ai-comm-agg/internal/utils/platformerrors"
)

// InternalErrorMessage is returned for any failure that is not the caller's fault.
const InternalErrorMessage = searchlink.GenericBuildFailureMessage

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Unsupported platform: ebay"`
}

// HandleError writes err as a JSON error response. Client errors expose their message;
// everything else is answered with a generic detail. Untyped errors are logged here,
// typed ones were already logged where they were created.
func HandleError(c *gin.Context, err error, log zerolog.Logger) {
	platformErr := platformerrors.GetPlatformError(err)
	if platformErr == nil {
		platformErr = platformerrors.AsError(c.Request.Context(), platformerrors.LayerRoute, err, InternalErrorMessage)
		platformerrors.LogError(log, platformErr)
	}

	status := platformerrors.ErrorTypeToHTTPStatus(platformErr.Type)
	detail := platformErr.Message
	if status >= http.StatusInternalServerError {
		detail = InternalErrorMessage
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// HandleValidationError answers 400 for malformed request bodies.
func HandleValidationError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: message})
}
