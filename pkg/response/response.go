package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
)

// ErrorBody is the wire shape of every error response. The success flag and
// message match the legacy Express portal; kind is the stable discriminator
// added for clients.
type ErrorBody struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// JSON writes the payload as-is. Resource handlers return raw rows and row
// arrays, not an envelope, so existing front-ends keep parsing.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Cached writes the payload with the advisory freshness window used by the
// public listings. The header is a hint only.
func Cached(c *gin.Context, data interface{}, maxAgeSeconds int) {
	c.Header("Cache-Control", "public, max-age="+strconv.Itoa(maxAgeSeconds))
	c.JSON(http.StatusOK, data)
}

// Error converts err into the common error body.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, ErrorBody{Success: false, Kind: appErr.Kind, Message: appErr.Message})
}
