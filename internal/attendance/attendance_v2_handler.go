package attendance

import (
	"net/http"

	"bluscan-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const v2NotImplementedMessage = "API version 2 is not yet implemented. Please use /api/v1/attendance/"

// V2Handler is the permanent stub behind /api/v2. It has no service or
// repository dependency on purpose: every endpoint answers 501 with a
// fixed message and touches nothing, whatever the payload.
type V2Handler struct{}

func NewV2Handler() *V2Handler {
	return &V2Handler{}
}

func (h *V2Handler) Create(c *gin.Context) {
	response.Message(c, http.StatusNotImplemented, v2NotImplementedMessage)
}

func (h *V2Handler) List(c *gin.Context) {
	response.Message(c, http.StatusNotImplemented, v2NotImplementedMessage)
}
