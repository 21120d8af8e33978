package attendance

import (
	"net/http"
	"strconv"

	"bluscan-backend/internal/shared/apperror"
	"bluscan-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

// Create handles POST /api/v1/attendance/ from the Android app.
func (h *Handler) Create(c *gin.Context) {
	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Attendance record stored successfully")
}

// List handles GET /api/v1/attendance/ with skip/limit pagination and an
// optional student_id filter.
func (h *Handler) List(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		writeServiceError(c, apperror.Validation([]apperror.FieldError{{
			Field:  "skip",
			Reason: "Skip must be an integer greater than or equal to 0",
		}}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 1 || limit > maxListLimit {
		writeServiceError(c, apperror.Validation([]apperror.FieldError{{
			Field:  "limit",
			Reason: "Limit must be an integer between 1 and 500",
		}}))
		return
	}

	resp, err := h.service.List(c.Request.Context(), skip, limit, c.Query("student_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /api/v1/attendance/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/attendance/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Attendance record deleted successfully")
}

func recordID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeServiceError(c, apperror.Validation([]apperror.FieldError{{
			Field:  "id",
			Reason: "Id must be an integer",
		}}))
		return 0, false
	}
	return id, true
}
