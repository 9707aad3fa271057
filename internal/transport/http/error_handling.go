package httpt

import (
	"errors"
	"net/http"

	"tireshop/internal/entity"
	"tireshop/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// handleServiceError is the single translator from workflow failures to
// HTTP statuses. notFoundMsg names the entity the endpoint looks up;
// NotFound deliberately maps to 400, matching InvalidArgument.
func (h *Handler) handleServiceError(c *gin.Context, err error, op, notFoundMsg string) {
	log := h.log.Ctx(c.Request.Context())

	var validationErr *entity.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, errorResponse{Message: validationErr.Message})
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "entity not found",
			logger.String("op", op),
			logger.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusBadRequest, errorResponse{Message: notFoundMsg})
	case errors.Is(err, entity.ErrTireUnavailable):
		c.JSON(http.StatusConflict, errorResponse{Message: entity.ErrTireUnavailable.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, errorResponse{Message: entity.ErrInvalidCredentials.Error()})
	default:
		// never leak the cause text
		log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
			logger.Any("error", err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}

// bindJSON decodes and validates a request body. Schema failures answer
// with a field-to-reason details map; malformed bodies with a plain 400.
func (h *Handler) bindJSON(c *gin.Context, out any) bool {
	err := c.ShouldBindJSON(out)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details[fieldErr.Field()] = validationReason(fieldErr)
		}
		c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Validation failed",
			Details: details,
		})
		return false
	}

	c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
	return false
}

func (h *Handler) handleInvalidID(c *gin.Context, op, value string) {
	h.log.Ctx(c.Request.Context()).LogAttrs(c.Request.Context(), logger.WarnLevel,
		"invalid id parameter",
		logger.String("op", op),
		logger.String("value", value),
	)
	c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid value for parameter: id"})
}

func validationReason(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fieldErr.Param()
	case "max", "lte":
		return "must be at most " + fieldErr.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + fieldErr.Param()
	default:
		return "is invalid"
	}
}
