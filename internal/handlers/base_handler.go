package handlers

import (
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every handler needs: binding with
// validation and identity access.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// Identity returns the caller resolved by the session middleware, or nil.
func (h *BaseHandler) Identity(c *gin.Context) *dto.Identity {
	return middleware.GetIdentity(c)
}

// BindAndValidateJSON binds the JSON body and runs struct validation,
// writing the error response itself on failure.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}
