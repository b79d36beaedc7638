package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RequestValidator handles structural validation of request payloads.
// Domain rules (price sign, referential checks) belong to the service layer.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// Struct runs the validate tags of a bound payload.
func (rv *RequestValidator) Struct(v interface{}) error {
	return rv.validate.Struct(v)
}

// parseIDParam reads a numeric path parameter. On failure it writes the 400
// response itself and reports false, so handlers can just return.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id64), true
}
