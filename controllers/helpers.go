package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"restaurant-api/services"
	"restaurant-api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UseJSONFieldNames makes binding errors report JSON field names instead of Go field names.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

// bindingError turns validator output into one readable line per field.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid %s", name), err)
		return 0, false
	}
	return uint(id), true
}

// failPlacement maps an order placement failure to its HTTP response. Nothing was written for any
// of these errors.
func failPlacement(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		response.Fail(c, http.StatusUnprocessableEntity, "Validation failed", err)
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrPackageNotFound),
		errors.Is(err, services.ErrSizeNotFound):
		response.Fail(c, http.StatusInternalServerError, "Failed to place order", err)
	case errors.Is(err, services.ErrConfigurationMissing):
		response.Fail(c, http.StatusInternalServerError, services.ErrConfigurationMissing.Error(), err)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to place order", err)
	}
}

// failQuery maps a read or status-update failure to its HTTP response.
func failQuery(c *gin.Context, message string, err error) {
	switch {
	case services.IsValidation(err):
		response.Fail(c, http.StatusUnprocessableEntity, "Validation failed", err)
	case errors.Is(err, services.ErrOrderNotFound):
		response.Fail(c, http.StatusNotFound, "Order not found", nil)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, message, err)
	}
}
