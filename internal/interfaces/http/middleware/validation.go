package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/acme/backend/internal/infrastructure/logger"
	"github.com/acme/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var (
	contractCodePattern = regexp.MustCompile(`^[A-Z]{1,3}-\d{3}$`)
	invoiceCodePattern  = regexp.MustCompile(`^IN-\d{4}-\d{4}$`)
	currencyPattern     = regexp.MustCompile(`^[A-Z]{3}$`)
)

var (
	setupOnce sync.Once
	setupErr  error
)

// SetupValidator configures gin's validator: JSON tag names in errors and
// the custom tags used by the role forms. Safe to call more than once.
func SetupValidator() error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin binding validator is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})

		custom := map[string]validator.Func{
			"contract_code": matches(contractCodePattern),
			"module_code":   matches(contractCodePattern),
			"invoice_code":  matches(invoiceCodePattern),
			"currency":      matches(currencyPattern),
			"past":          inThePast,
		}
		for tag, fn := range custom {
			if err := v.RegisterValidation(tag, fn); err != nil {
				setupErr = err
				return
			}
		}
	})
	return setupErr
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func inThePast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.Before(time.Now())
}

// ValidationDetails turns a binding or form validation error into localized
// details. It returns nil for errors that are not validation failures.
func ValidationDetails(err error, tag language.Tag) []dto.ValidationDetail {
	var formErr *form.ValidationError
	if errors.As(err, &formErr) {
		details := make([]dto.ValidationDetail, 0, len(formErr.Fields))
		for _, f := range formErr.Fields {
			details = append(details, dto.ValidationDetail{
				Field:   f.Field,
				Code:    f.Code,
				Message: i18n.Translate(tag, f.Code),
			})
		}
		return details
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]dto.ValidationDetail, 0, len(validationErrors))
		for _, e := range validationErrors {
			key := bindingKey(e)
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Code:    key,
				Message: i18n.Translate(tag, key),
			})
		}
		return details
	}
	return nil
}

// HandleValidationError writes a 422 VALIDATION_ERROR response in the request locale
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(
		"Request validation failed",
		c.GetString(logger.GinRequestIDKey),
		ValidationDetails(err, GetLocale(c)),
	))
}

// bindingKey maps a validator tag onto a message key
func bindingKey(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return i18n.KeyRequired
	case "max":
		if e.Kind() == reflect.String {
			return i18n.KeyTooLong
		}
		return i18n.KeyRange
	case "min":
		if e.Kind() == reflect.String {
			return i18n.KeyTooShort
		}
		return i18n.KeyRange
	case "contract_code", "module_code", "invoice_code":
		return i18n.KeyPattern
	case "url":
		return i18n.KeyURL
	case "email":
		return i18n.KeyEmail
	case "oneof", "gte", "lte", "gt", "lt":
		return i18n.KeyRange
	case "currency":
		return i18n.KeyCurrency
	case "past":
		return i18n.KeyPast
	default:
		return i18n.KeyInvalid
	}
}
