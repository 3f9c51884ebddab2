package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/acme/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type bindingProbe struct {
	Code     string    `json:"code" binding:"required,contract_code"`
	Invoice  string    `json:"invoice" binding:"omitempty,invoice_code"`
	Currency string    `json:"currency" binding:"omitempty,currency"`
	Moment   time.Time `json:"moment" binding:"omitempty,past"`
	Goals    string    `json:"goals" binding:"max=10"`
	Link     string    `json:"link" binding:"omitempty,url"`
}

func bindProbe(t *testing.T, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	require.NoError(t, SetupValidator())

	var bindErr error
	router := gin.New()
	router.Use(Locale())
	router.POST("/check", func(c *gin.Context) {
		var in bindingProbe
		if bindErr = c.ShouldBindJSON(&in); bindErr != nil {
			HandleValidationError(c, bindErr)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "es")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, bindErr
}

func TestSetupValidator_Idempotent(t *testing.T) {
	assert.NoError(t, SetupValidator())
	assert.NoError(t, SetupValidator())
}

func TestCustomTags_Accept(t *testing.T) {
	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	w, err := bindProbe(t, `{"code":"ABC-123","invoice":"IN-2024-0001","currency":"EUR","moment":"`+past+`","link":"https://acme.example"}`)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCustomTags_RejectLocalized(t *testing.T) {
	future := time.Now().Add(time.Hour).Format(time.RFC3339)
	w, err := bindProbe(t, `{"code":"abc-1","invoice":"IN-24-1","currency":"eur","moment":"`+future+`","goals":"far too long for ten"}`)

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

	byField := map[string]dto.ValidationDetail{}
	for _, d := range resp.Error.Details {
		byField[d.Field] = d
	}
	assert.Equal(t, i18n.KeyPattern, byField["code"].Code)
	assert.Equal(t, i18n.KeyPattern, byField["invoice"].Code)
	assert.Equal(t, i18n.KeyCurrency, byField["currency"].Code)
	assert.Equal(t, i18n.KeyPast, byField["moment"].Code)
	assert.Equal(t, i18n.KeyTooLong, byField["goals"].Code)
	assert.Equal(t, "El momento debe estar en el pasado", byField["moment"].Message)
}

func TestCustomTags_Required(t *testing.T) {
	w, _ := bindProbe(t, `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"code"`)
	assert.Contains(t, w.Body.String(), i18n.KeyRequired)
}

func TestValidationDetails_FormError(t *testing.T) {
	errs := form.NewErrors()
	errs.Add("budget", i18n.KeyContractNegativeAmount)
	errs.Add("code", i18n.KeyContractDuplicated)

	details := ValidationDetails(errs.Err(), language.English)

	require.Len(t, details, 2)
	assert.Equal(t, "budget", details[0].Field)
	assert.Equal(t, i18n.KeyContractNegativeAmount, details[0].Code)
	assert.Equal(t, "The budget must be greater than zero", details[0].Message)
	assert.Equal(t, "code", details[1].Field)
}

func TestValidationDetails_OtherError(t *testing.T) {
	assert.Nil(t, ValidationDetails(assert.AnError, language.English))
}
