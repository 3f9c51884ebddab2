package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.English},
		{"es-ES,es;q=0.9", language.Spanish},
		{"en-GB", language.English},
		{"fr-FR", language.English},
		{"de;q=0.5,es;q=0.8", language.Spanish},
		{";;;", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.header))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "The budget must be greater than zero", Translate(language.English, KeyContractNegativeAmount))
	assert.Equal(t, "El presupuesto debe ser mayor que cero", Translate(language.Spanish, KeyContractNegativeAmount))
	assert.Equal(t, "unknown.key", Translate(language.Spanish, "unknown.key"))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(language.English, true))
	assert.Equal(t, "Sí", YesNo(language.Spanish, true))
	assert.Equal(t, "No", YesNo(language.English, false))
	assert.Equal(t, "No", YesNo(language.Spanish, false))
}
