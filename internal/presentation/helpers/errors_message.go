package helpers

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// englishTranslator is shared by every controller; the locale set never
// changes at runtime.
var englishTranslator = newEnglishTranslator()

func newEnglishTranslator() ut.Translator {
	eng := en.New()
	trans, _ := ut.New(eng, eng).GetTranslator("en")
	return trans
}

// GetErrorMessages renders a validator failure as a single comma-joined,
// human-readable string for the error response body.
func GetErrorMessages(validate *validator.Validate, errs error) string {
	en_translations.RegisterDefaultTranslations(validate, englishTranslator)

	var errorMessages []string
	for _, e := range errs.(validator.ValidationErrors) {
		errorMessages = append(errorMessages, e.Translate(englishTranslator))
	}
	return strings.Join(errorMessages, ", ")
}
