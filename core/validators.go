package core

import (
	"reflect"
	"regexp"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/kodelab/panel/core/editor"
)

var (
	// custom validation tags & texts
	answerKeyTag   = "answerkey"
	answerKeyText  = "must be exactly 10 digits (numbers only)"
	answerKeyRegex = regexp.MustCompile(`^\d{10}$`)

	// html content whose rendered text must not be blank
	htmlTextTag  = "htmltext"
	htmlTextText = "content cannot be empty"

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = "this field is required"
)

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(answerKeyTag, answerKeyValidation)
	RegisterCustomTranslation(validate, translator, answerKeyTag, answerKeyText)

	_ = validate.RegisterValidation(htmlTextTag, htmlTextValidation)
	RegisterCustomTranslation(validate, translator, htmlTextTag, htmlTextText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, requiredWithTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// answerKeyValidation only allows exactly 10 numeric digits.
func answerKeyValidation(fl validator.FieldLevel) bool {
	return answerKeyRegex.MatchString(fl.Field().String())
}

// htmlTextValidation requires the field's HTML to render to non-blank text.
func htmlTextValidation(fl validator.FieldLevel) bool {
	return editor.StripTags(fl.Field().String()) != ""
}
