package student

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/ukane-philemon/gradeboard/internal/db"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	// custom validation tags & texts
	dateTag  = "ddmmyyyy"
	dateText = "{0} must be a valid date in the DD/MM/YYYY format"

	subjectTag  = "subject"
	subjectText = "{0} must be one of the listed subjects"

	requiredTag  = "required"
	requiredText = "{0} is required"
)

func init() {
	locale := en.New()
	translator, _ = ut.New(locale, locale).GetTranslator("en")

	validate = validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(dateTag, func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	registerTranslation(dateTag, dateText, false)

	_ = validate.RegisterValidation(subjectTag, func(fl validator.FieldLevel) bool {
		return IsSubject(fl.Field().String())
	})
	registerTranslation(subjectTag, subjectText, false)

	registerTranslation(requiredTag, requiredText, true)
}

func registerTranslation(tag, text string, override bool) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError lists the fields of an entry form that failed validation.
// It wraps db.ErrorInvalidRequest.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (ve *ValidationError) Error() string {
	msgs := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		msgs = append(msgs, f.Error)
	}
	return fmt.Sprintf("%s: %s", db.ErrorInvalidRequest, strings.Join(msgs, "; "))
}

func (ve *ValidationError) Unwrap() error {
	return db.ErrorInvalidRequest
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate.Struct error: %w", err)
	}

	ve := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Error: fe.Translate(translator)})
	}
	return ve
}

// Validate cleans and validates an add-student form.
func (ns *NewStudent) Validate() error {
	ns.Name = strings.TrimSpace(ns.Name)
	ns.Date = strings.TrimSpace(ns.Date)
	ns.Subject = strings.TrimSpace(ns.Subject)
	ns.Email = strings.ToLower(strings.TrimSpace(ns.Email))
	ns.DateJoined = strings.TrimSpace(ns.DateJoined)
	return validateStruct(ns)
}

// Validate validates an update-student form.
func (us *UpdateStudent) Validate() error {
	if us.Name != nil {
		name := strings.TrimSpace(*us.Name)
		us.Name = &name
	}
	return validateStruct(us)
}
