package helper

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var vehicleRegPattern = regexp.MustCompile(`^[A-Z]{2,10}(-[A-Z0-9]{1,6}){1,4}$`)

// Validator wraps validator/v10 with English messages keyed by json field names.
type Validator struct {
	engine *validator.Validate
	trans  ut.Translator
}

func NewValidator() *Validator {
	engine := validator.New()
	engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(engine, trans); err != nil {
		panic(err)
	}

	v := &Validator{engine: engine, trans: trans}
	v.register("vehicle_reg", "{0} must look like ABC-1234 (upper-case letters, dash separated)", func(fl validator.FieldLevel) bool {
		return vehicleRegPattern.MatchString(fl.Field().String())
	})
	v.register("year4", "{0} must be a 4-digit year", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 4 {
			return false
		}
		n, err := strconv.Atoi(s)
		return err == nil && n >= 1900 && n <= 2999
	})
	v.register("hhmm", "{0} must be a time in HH:MM format", func(fl validator.FieldLevel) bool {
		_, _, err := ParseClock(fl.Field().String())
		return err == nil
	})
	return v
}

func (v *Validator) register(tag, message string, fn validator.Func) {
	if err := v.engine.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
	_ = v.engine.RegisterTranslation(tag, v.trans,
		func(t ut.Translator) error { return t.Add(tag, message, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

func (v *Validator) Engine() *validator.Validate { return v.engine }

// Struct validates s and returns nil when it passes.
func (v *Validator) Struct(s any) FieldErrors {
	err := v.engine.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return FieldErrors{{Field: "_", Message: err.Error()}}
	}
	var out FieldErrors
	for _, e := range ve {
		out = out.Add(e.Field(), e.Translate(v.trans))
	}
	return out
}

// ParseClock reads "HH:MM" (or "HH:MM:SS") into hour and minute.
func ParseClock(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, errors.New("invalid clock")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, errors.New("invalid hour")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, errors.New("invalid minute")
	}
	return h, m, nil
}
