package client

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var validate *validator.Validate
var translator ut.Translator

func init() {
	validate = validator.New()
	var ok bool
	translator, ok = ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("client: failed to get 'en' translator")
	}

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// validateQuery runs struct-tag validation on q when it is a struct.
func validateQuery(q Query) error {
	rv := reflect.ValueOf(q)
	if !rv.IsValid() {
		return fmt.Errorf("%w: nil query", ErrInvalidQuery)
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("%w: nil query", ErrInvalidQuery)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	if err := validate.Struct(rv.Interface()); err != nil {
		var verrors validator.ValidationErrors
		if !errors.As(err, &verrors) {
			return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}

		msgs := make([]string, len(verrors))
		for i, verror := range verrors {
			msgs[i] = verror.Translate(translator)
		}

		return fmt.Errorf("%w: %s", ErrInvalidQuery, strings.Join(msgs, "; "))
	}

	return nil
}

// checkRequired reports the first `validate` tag violation found in a
// decoded value as a *DecodeError naming the JSON path of the field.
func checkRequired(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	var err error
	switch rv.Kind() {
	case reflect.Struct:
		err = validate.Struct(rv.Interface())
	case reflect.Slice, reflect.Array, reflect.Map:
		err = validate.Var(rv.Interface(), "dive")
	default:
		return nil
	}
	if err == nil {
		return nil
	}

	var verrors validator.ValidationErrors
	if !errors.As(err, &verrors) || len(verrors) == 0 {
		return &DecodeError{Offset: -1, Expected: "valid value", Found: err.Error(), Err: err}
	}

	verror := verrors[0]
	expected, found := "required field", "missing"
	if verror.Tag() != "required" {
		expected = verror.Tag()
		if verror.Param() != "" {
			expected += "=" + verror.Param()
		}
		found = fmt.Sprintf("%v", verror.Value())
	}

	return &DecodeError{
		Path:     fieldPath(verror.Namespace(), rv.Kind()),
		Offset:   -1,
		Expected: expected,
		Found:    found,
		Err:      errors.New(verror.Translate(translator)),
	}
}

// mapKey matches a non-numeric index, which validator uses for map keys.
var mapKey = regexp.MustCompile(`\[([^\]]*[^\]0-9][^\]]*)\]`)

// fieldPath turns a validator namespace into a JSON field path.
// Struct namespaces start with the Go type name, which is dropped, and
// map keys are written as fields: "rates[usd].value" is "rates.usd.value".
func fieldPath(namespace string, root reflect.Kind) string {
	if root == reflect.Struct {
		if i := strings.IndexByte(namespace, '.'); i >= 0 {
			namespace = namespace[i+1:]
		}
	}
	namespace = mapKey.ReplaceAllString(namespace, ".$1")

	return strings.TrimPrefix(namespace, ".")
}
