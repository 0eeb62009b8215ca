// Package validation decodes untyped request payloads into typed inputs and
// checks them, collecting every problem into a single invalid error.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	appErr "github.com/uptraa/platform/pkg/errors"
)

// Mode selects how keys not declared by the input are treated.
type Mode int

const (
	// Open ignores unknown keys.
	Open Mode = iota
	// Strict rejects unknown top-level keys.
	Strict
)

// Input is a request schema. Normalize runs after decoding and before checks.
type Input interface {
	Normalize()
	messages() map[string]string
}

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	english := en.New()
	trans, _ = ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Sprintf("register validator translations: %v", err))
	}

	registerRules(validate)
}

// Bind decodes payload into dst, normalizes it and validates it. Any problem
// yields a CodeInvalid AppError whose message is "<field>: <reason>" entries
// joined with ", ". Every mistyped field is reported; rule checks still run
// for the fields that decoded.
func Bind(payload map[string]any, dst Input, mode Mode) error {
	msgs := dst.messages()
	var problems []string

	if mode == Strict {
		problems = append(problems, unknownKeys(payload, dst)...)
	}

	mistyped := map[string]bool{}
	decodeFields(payload, reflect.ValueOf(dst).Elem(), "", mistyped, msgs, &problems)

	dst.Normalize()

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return appErr.Wrap(err, appErr.CodeInternal, "validation failed")
		}
		for _, fe := range verrs {
			if underMistyped(fieldPath(fe), mistyped) {
				continue
			}
			problems = append(problems, fieldProblem(fe, msgs))
		}
	}

	if len(problems) > 0 {
		return appErr.Invalid(problems...)
	}
	return nil
}

// decodeFields sets each declared field of dst from its payload key on its
// own, so one bad value does not hide the next. Nested objects recurse.
func decodeFields(payload map[string]any, dst reflect.Value, prefix string, mistyped map[string]bool, msgs map[string]string, problems *[]string) {
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		name := jsonName(t.Field(i))
		if name == "" {
			continue
		}
		val, ok := payload[name]
		if !ok || val == nil {
			continue
		}
		path := prefix + name
		field := dst.Field(i)
		ft := field.Type()

		if st := derefType(ft); st.Kind() == reflect.Struct {
			obj, isObj := val.(map[string]any)
			if !isObj {
				mistyped[path] = true
				*problems = append(*problems, typeProblem(path, ft, msgs))
				continue
			}
			target := reflect.New(st)
			decodeFields(obj, target.Elem(), path+".", mistyped, msgs, problems)
			if ft.Kind() == reflect.Pointer {
				field.Set(target)
			} else {
				field.Set(target.Elem())
			}
			continue
		}

		raw, err := json.Marshal(val)
		if err == nil {
			target := reflect.New(ft)
			if err = json.Unmarshal(raw, target.Interface()); err == nil {
				field.Set(target.Elem())
				continue
			}
		}
		mistyped[path] = true
		*problems = append(*problems, typeProblem(path, ft, msgs))
	}
}

// underMistyped reports whether path is, or sits below, a field that already
// failed to decode.
func underMistyped(path string, mistyped map[string]bool) bool {
	for p := range mistyped {
		if path == p || strings.HasPrefix(path, p+".") {
			return true
		}
	}
	return false
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func unknownKeys(payload map[string]any, dst Input) []string {
	known := map[string]bool{}
	t := derefType(reflect.TypeOf(dst))
	for i := 0; i < t.NumField(); i++ {
		if name := jsonName(t.Field(i)); name != "" {
			known[name] = true
		}
	}

	var out []string
	for key := range payload {
		if !known[key] {
			out = append(out, fmt.Sprintf("%s: Unrecognized key", key))
		}
	}
	sort.Strings(out)
	return out
}

func typeProblem(path string, t reflect.Type, msgs map[string]string) string {
	if msg, ok := msgs[path+".type"]; ok {
		return fmt.Sprintf("%s: %s", path, msg)
	}
	return fmt.Sprintf("%s: Expected %s", path, kindName(t))
}

func kindName(t reflect.Type) string {
	t = derefType(t)
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64, reflect.Int32:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return t.Kind().String()
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldProblem(fe validator.FieldError, msgs map[string]string) string {
	path := fieldPath(fe)
	if msg, ok := msgs[path+"."+fe.Tag()]; ok {
		return fmt.Sprintf("%s: %s", path, msg)
	}
	return fmt.Sprintf("%s: %s", path, fe.Translate(trans))
}
