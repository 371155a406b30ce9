package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// First returns one message to show in a single error banner; forms here
// surface one problem at a time, the way the old client did.
func (fe FieldErrors) First() string {
	for _, v := range fe {
		return v
	}
	return ""
}

// FromBindError converts a bind/validation error into a field->message
// map. dst is the bound struct pointer (to read form tags from).
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(key, fe.Tag(), fe.Param())
		}
		return out
	}

	// Diğer bind hataları (tip mismatch vs)
	out["_"] = "Invalid form data."
	return out
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag := f.Tag.Get("form")
	if tag == "" {
		return strings.ToLower(structField)
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(field, tag, param string) string {
	switch tag {
	case "required":
		return "The " + field + " field is required."
	case "email":
		return "Please enter a valid email address."
	case "min":
		return "Must be at least " + param + " characters."
	case "max":
		return "Must be at most " + param + " characters."
	case "numeric", "number":
		return "The " + field + " field must be a number."
	default:
		return "Invalid value."
	}
}
