// Package validation checks request payloads against ordered rule lists.
// Every rule is evaluated; violations come back in the order the rules were
// declared.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	tagNotEmpty = "notempty"
	tagIsString = "isstring"
	tagScalar   = "scalar"
	tagInteger  = "integer"
)

// Rule names a payload field, the validator tag it must satisfy and the
// message reported when it does not.
type Rule struct {
	Field   string
	Tag     string
	Message string
}

// NotEmpty requires a present value; strings, arrays and objects must be non-empty
func NotEmpty(field, message string) Rule {
	return Rule{Field: field, Tag: tagNotEmpty, Message: message}
}

// Text requires a non-empty string or a number, such as a pincode sent as 411001
func Text(field, message string) Rule {
	return Rule{Field: field, Tag: tagNotEmpty + "," + tagScalar, Message: message}
}

// Number requires a number or a numeric string such as "999.5"
func Number(field, message string) Rule {
	return Rule{Field: field, Tag: "numeric", Message: message}
}

// Integer requires a whole number or an integer string
func Integer(field, message string) Rule {
	return Rule{Field: field, Tag: tagInteger, Message: message}
}

// Email requires an email-shaped string
func Email(field, message string) Rule {
	return Rule{Field: field, Tag: tagIsString + ",email", Message: message}
}

// MinLength requires a string of at least n characters
func MinLength(field string, n int, message string) Rule {
	return Rule{Field: field, Tag: fmt.Sprintf("%s,min=%d", tagIsString, n), Message: message}
}

// Violation is a failed rule
type Violation struct {
	Field   string
	Message string
}

// Validator evaluates rule lists
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom tags registered
func New() *Validator {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation(tagNotEmpty, notEmpty)
	_ = v.RegisterValidation(tagIsString, isString)
	_ = v.RegisterValidation(tagScalar, isScalar)
	_ = v.RegisterValidation(tagInteger, isInteger)
	return &Validator{validate: v}
}

// Validate runs every rule against payload
func (v *Validator) Validate(payload map[string]any, rules []Rule) []Violation {
	var violations []Violation
	for _, rule := range rules {
		value, ok := payload[rule.Field]
		if !ok || value == nil || v.validate.Var(value, rule.Tag) != nil {
			violations = append(violations, Violation{Field: rule.Field, Message: rule.Message})
		}
	}
	return violations
}

func notEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() > 0
	case reflect.Invalid:
		return false
	default:
		return true
	}
}

func isString(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

func isScalar(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String, reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isInteger(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return f == math.Trunc(f) && !math.IsInf(f, 0)
	case reflect.String:
		_, err := strconv.Atoi(field.String())
		return err == nil
	default:
		return false
	}
}
