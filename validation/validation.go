// Package validation holds the pure parameter checks run before every
// persistence call. Nothing here touches the database: CheckID only
// verifies the hex shape of an id, never that the document exists.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// RequireAll fails if any value is absent: nil, an empty string, a nil
// pointer, or a nil/empty slice all count as missing.
func RequireAll(values ...any) error {
	for _, v := range values {
		if isMissing(v) {
			return fmt.Errorf("%w: required parameter absent", models.ErrMissingParameter)
		}
	}
	return nil
}

func isMissing(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []string:
		return t == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// CheckString trims value and fails unless something remains.
func CheckString(value, fieldName string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s cannot be empty or just spaces", models.ErrInvalidArgument, fieldName)
	}
	return trimmed, nil
}

// CheckID trims value and fails unless it is a well-formed 24-hex-character
// object id. Existence of the referenced document is the caller's problem.
func CheckID(value, fieldName string) (string, error) {
	trimmed, err := CheckString(value, fieldName)
	if err != nil {
		return "", err
	}
	if _, err := primitive.ObjectIDFromHex(trimmed); err != nil {
		return "", fmt.Errorf("%w: %s is not a valid object id", models.ErrInvalidArgument, fieldName)
	}
	return trimmed, nil
}

// CheckNumber rejects NaN and infinities. Zero is a legitimate value: the
// upstream behavior of treating 0 as missing was a bug and is not kept.
func CheckNumber(value float64, fieldName string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s is not a number", models.ErrInvalidArgument, fieldName)
	}
	return value, nil
}

// IsValidDate reports whether value matches YYYY-MM-DD. Only the shape is
// checked; "2024-13-40" passes.
func IsValidDate(value string) bool {
	return dateRe.MatchString(value)
}

// IsValidEmail reports whether value has a local@domain.tld shape.
func IsValidEmail(value string) bool {
	return emailRe.MatchString(value)
}

// CheckStringArray fails unless values is a non-empty slice of non-empty
// strings. Elements are returned trimmed.
func CheckStringArray(values []string, fieldName string) ([]string, error) {
	if values == nil {
		return nil, fmt.Errorf("%w: %s is not an array", models.ErrInvalidArgument, fieldName)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s must have at least one element", models.ErrInvalidArgument, fieldName)
	}
	out := make([]string, len(values))
	for i, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: %s is not an array of non-empty strings", models.ErrInvalidArgument, fieldName)
		}
		out[i] = trimmed
	}
	return out, nil
}

// FormatDate renders t in the YYYY-MM-DD form stored on reviews and comments.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
