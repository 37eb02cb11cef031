package field

import (
	"strconv"
	"strings"

	"github.com/syssam/hammock"
)

// options holds the configuration common to every field: the required flag
// and the default substituted for absent values.
type options struct {
	required bool
	def      any
}

// IsRequired implements part of hammock.Field.
func (o *options) IsRequired() bool { return o.required }

// absent applies the shared contract for missing values: a RequiredError for
// required fields, the configured default otherwise. Type-specific checks
// are never run against an absent value.
func (o *options) absent() (any, error) {
	if o.required {
		return nil, hammock.NewRequiredError()
	}
	return o.def, nil
}

// toFloat coerces numbers and numeric strings to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// toInt reports integer-kind values as int64.
func toInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	}
	return 0, false
}
