package field

import (
	"reflect"
	"strings"

	"github.com/syssam/hammock"
)

// geoBuilder validates fixed-size tuples of geographic coordinates.
type geoBuilder struct {
	options
	size    int
	sizeMsg string
}

// BoundingBox returns a field passing a geographic bounding box in SWNE
// order. It accepts a list or a comma-separated string of exactly 4 numbers
// in the range [-180, 180] and returns a [4]float64:
//
//	v := field.BoundingBox()
//	v.Validate([]any{42.75804, -85.0031, 42.76409, -84.9861})
//	v.Validate("42.75804,-85.0031, 42.76409, -84.9861")
func BoundingBox() *geoBuilder {
	return &geoBuilder{size: 4, sizeMsg: "a bounding box must have 4 values"}
}

// LatLng returns a field passing a geographic point. It accepts a list or a
// comma-separated string of exactly 2 numbers in the range [-180, 180] and
// returns a [2]float64:
//
//	v := field.LatLng()
//	v.Validate("42.76066, -84.9929")
func LatLng() *geoBuilder {
	return &geoBuilder{size: 2, sizeMsg: "a point must have 2 values"}
}

// Required marks the field as required.
func (b *geoBuilder) Required() *geoBuilder {
	b.required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *geoBuilder) Default(v any) *geoBuilder {
	b.def = v
	return b
}

// Validate implements hammock.Field.
func (b *geoBuilder) Validate(value any) (any, error) {
	if value == nil {
		return b.absent()
	}
	elems, err := coordinateElements(value)
	if err != nil {
		return nil, err
	}
	if len(elems) != b.size {
		return nil, hammock.NewValidationError(b.sizeMsg)
	}
	coords := make([]float64, b.size)
	for i, elem := range elems {
		f, ok := toFloat(elem)
		// The inverted comparison also rejects NaN, which strconv parses.
		if !ok || !(f >= -180.0 && f <= 180.0) {
			return nil, hammock.NewValidationError("all values must be numbers in the range -180.0 to 180.0")
		}
		coords[i] = f
	}
	if b.size == 2 {
		return [2]float64{coords[0], coords[1]}, nil
	}
	return [4]float64{coords[0], coords[1], coords[2], coords[3]}, nil
}

func coordinateElements(value any) ([]any, error) {
	if s, ok := value.(string); ok {
		parts := strings.Split(s, ",")
		elems := make([]any, len(parts))
		for i, p := range parts {
			elems[i] = strings.TrimSpace(p)
		}
		return elems, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, hammock.NewValidationError("expected a comma-separated list of values or a list")
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, nil
}
