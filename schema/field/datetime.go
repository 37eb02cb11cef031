package field

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/syssam/hammock"
)

// DefaultLayout is the fixed-format fallback layout: a short date followed
// by a 24-hour clock time.
const DefaultLayout = "01/02/06 15:04:05"

// DateParser parses a string representation of a date and/or time.
type DateParser func(value string) (time.Time, error)

var naturalLanguage = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseNaturalLanguage parses casual expressions such as "today" or
// "next friday at 10am", relative to the current time. The whole value must
// be a date expression; a match on only part of the input is an error, so
// that formatted date strings fall through to the later parsers in the
// chain.
func ParseNaturalLanguage(value string) (time.Time, error) {
	r, err := naturalLanguage.Parse(value, time.Now())
	if err != nil {
		return time.Time{}, err
	}
	if r == nil || strings.TrimSpace(r.Text) != strings.TrimSpace(value) {
		return time.Time{}, fmt.Errorf("no date found in %q", value)
	}
	return r.Time, nil
}

// ParseAnyFormat guesses the layout of a date string and parses it.
func ParseAnyFormat(value string) (time.Time, error) {
	return dateparse.ParseAny(value)
}

// dateTimeBuilder validates many representations of date and time,
// coercing them to time.Time.
type dateTimeBuilder struct {
	options
	layout     string
	useNatural bool
	useGeneral bool
	parsers    []DateParser
}

// DateTime returns a date/time field. A time.Time value passes unchanged,
// numeric values are read as Unix timestamps and converted to UTC, and
// strings go through an ordered chain of parsers: natural language first,
// format guessing second, and the fixed layout last. The first parser that
// succeeds wins; if none does, validation fails with "unrecognized date
// format".
//
//	v := field.DateTime()
//	v.Validate("tomorrow at noon")     // time.Time
//	v.Validate("2011-09-17 04:08:16")  // time.Time
//	v.Validate(1316232496)             // time.Time (UTC)
//	v.Validate("balloon torches")      // unrecognized date format
func DateTime() *dateTimeBuilder {
	return &dateTimeBuilder{
		layout:     DefaultLayout,
		useNatural: true,
		useGeneral: true,
	}
}

// Required marks the field as required.
func (b *dateTimeBuilder) Required() *dateTimeBuilder {
	b.required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *dateTimeBuilder) Default(v any) *dateTimeBuilder {
	b.def = v
	return b
}

// Layout sets the fixed-format fallback layout. It defaults to
// DefaultLayout.
func (b *dateTimeBuilder) Layout(layout string) *dateTimeBuilder {
	b.layout = layout
	return b
}

// WithoutNaturalLanguage removes the natural-language slot from the chain.
func (b *dateTimeBuilder) WithoutNaturalLanguage() *dateTimeBuilder {
	b.useNatural = false
	return b
}

// WithoutGeneralParser removes the format-guessing slot from the chain.
func (b *dateTimeBuilder) WithoutGeneralParser() *dateTimeBuilder {
	b.useGeneral = false
	return b
}

// Parsers replaces the parser chain wholesale. The parsers are tried in
// order and the first success wins.
func (b *dateTimeBuilder) Parsers(parsers ...DateParser) *dateTimeBuilder {
	b.parsers = parsers
	return b
}

func (b *dateTimeBuilder) chain() []DateParser {
	if b.parsers != nil {
		return b.parsers
	}
	var parsers []DateParser
	if b.useNatural {
		parsers = append(parsers, ParseNaturalLanguage)
	}
	if b.useGeneral {
		parsers = append(parsers, ParseAnyFormat)
	}
	layout := b.layout
	parsers = append(parsers, func(value string) (time.Time, error) {
		return time.Parse(layout, value)
	})
	return parsers
}

// Validate implements hammock.Field.
func (b *dateTimeBuilder) Validate(value any) (any, error) {
	if value == nil {
		return b.absent()
	}
	if t, ok := value.(time.Time); ok {
		return t, nil
	}
	if n, ok := toInt(value); ok {
		return time.Unix(n, 0).UTC(), nil
	}
	switch f := value.(type) {
	case float64:
		return unixFloat(f), nil
	case float32:
		return unixFloat(float64(f)), nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, hammock.NewValidationError("not a date or time")
	}
	for _, parse := range b.chain() {
		if t, err := parse(s); err == nil {
			return t, nil
		}
	}
	return nil, hammock.NewValidationError("unrecognized date format")
}

func unixFloat(ts float64) time.Time {
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}
