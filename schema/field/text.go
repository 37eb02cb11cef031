package field

import (
	"regexp"
	"unicode/utf8"

	"github.com/syssam/hammock"
)

// emailPattern is derived from the address guidelines in RFC 3696.
var emailPattern = regexp.MustCompile("^((\".+\")|((\\\\\\.))|([\\d\\w!#$%&'*+\\-/=?^_`{|}~]))((\"[^@]+\")|(\\\\\\.)|([\\d\\w!#$%&'*+\\-/=?^_`.{|}~]))*@[a-zA-Z0-9]+([a-zA-Z0-9\\-][a-zA-Z0-9]+)?(\\.[a-zA-Z0-9]+([a-zA-Z0-9\\-][a-zA-Z0-9]+)?)+\\.?$")

// urlPattern is John Gruber's improved URL-matching pattern, anchored to the
// start of the value.
var urlPattern = regexp.MustCompile("^((?:[a-z][\\w-]+:(?:/{1,3}|[a-z0-9%])|www\\d{0,3}[.]|[a-z0-9.\\-]+[.][a-z]{2,4}/)(?:[^\\s()<>]+|\\(([^\\s()<>]+|(\\([^\\s()<>]+\\)))*\\))+(?:\\(([^\\s()<>]+|(\\([^\\s()<>]+\\)))*\\)|[^\\s`!()\\[\\]{};:'\".,<>?«»“”‘’]))")

// textBuilder validates strings, with optional length bounds and patterns.
type textBuilder struct {
	options
	minLen   int
	maxLen   int
	match    *regexp.Regexp
	matchMsg string
	post     *regexp.Regexp
	postMsg  string
}

// Text returns a string field:
//
//	field.Text().MinLen(2).MaxLen(7)
//
// Only string-typed values pass; other types are not coerced.
func Text() *textBuilder {
	return &textBuilder{minLen: -1, maxLen: -1}
}

// Email returns a string field passing addresses that meet the guidelines
// in RFC 3696:
//
//	field.Email().Validate("foo.bar_^&!baz@example.com") // ok
//	field.Email().Validate("@example.com")               // invalid email address
func Email() *textBuilder {
	t := Text()
	t.match = emailPattern
	t.matchMsg = "invalid email address"
	return t
}

// URL returns a string field passing URL tokens:
//
//	field.URL().Validate("https://example.com:8000/a?b=1#c") // ok
//
// The URL check runs after the regular text checks.
func URL() *textBuilder {
	t := Text()
	t.post = urlPattern
	t.postMsg = "not a url"
	return t
}

// Required marks the field as required. Required text also rejects the
// empty string.
func (b *textBuilder) Required() *textBuilder {
	b.required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *textBuilder) Default(v any) *textBuilder {
	b.def = v
	return b
}

// MinLen rejects values shorter than n characters.
func (b *textBuilder) MinLen(n int) *textBuilder {
	b.minLen = n
	return b
}

// MaxLen rejects values longer than n characters.
func (b *textBuilder) MaxLen(n int) *textBuilder {
	b.maxLen = n
	return b
}

// Match rejects values the pattern does not match anywhere in the value
// (a search, not a full match).
func (b *textBuilder) Match(re *regexp.Regexp) *textBuilder {
	b.match = re
	return b
}

// Validate implements hammock.Field.
func (b *textBuilder) Validate(value any) (any, error) {
	if value == nil {
		return b.absent()
	}
	s, ok := value.(string)
	if !ok {
		return nil, hammock.NewValidationError("expected some text")
	}
	if b.required && len(s) == 0 {
		return nil, hammock.NewValidationError("expected some text")
	}
	if b.minLen >= 0 && utf8.RuneCountInString(s) < b.minLen {
		return nil, hammock.NewValidationError("this text is too short")
	}
	if b.maxLen >= 0 && utf8.RuneCountInString(s) > b.maxLen {
		return nil, hammock.NewValidationError("this text is too long")
	}
	if b.match != nil && !b.match.MatchString(s) {
		msg := b.matchMsg
		if msg == "" {
			msg = "does not match the expected pattern"
		}
		return nil, hammock.NewValidationError(msg)
	}
	if b.post != nil && !b.post.MatchString(s) {
		return nil, hammock.NewValidationError(b.postMsg)
	}
	return s, nil
}
