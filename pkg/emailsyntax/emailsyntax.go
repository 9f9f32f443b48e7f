package emailsyntax

import (
	"regexp"
	"strings"
)

// ReasonInvalidEmail is the message key reported for every rejected value.
const ReasonInvalidEmail = "invalid_email"

// atext is the set of characters allowed in the local part, apart from dots.
const atext = "A-Za-z0-9!#$%&'*+/=?^_\x60{|}~-"

// emailRegex has no lookahead (RE2), so "no consecutive dots" is enforced by
// a separate pre-scan in Validate.
var emailRegex = regexp.MustCompile(
	`\A[` + atext + `](?:[.` + atext + `]*[` + atext + `])?` +
		`@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+\z`,
)

// Outcome is the result of a single classification.
type Outcome struct {
	Valid bool
	// Reason is empty for valid values and ReasonInvalidEmail otherwise.
	Reason string
}

var (
	valid   = Outcome{Valid: true}
	invalid = Outcome{Reason: ReasonInvalidEmail}
)

// Matcher classifies candidate addresses. The zero value is not usable; use New.
type Matcher struct {
	re        *regexp.Regexp
	maxLocal  int
	maxDomain int
}

// New returns a Matcher. Without options no length ceiling is applied.
func New(opts ...Option) *Matcher {
	m := &Matcher{re: emailRegex}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Validate classifies value. It never fails: every string is either valid or
// invalid.
func (m *Matcher) Validate(value string) Outcome {
	if value == "" || strings.Contains(value, "..") {
		return invalid
	}
	if !m.re.MatchString(value) {
		return invalid
	}
	if m.maxLocal > 0 || m.maxDomain > 0 {
		at := strings.IndexByte(value, '@')
		if m.maxLocal > 0 && at > m.maxLocal {
			return invalid
		}
		if m.maxDomain > 0 && len(value)-at-1 > m.maxDomain {
			return invalid
		}
	}
	return valid
}

// IsValid reports whether value is accepted by m.
func (m *Matcher) IsValid(value string) bool {
	return m.Validate(value).Valid
}

var defaultMatcher = New()

// Validate classifies value with the default matcher.
func Validate(value string) Outcome {
	return defaultMatcher.Validate(value)
}

// IsValid reports whether value is accepted by the default matcher.
func IsValid(value string) bool {
	return defaultMatcher.Validate(value).Valid
}
