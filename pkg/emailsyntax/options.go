package emailsyntax

// RFC 5321 section 4.5.3.1 size limits, in octets.
const (
	RFC5321MaxLocalPart = 64
	RFC5321MaxDomain    = 255
)

// Option configures a Matcher.
type Option func(*Matcher)

// WithMaxLengths caps the local part and domain lengths in bytes.
// A non-positive value leaves that part unbounded.
func WithMaxLengths(local, domain int) Option {
	return func(m *Matcher) {
		m.maxLocal = max(local, 0)
		m.maxDomain = max(domain, 0)
	}
}

// WithRFC5321Limits applies the 64 / 255 octet ceilings.
func WithRFC5321Limits() Option {
	return WithMaxLengths(RFC5321MaxLocalPart, RFC5321MaxDomain)
}
