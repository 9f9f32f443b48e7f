package emailsyntax_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailvalid/mailvalid/pkg/emailsyntax"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid email format", func(t *testing.T) {
		t.Parallel()
		validEmails := []string{
			"an_unique_valid_email@example.com",
			"an.unique.valid.email@any.subdomain.example.com",
			"a@b.co",
			"ab@example.com",
			"a.b@example.com",
			"user+tag@example.org",
			"o'connor@example.ie",
			"!#$%&'*+/=?^_`{|}~-@example.com",
			"1234567890@123.123.123.123",
			"email@example-one.com",
			"email@-example.com",
			"UPPER.Case@Example.COM",
		}

		for _, email := range validEmails {
			out := emailsyntax.Validate(email)
			assert.True(t, out.Valid, "email should be valid: %s", email)
			assert.Empty(t, out.Reason, "valid outcome carries no reason: %s", email)
		}
	})

	t.Run("wrong structure", func(t *testing.T) {
		t.Parallel()
		tests := map[string]string{
			"without @":        "invalid.example.com",
			"with multiple @s": "invalid@email@example.com",
			"empty string":     "",
			"only @":           "@",
			"empty local":      "@example.com",
			"empty domain":     "user@",
			"leading space":    " user@example.com",
			"trailing space":   "user@example.com ",
			"trailing newline": "user@example.com\n",
			"inner space":      "us er@example.com",
		}

		for name, email := range tests {
			out := emailsyntax.Validate(email)
			assert.False(t, out.Valid, "%s: %q", name, email)
			assert.Equal(t, emailsyntax.ReasonInvalidEmail, out.Reason, "%s: %q", name, email)
		}
	})

	t.Run("wrong domain structure", func(t *testing.T) {
		t.Parallel()
		tests := map[string]string{
			"domain without dot":      "invalid_email@example",
			"trailing dot":            "invalid_email@example.",
			"leading dot":             "invalid_email@.example",
			"doubled dot":             "invalid_email@example..com",
			"underscore in label":     "invalid_email@exa_mple.com",
			"unicode label":           "invalid_email@exämple.com",
			"symbol not in label set": "invalid_email@example!.com",
		}

		for name, email := range tests {
			assert.False(t, emailsyntax.IsValid(email), "%s: %q", name, email)
		}
	})

	t.Run("wrong local-part structure", func(t *testing.T) {
		t.Parallel()
		tests := map[string]string{
			"ends with dot":     "invalid_email.@example.com",
			"starts with dot":   ".invalid_email@example.com",
			"only a dot":        ".@example.com",
			"consecutive dots":  "invalid..email@example.com",
			"quoted local part": `"john"@example.com`,
			"unicode local":     "jöhn@example.com",
			"comma":             "a,b@example.com",
		}

		for name, email := range tests {
			assert.False(t, emailsyntax.IsValid(email), "%s: %q", name, email)
		}
	})
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"an_unique_valid_email@example.com",
		"invalid_email@example",
		"",
	}
	for _, in := range inputs {
		first := emailsyntax.Validate(in)
		for range 5 {
			assert.Equal(t, first, emailsyntax.Validate(in))
		}
	}
}

func TestValidate_Grammar(t *testing.T) {
	t.Parallel()

	locals := []string{"a", "ab", "a.b", "first.middle.last", "x-y_z", "~tilde~"}
	domains := []string{"example.com", "a.b", "sub.domain.example.org", "x-1.y-2.z"}

	t.Run("every well-formed combination is valid", func(t *testing.T) {
		for _, l := range locals {
			for _, d := range domains {
				assert.True(t, emailsyntax.IsValid(l+"@"+d), "%s@%s", l, d)
			}
		}
	})

	t.Run("breaking any single rule makes it invalid", func(t *testing.T) {
		for _, l := range locals {
			for _, d := range domains {
				broken := []string{
					l + d,                 // missing @
					l + "@@" + d,          // extra @
					l + "@" + d + "@" + d, // two @
					"." + l + "@" + d,     // leading dot in local
					l + ".@" + d,          // trailing dot in local
					l + "..x@" + d,        // double dot in local
					l + "@." + d,          // leading dot in domain
					l + "@" + d + ".",     // trailing dot in domain
					l + "@" + strings.Replace(d, ".", "..", 1),
					l + "@" + strings.ReplaceAll(d, ".", ""), // no dot at all
				}
				for _, b := range broken {
					assert.False(t, emailsyntax.IsValid(b), "%q", b)
				}
			}
		}
	})
}

func TestMatcher_Lengths(t *testing.T) {
	t.Parallel()

	long64 := strings.Repeat("a", 64)
	long65 := strings.Repeat("a", 65)
	domain255 := strings.Repeat("d", 251) + ".com"
	domain256 := strings.Repeat("d", 252) + ".com"
	require.Len(t, domain255, 255)

	t.Run("default matcher has no ceiling", func(t *testing.T) {
		assert.True(t, emailsyntax.IsValid(long65+"@"+domain256))
	})

	t.Run("rfc 5321 limits", func(t *testing.T) {
		m := emailsyntax.New(emailsyntax.WithRFC5321Limits())
		assert.True(t, m.IsValid(long64+"@example.com"))
		assert.False(t, m.IsValid(long65+"@example.com"))
		assert.True(t, m.IsValid("user@"+domain255))
		assert.False(t, m.IsValid("user@"+domain256))

		out := m.Validate(long65 + "@example.com")
		assert.Equal(t, emailsyntax.ReasonInvalidEmail, out.Reason)
	})

	t.Run("custom limits", func(t *testing.T) {
		m := emailsyntax.New(emailsyntax.WithMaxLengths(3, 0))
		assert.True(t, m.IsValid("abc@a-very-long-domain-name.example.com"))
		assert.False(t, m.IsValid("abcd@example.com"))
	})

	t.Run("limits still require valid syntax", func(t *testing.T) {
		m := emailsyntax.New(emailsyntax.WithRFC5321Limits())
		assert.False(t, m.IsValid("invalid_email@example"))
	})
}

func TestValidate_Concurrent(t *testing.T) {
	t.Parallel()

	m := emailsyntax.New()
	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.True(t, m.IsValid("an.unique.valid.email@any.subdomain.example.com"))
			} else {
				assert.False(t, m.IsValid("invalid_email.@example.com"))
			}
		}(i)
	}
	wg.Wait()
}

func TestValidate_PathologicalInputBoundedTime(t *testing.T) {
	t.Parallel()

	inputs := []string{
		strings.Repeat("a", 1<<20) + "@example.com",
		strings.Repeat("a.", 1<<19) + "@example.com",
		"user@" + strings.Repeat("a.", 1<<19),
		strings.Repeat("a", 1<<20) + "@" + strings.Repeat("-", 1<<20),
		strings.Repeat("@", 1<<20),
	}

	start := time.Now()
	for _, in := range inputs {
		emailsyntax.Validate(in)
	}
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.True(t, emailsyntax.IsValid(inputs[0]))
	assert.False(t, emailsyntax.IsValid(inputs[1]))
	assert.False(t, emailsyntax.IsValid(inputs[2]))
}

func BenchmarkValidate(b *testing.B) {
	for b.Loop() {
		emailsyntax.Validate("an.unique.valid.email@any.subdomain.example.com")
	}
}
