// Package emailsyntax decides whether a string is an acceptable email address.
//
// The check is purely syntactic: one anchored regular expression plus a
// pre-scan for consecutive dots. It never performs DNS or MX lookups and it
// never rewrites the input. A failing value yields an Outcome carrying the
// message key ReasonInvalidEmail; resolving that key to user-facing text is
// the caller's job (see the i18n and record packages).
//
// # Grammar
//
//   - Local part: one or more of A-Z a-z 0-9 ! # $ % & ' * + / = ? ^ _ ` { | } ~ -
//     and ".", never starting or ending with "." and never containing "..".
//   - Exactly one "@".
//   - Domain: labels of A-Z a-z 0-9 -, joined by ".", at least two labels,
//     no empty label.
//
// # Usage
//
//	out := emailsyntax.Validate("jane.doe@mail.example.com")
//	if !out.Valid {
//	    msg := translator.Tc(ctx, "errors.messages."+out.Reason)
//	    // ...
//	}
//
// A Matcher built with New can additionally enforce the RFC 5321 length
// ceilings:
//
//	strict := emailsyntax.New(emailsyntax.WithRFC5321Limits())
//	strict.Validate(addr)
//
// # Concurrency
//
// Matchers are immutable after construction. Go's regexp engine runs in time
// linear in the input, so adversarial input cannot trigger backtracking.
package emailsyntax
