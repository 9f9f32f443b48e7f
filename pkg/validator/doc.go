// Package validator turns field checks into Rule values that carry
// translation-ready error metadata.
//
// A Rule pairs a boolean Check with the ValidationError to report when the
// check fails. Apply evaluates any number of rules and aggregates failures
// into ValidationErrors, which implements error. Every ValidationError names
// the field, a message key and a TranslationKey under the "errors.messages."
// namespace so callers can render it through a locale-aware message table.
//
// # Email rules
//
// ValidEmail, ValidEmailWith and OptionalEmail adapt the pure classifier in
// package emailsyntax to the rule model:
//
//	err := validator.Apply(
//	    validator.RequiredString("email", form.Email),
//	    validator.ValidEmail("email", form.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        msg := translator.Tc(ctx, e.TranslationKey)
//	        // ...
//	    }
//	}
//
// Rules hold no shared state, so building and applying them is safe from any
// goroutine.
package validator
