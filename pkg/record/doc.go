// Package record attaches localized validation messages to records.
//
// A record lists its rules through the Validatable interface. Validate runs
// them, resolves the translation key of every failed rule under the locale
// stored in the context and collects the messages per field:
//
//	func (u User) Rules() []validator.Rule {
//		return []validator.Rule{
//			validator.RequiredString("email", u.Email),
//			validator.ValidEmail("email", u.Email),
//		}
//	}
//
//	errs := record.Validate(ctx, translator, user)
//	errs.Get("email") // []string{"invalid email"}
//
// Messages for a field keep the order of the rules that produced them.
package record
