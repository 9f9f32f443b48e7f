package record

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/mailvalid/mailvalid/pkg/validator"
)

// Validatable is implemented by records that declare validation rules.
type Validatable interface {
	Rules() []validator.Rule
}

// Translator resolves a message key under the locale stored in ctx.
// *i18n.Translator satisfies it.
type Translator interface {
	Tc(ctx context.Context, key string, args ...string) string
}

// Validate applies the rules of rec and returns the localized messages of
// every failed rule, or nil when rec is valid.
func Validate(ctx context.Context, tr Translator, rec Validatable) Errors {
	if rec == nil {
		return nil
	}
	return Translate(ctx, tr, validator.Collect(rec.Rules()...))
}

// Valid reports whether rec passes all its rules.
func Valid(ctx context.Context, tr Translator, rec Validatable) bool {
	return Validate(ctx, tr, rec).IsEmpty()
}

// Translate converts rule failures into localized messages. A nil
// translator leaves the untranslated message keys in place.
func Translate(ctx context.Context, tr Translator, errs validator.ValidationErrors) Errors {
	if errs.IsEmpty() {
		return nil
	}

	out := NewErrors()
	for _, err := range errs {
		out.Add(err.Field, message(ctx, tr, err))
	}
	return out
}

func message(ctx context.Context, tr Translator, err validator.ValidationError) string {
	if tr == nil {
		return err.Message
	}
	key := err.TranslationKey
	if key == "" {
		key = validator.TranslationKey(err.Message)
	}
	return tr.Tc(ctx, key, args(err.TranslationValues)...)
}

// args flattens translation values into name, value pairs in key order.
func args(values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values)*2)
	for _, name := range slices.Sorted(maps.Keys(values)) {
		out = append(out, name, fmt.Sprint(values[name]))
	}
	return out
}
