// Package locales embeds the message tables shipped with the service.
package locales

import "embed"

// FS holds every *.yml table, keyed at the root by language code.
//
//go:embed *.yml
var FS embed.FS
