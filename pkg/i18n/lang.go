package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header we are willing to parse.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the supported language that best matches an
// Accept-Language header, honouring quality values. Regional variants match
// their base language ("ja-JP" selects "ja"). The supported code is returned
// exactly as given; defaultLang is returned when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		if i := strings.LastIndexByte(header, ','); i > 0 {
			header = header[:i]
		}
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}
	return matchLanguage(supportedLangs, desired, defaultLang)
}

// matchLanguage runs the x/text matcher over supported codes, skipping any
// that do not parse as BCP 47 tags.
func matchLanguage(supportedLangs []string, desired []language.Tag, defaultLang string) string {
	tags := make([]language.Tag, 0, len(supportedLangs))
	index := make([]int, 0, len(supportedLangs))
	for i, code := range supportedLangs {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		index = append(index, i)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, i, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return defaultLang
	}
	return supportedLangs[index[i]]
}

// NormalizeLanguage maps a single language code onto one of supportedLangs,
// returning "" when it is malformed or unsupported. With no supported list
// the code is only syntax-checked and lower-cased.
func NormalizeLanguage(code string, supportedLangs []string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxLangCodeLength {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	if len(supportedLangs) == 0 {
		return strings.ToLower(code)
	}
	return matchLanguage(supportedLangs, []language.Tag{tag}, "")
}
