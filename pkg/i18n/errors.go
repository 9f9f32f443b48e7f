package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrNilParser            = errors.New("translation parser is nil")
	ErrEmptyLanguageCode    = errors.New("empty language code found")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrParsingCancelled     = errors.New("translation parsing cancelled")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyTranslationFile = errors.New("translation file is empty")
	ErrFailedToReadDir      = errors.New("failed to read translations directory")
	ErrNoTranslationFiles   = errors.New("no valid translation files found")
)
