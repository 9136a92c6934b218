package i18n

import "errors"

var (
	ErrNilAdapter    = errors.New("translation adapter is nil")
	ErrEmptyLanguage = errors.New("empty language code")
	ErrNoMessages    = errors.New("no messages for language")

	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")

	ErrLoadingCancelled      = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrFailedToParseFile     = errors.New("failed to parse translation file")
	ErrNoTranslationFiles    = errors.New("no translation files found")
)
