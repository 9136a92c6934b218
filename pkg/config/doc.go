// Package config loads settings from environment variables into tagged
// structs, using github.com/caarlos0/env/v11 for parsing and
// github.com/joho/godotenv for .env files.
//
// Load caches the parsed value per struct type, so repeated calls are cheap
// and return the same settings. Parse skips the cache and accepts options,
// which makes it the one to use in tests:
//
//	var cfg Config
//	err := config.Parse(&cfg, config.WithEnvironment(map[string]string{
//	    "STRVALID_LANG": "de",
//	}))
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// matched with errors.Is.
package config
