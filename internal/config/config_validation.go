package config

import "time"

// Defaults applied by validate when the corresponding option was not set by
// any configuration source.
const (
	defaultCodeTTL        = 15 * time.Minute
	defaultTokenDuration  = time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultHTTPAddress    = "0.0.0.0:8080"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in
// defaults for optional settings.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.CodeTTL == 0 {
		cfg.App.CodeTTL = defaultCodeTTL
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Mail.RequestTimeout == 0 {
		cfg.Mail.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Photos.RequestTimeout == 0 {
		cfg.Photos.RequestTimeout = defaultRequestTimeout
	}

	return nil
}
