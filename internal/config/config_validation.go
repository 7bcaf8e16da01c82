package config

import "fmt"

// signingAlgorithms lists the HMAC algorithms accepted for token signing.
// The algorithm must match between issue and verify.
var signingAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// applyDefaults fills fields that remained zero after merging all sources.
// The signing secret is deliberately excluded: it has no default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenAlgorithm == "" {
		cfg.App.TokenAlgorithm = DefaultTokenAlgorithm
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenExpiryDays == 0 {
		cfg.App.TokenExpiryDays = DefaultTokenExpiryDays
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A weak signing secret is rejected here, once, at process start: the server
// must refuse to run rather than issue forgeable tokens. The weakness is
// never re-checked per request.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.AuthSecret) < MinAuthSecretLen {
		return fmt.Errorf("%w: got %d characters, need at least %d",
			ErrWeakAuthSecret, len(cfg.App.AuthSecret), MinAuthSecretLen)
	}

	if _, ok := signingAlgorithms[cfg.App.TokenAlgorithm]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTokenAlgorithm, cfg.App.TokenAlgorithm)
	}

	if cfg.App.TokenExpiryDays < 0 {
		return ErrInvalidTokenExpiry
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
