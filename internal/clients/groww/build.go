package groww

import "github.com/rs/zerolog"

// Build selects the MarketClient variant for the resolved credentials. With a
// usable token it returns the live client; otherwise it installs the safe
// variant and the gateway keeps serving in degraded mode. It never fails.
func Build(token string, ok bool, log zerolog.Logger) MarketClient {
	if !ok || token == "" {
		log.Warn().Msg("No access token resolved, running in safe mode")
		return NewSafeClient(log)
	}

	log.Info().Msg("Groww client initialized in live mode")
	return NewClient(token, log)
}
