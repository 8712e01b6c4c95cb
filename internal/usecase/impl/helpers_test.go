package impl

import (
	"io"
	"log/slog"

	"inndoor/config"
)

// newDiscardLogger returns a logger that swallows all output so tests stay quiet.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig builds a minimal config for service tests. Accounts listed in
// adminIDs are treated as privileged.
func newTestConfig(adminIDs ...string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: 5,
			AdminAccountIDs:   adminIDs,
		},
		Commission: &config.CommissionConfig{
			AgentShare: 0.4,
			Tolerance:  0.01,
		},
		Pagination: &config.PaginationConfig{
			DefaultLimit: 20,
			MaxLimit:     100,
		},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}
