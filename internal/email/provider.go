package email

import (
	"context"

	"hrnexus_backend/internal/config"
)

// Provider sends outbound email.
type Provider interface {
	Send(ctx context.Context, msg *Message) error
}

// NewProvider picks the provider from configuration. The simulated
// provider is the default; SMTP is used only when simulation is off
// and a host is configured.
func NewProvider(cfg config.EmailConfig) Provider {
	if !cfg.Simulate && cfg.SMTPHost != "" {
		return NewSMTPProvider(cfg)
	}
	return NewSimulatedProvider(cfg)
}
