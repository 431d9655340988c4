package email

import (
	"context"

	"hrnexus_backend/internal/config"
	"hrnexus_backend/internal/logger"
)

// SimulatedProvider logs outbound mail instead of delivering it.
// It always succeeds.
type SimulatedProvider struct {
	cfg config.EmailConfig
}

func NewSimulatedProvider(cfg config.EmailConfig) *SimulatedProvider {
	return &SimulatedProvider{cfg: cfg}
}

func (p *SimulatedProvider) Send(ctx context.Context, msg *Message) error {
	logger.CtxInfo(ctx, "simulated email sent",
		"from", p.cfg.FromEmail,
		"to", msg.To,
		"subject", msg.Subject,
		"body_length", len(msg.Body),
	)
	return nil
}
