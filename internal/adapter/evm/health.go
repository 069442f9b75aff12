package evm

import "context"

// HealthCheck implements ports.HealthChecker for the RPC node.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates an EVM node health checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping checks that the node answers.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.client.eth.BlockNumber(ctx)
	return err
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "evm"
}
