package gateway

import "context"

// StatusSucceeded is the status a gateway reports for a captured charge.
const StatusSucceeded = "succeeded"

type ChargeRequest struct {
	AmountCents int64
	Currency    string
	SourceToken string
	Description string
}

type ChargeResponse struct {
	ID         string
	Status     string
	ReceiptURL string
}

func (r *ChargeResponse) Succeeded() bool {
	return r != nil && r.Status == StatusSucceeded
}

// Gateway charges a card source with an external provider.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)
}

// GatewayFunc adapts a function to Gateway.
type GatewayFunc func(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)

func (f GatewayFunc) Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error) {
	return f(ctx, req)
}
