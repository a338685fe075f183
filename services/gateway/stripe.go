package gateway

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/charge"
)

// StripeGateway charges card tokens through the Stripe charges API.
type StripeGateway struct {
	client charge.Client
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{
		client: charge.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
	}
}

func (g *StripeGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(req.AmountCents),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	if err := params.SetSource(req.SourceToken); err != nil {
		return nil, fmt.Errorf("stripe source: %w", err)
	}

	ch, err := g.client.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe charge: %w", err)
	}
	return &ChargeResponse{
		ID:         ch.ID,
		Status:     string(ch.Status),
		ReceiptURL: ch.ReceiptURL,
	}, nil
}
