package services

import (
	"context"
	"fmt"

	"hotel-booking/constants"
	apperrors "hotel-booking/errors"
	"hotel-booking/services/gateway"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeResult is the outcome of charging one payment method.
type ChargeResult struct {
	TransactionID string
	Status        string
	ReceiptURL    *string
}

// PaymentMethodProcess charges an amount with one payment method.
type PaymentMethodProcess interface {
	Process(ctx context.Context, amount decimal.Decimal, sourceToken, description string) (*ChargeResult, error)
}

// CreditCardPayment delegates to the card gateway.
type CreditCardPayment struct {
	gateway  gateway.Gateway
	currency string
}

func (p *CreditCardPayment) Process(ctx context.Context, amount decimal.Decimal, sourceToken, description string) (*ChargeResult, error) {
	if sourceToken == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "A payment source token is required for credit card payments", nil)
	}
	if p.gateway == nil {
		return nil, apperrors.Gateway("Payment gateway is not configured", apperrors.ErrGatewayMissing)
	}

	resp, err := p.gateway.Charge(ctx, gateway.ChargeRequest{
		AmountCents: amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency:    p.currency,
		SourceToken: sourceToken,
		Description: description,
	})
	if err != nil {
		return nil, apperrors.Gateway("Payment failed", err)
	}

	result := &ChargeResult{TransactionID: resp.ID, Status: constants.PaymentStatusFailed}
	if resp.Succeeded() {
		result.Status = constants.PaymentStatusCompleted
	}
	if resp.ReceiptURL != "" {
		receipt := resp.ReceiptURL
		result.ReceiptURL = &receipt
	}
	return result, nil
}

// PaypalPayment stands in for the redirect flow and always completes.
type PaypalPayment struct{}

func (PaypalPayment) Process(ctx context.Context, amount decimal.Decimal, sourceToken, description string) (*ChargeResult, error) {
	return &ChargeResult{TransactionID: "PP_" + uuid.NewString(), Status: constants.PaymentStatusCompleted}, nil
}

// CashPayment is collected at the desk and stays pending until an admin confirms it.
type CashPayment struct{}

func (CashPayment) Process(ctx context.Context, amount decimal.Decimal, sourceToken, description string) (*ChargeResult, error) {
	return &ChargeResult{TransactionID: "CASH_" + uuid.NewString(), Status: constants.PaymentStatusPending}, nil
}

// PaymentProcessor picks the process for a payment method.
type PaymentProcessor struct {
	methods map[string]PaymentMethodProcess
}

func NewPaymentProcessor(gw gateway.Gateway, currency string) *PaymentProcessor {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentProcessor{
		methods: map[string]PaymentMethodProcess{
			constants.PaymentMethodCreditCard: &CreditCardPayment{gateway: gw, currency: currency},
			constants.PaymentMethodPaypal:     PaypalPayment{},
			constants.PaymentMethodCash:       CashPayment{},
		},
	}
}

// Charge applies the method's policy to amount.
func (p *PaymentProcessor) Charge(ctx context.Context, method string, amount decimal.Decimal, sourceToken, description string) (*ChargeResult, error) {
	process, ok := p.methods[method]
	if !ok {
		return nil, apperrors.Validation(fmt.Sprintf("Unsupported payment method %q", method))
	}
	return process.Process(ctx, amount, sourceToken, description)
}
