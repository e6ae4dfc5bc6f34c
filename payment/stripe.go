package payment

import (
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/charge"
)

type StripeGateway struct{}

func NewStripeGateway(apiKey string) Gateway {
	stripe.Key = apiKey
	return &StripeGateway{}
}

func (g *StripeGateway) Charge(amount uint, currency string, source string) (*Charge, error) {
	params := &stripe.ChargeParams{
		Amount:   stripe.Int64(int64(amount)),
		Currency: stripe.String(currency),
	}
	if err := params.SetSource(source); err != nil {
		return nil, err
	}

	ch, err := charge.New(params)
	if err != nil {
		return nil, err
	}
	return &Charge{ID: ch.ID, Amount: uint(ch.Amount)}, nil
}
