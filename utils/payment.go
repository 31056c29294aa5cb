package utils

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/tohahpro/trendNest-server/config"
)

// CreatePaymentIntent asks the gateway for a card-only payment intent in
// USD minor units. The returned client secret is what the browser needs
// to confirm the charge; nothing else from the intent is surfaced.
func CreatePaymentIntent(amountCents int64) (*stripe.PaymentIntent, error) {
	stripe.Key = config.GetEnv("STRIPE_SECRET_KEY", "")

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	return paymentintent.New(params)
}
