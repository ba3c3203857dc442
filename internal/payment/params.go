package payment

import (
	"strings"

	"github.com/stripe/stripe-go/v81"

	"storefront/internal/model"
)

// SessionOptions carries the fixed parts of every checkout session.
type SessionOptions struct {
	Currency     string
	ShippingRate string
	FrontendURL  string
}

// SuccessURL is where Stripe redirects after payment.
func (o SessionOptions) SuccessURL() string {
	return strings.TrimRight(o.FrontendURL, "/") + "/success"
}

// CancelURL is where Stripe redirects when the customer backs out.
func (o SessionOptions) CancelURL() string {
	return strings.TrimRight(o.FrontendURL, "/") + "/cancel"
}

// UnitAmount converts a cart price into Stripe's integer unit amount, rounding
// half away from zero.
func UnitAmount(item model.CartItem) int64 {
	return item.Price.Round(0).IntPart()
}

// BuildCheckoutParams describes a card payment session with one adjustable line
// item per cart item.
func BuildCheckoutParams(items []model.CartItem, opts SessionOptions) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(opts.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(UnitAmount(item)),
			},
			AdjustableQuantity: &stripe.CheckoutSessionLineItemAdjustableQuantityParams{
				Enabled: stripe.Bool(true),
				Minimum: stripe.Int64(1),
			},
			Quantity: stripe.Int64(item.Qty),
		})
	}

	params := &stripe.CheckoutSessionParams{
		SubmitType:               stripe.String(string(stripe.CheckoutSessionSubmitTypePay)),
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionAuto)),
		LineItems:                lineItems,
		SuccessURL:               stripe.String(opts.SuccessURL()),
		CancelURL:                stripe.String(opts.CancelURL()),
	}
	if opts.ShippingRate != "" {
		params.ShippingOptions = []*stripe.CheckoutSessionShippingOptionParams{
			{ShippingRate: stripe.String(opts.ShippingRate)},
		}
	}
	return params
}

// CartTotal is the amount Stripe will charge before shipping and quantity edits.
func CartTotal(items []model.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += UnitAmount(item) * item.Qty
	}
	return total
}
