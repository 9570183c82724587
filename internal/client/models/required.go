package models

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrijs2005/lufa/internal/decode"
)

// decodeRecord unmarshals data into out after checking that every key in
// required is present. Money and timestamp types decode an absent key to
// their zero value, which is indistinguishable from a real zero amount.
// A JSON null leaves out untouched.
func decodeRecord(data []byte, out any, record string, required ...string) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &decode.DecodeError{Type: record, Value: string(data), Reason: "expected an object", Err: err}
	}
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			return &decode.DecodeError{Type: record, Value: key, Reason: "missing required field"}
		}
	}
	return json.Unmarshal(data, out)
}

func (c *Card) UnmarshalJSON(data []byte) error {
	type plain Card
	return decodeRecord(data, (*plain)(c), "card", "cc_exp")
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	return decodeRecord(data, (*plain)(t), "transaction", "transaction_time", "total")
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	return decodeRecord(data, (*plain)(o), "order", "checkout_amounts")
}

func (i *OrderItem) UnmarshalJSON(data []byte) error {
	type plain OrderItem
	return decodeRecord(data, (*plain)(i), "order item",
		"default_price", "defined_price", "price", "paid_price")
}

func (r *Recipe) UnmarshalJSON(data []byte) error {
	type plain Recipe
	return decodeRecord(data, (*plain)(r), "recipe",
		"price", "price_per_portion", "current_price", "current_price_per_portion")
}

func (a *CheckoutAmounts) UnmarshalJSON(data []byte) error {
	type plain CheckoutAmounts
	return decodeRecord(data, (*plain)(a), "checkout amounts",
		"total", "subtotal", "delivery_fees", "remaining_balance", "balance",
		"consigne_amount", "national_tax", "provincial_tax", "coupon_discount_amount",
		"order_donation", "donation_discount", "available_weekly", "remaining_weekly")
}

func (i *CheckoutAmountsItem) UnmarshalJSON(data []byte) error {
	type plain CheckoutAmountsItem
	return decodeRecord(data, (*plain)(i), "checkout item", "price", "row_total")
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	type plain Profile
	return decodeRecord(data, (*plain)(p), "profile",
		"user_created", "created", "user_credits", "min_basket_price",
		"user_free_credits_spendable", "user_all_credits_spendable", "earnings",
		"incentive_data")
}

func (d *IncentiveData) UnmarshalJSON(data []byte) error {
	type plain IncentiveData
	return decodeRecord(data, (*plain)(d), "incentive data",
		"amount_spent", "current_earnings", "projected_earnings", "created_at", "updated_at")
}

func (t *OrderTracking) UnmarshalJSON(data []byte) error {
	type plain OrderTracking
	return decodeRecord(data, (*plain)(t), "order tracking", "order_amount")
}
