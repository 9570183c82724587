package models

import "github.com/dmitrijs2005/lufa/internal/decode"

// BillingData bundles the saved payment cards and the transaction history.
// Cards arrive as an array when there are none and as an object otherwise.
type BillingData struct {
	Cards        decode.Indexed[Card] `json:"cards"`
	Transactions []Transaction        `json:"transactions"`
}

// Card is a saved payment card.
type Card struct {
	ID       string            `json:"cc_id"`
	Brand    string            `json:"cc_type"`
	LastFour string            `json:"cc_last_4"`
	Expiry   decode.CardExpiry `json:"cc_exp"`
	Expired  decode.TriBool    `json:"expired"`
	Priority decode.Count      `json:"cc_priority"`
	Type     string            `json:"type"`
}

// Transaction is a billing history line. Most amounts only exist for order
// transactions and are optional.
type Transaction struct {
	OrderID   string           `json:"order_id"`
	Title     string           `json:"title_string"`
	Type      string           `json:"transaction_type"`
	Timestamp decode.Timestamp `json:"transaction_time"`
	Total     decode.Money     `json:"total"`

	TotalOrderAmount    decode.OptionalMoney `json:"total_order_amount"`
	BasketCost          decode.OptionalMoney `json:"basket_cost"`
	PreviousAmountDue   decode.OptionalMoney `json:"previous_amount_due"`
	DonationAmount      decode.OptionalMoney `json:"donation_amount"`
	CharityReceived     decode.OptionalMoney `json:"charity_received"`
	TotalConsigneAmount decode.OptionalMoney `json:"total_consigne_amount"`
}
