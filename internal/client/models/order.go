package models

import "github.com/dmitrijs2005/lufa/internal/decode"

// Order is the user's current basket as returned by the order-details
// endpoint.
type Order struct {
	ID           string              `json:"order_id"`
	DeliveryDate decode.OptionalDate `json:"delivery_date"`

	Items   decode.Indexed[OrderItem] `json:"products"`
	Recipes decode.Indexed[Recipe]    `json:"recipes"`
	Amounts CheckoutAmounts           `json:"checkout_amounts"`
}

// OrderItem is a product line of an order.
type OrderItem struct {
	ProductID   string            `json:"product_id"`
	Name        string            `json:"p_name"`
	Vendor      string            `json:"s_name"`
	Description string            `json:"description"`
	Category    string            `json:"cat_na"`
	ImageURL    string            `json:"image_url"`
	ImageURLs   map[string]string `json:"image_urls"`
	OnSale      decode.TriBool    `json:"on_sale"`

	DefaultPrice decode.Money `json:"default_price"`
	DefinedPrice decode.Money `json:"defined_price"`
	Price        decode.Money `json:"price"`
	PaidPrice    decode.Money `json:"paid_price"`

	// Price per unit, e.g. 0.89 per 100 g.
	PPUPrice    decode.OptionalMoney `json:"avg_p_p"`
	PPUQuantity decode.OptionalFloat `json:"avg_p_q"`
	PPUUnit     string               `json:"avg_p_u"`

	Quantity decode.Count `json:"quantity_in_basket"`
	Units    string       `json:"units"`
}

// Recipe is a recipe kit added to the order.
type Recipe struct {
	ID                     string       `json:"recipe_id"`
	Portions               decode.Count `json:"portions"`
	Price                  decode.Money `json:"price"`
	PricePerPortion        decode.Money `json:"price_per_portion"`
	CurrentPrice           decode.Money `json:"current_price"`
	CurrentPricePerPortion decode.Money `json:"current_price_per_portion"`
}

// CheckoutAmounts is the price breakdown of an order.
type CheckoutAmounts struct {
	Total                decode.Money `json:"total"`
	Subtotal             decode.Money `json:"subtotal"`
	DeliveryFees         decode.Money `json:"delivery_fees"`
	RemainingBalance     decode.Money `json:"remaining_balance"`
	Balance              decode.Money `json:"balance"`
	ConsigneAmount       decode.Money `json:"consigne_amount"`
	NationalTax          decode.Money `json:"national_tax"`
	ProvincialTax        decode.Money `json:"provincial_tax"`
	CouponDiscountAmount decode.Money `json:"coupon_discount_amount"`
	OrderDonation        decode.Money `json:"order_donation"`
	DonationDiscount     decode.Money `json:"donation_discount"`
	AvailableWeekly      decode.Money `json:"available_weekly"`
	RemainingWeekly      decode.Money `json:"remaining_weekly"`

	Items map[string]CheckoutAmountsItem `json:"order_details"`
}

// CheckoutAmountsItem is the price of one order line.
type CheckoutAmountsItem struct {
	Price    decode.Money `json:"price"`
	Quantity decode.Count `json:"quantity"`
	Total    decode.Money `json:"row_total"`
}
