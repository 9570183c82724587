package models

import "github.com/dmitrijs2005/lufa/internal/decode"

// Profile is the account profile of the logged in user.
type Profile struct {
	UserID           string `json:"user_id"`
	FirstName        string `json:"first_name"`
	UserName         string `json:"user_name"`
	DonationName     string `json:"donation_name"`
	SubscriptionType string `json:"subscription_type"`

	UserCreated           decode.Date         `json:"user_created"`
	Created               decode.Date         `json:"created"`
	BecameSuperLufavoreOn decode.OptionalDate `json:"became_superlufavore_on"`

	FamilySize              decode.Count      `json:"family_size"`
	GivebackDonationPercent decode.Percentage `json:"giveback_donation_percent"`

	Anonymous                             decode.TriBool `json:"anonymous"`
	Reactivation                          decode.TriBool `json:"reactivation"`
	DGCompanyCoordinator                  decode.TriBool `json:"dg_company_coordinator"`
	CouldGiveRemainingBalance             decode.TriBool `json:"could_give_remaining_balance"`
	SubscriptionsOrderPrepopulationMethod string         `json:"subscriptions_order_prepopulation_method"`
	OrdersOrderPrepopulationMethod        string         `json:"orders_order_prepopulation_method"`

	UserCredits              decode.Money `json:"user_credits"`
	MinBasketPrice           decode.Money `json:"min_basket_price"`
	UserFreeCreditsSpendable decode.Money `json:"user_free_credits_spendable"`
	UserAllCreditsSpendable  decode.Money `json:"user_all_credits_spendable"`
	Earnings                 decode.Money `json:"earnings"`

	IncentiveData IncentiveData `json:"incentive_data"`
}

// IncentiveData describes the weekly-order rewards programme.
type IncentiveData struct {
	ISOWeek           decode.Count `json:"iso_week"`
	OrderedThisWeek   decode.Count `json:"ordered_this_week"`
	WeeksConsidered   decode.Count `json:"nb_weeks_considered"`
	WeeksWithPurchase decode.Count `json:"nb_weeks_with_purchase"`

	AmountSpent       decode.Money `json:"amount_spent"`
	CurrentEarnings   decode.Money `json:"current_earnings"`
	ProjectedEarnings decode.Money `json:"projected_earnings"`

	CreatedAt decode.Timestamp `json:"created_at"`
	UpdatedAt decode.Timestamp `json:"updated_at"`

	WeeksOrdered     string `json:"weeks_ordered"`
	PercentageOfTime string `json:"percentage_of_time"`
}
