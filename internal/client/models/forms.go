package models

import "net/url"

// LoginForm is posted to the login endpoint.
type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Values() url.Values {
	return url.Values{
		"LoginForm[user_email]": {f.Email},
		"LoginForm[password]":   {f.Password},
	}
}

// PerUserForm selects the user an endpoint should answer for.
type PerUserForm struct {
	UserID string
}

func (f PerUserForm) Values() url.Values {
	return url.Values{"user_id": {f.UserID}}
}

// PerOrderForm selects an order.
type PerOrderForm struct {
	OrderID string
}

func (f PerOrderForm) Values() url.Values {
	return url.Values{"order_id": {f.OrderID}}
}
