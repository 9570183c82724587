package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lufa/internal/client/models"
	"github.com/dmitrijs2005/lufa/internal/common"
	"github.com/dmitrijs2005/lufa/internal/decode"
)

// Profile returns the profile of the logged in user.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var env models.ApiResponse[models.Profile]
	if err := c.fetchPerUser(ctx, "/users/profileData", &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("failed to get profile data: %w", common.ErrUnexpectedResponse)
	}
	return env.Data, nil
}

func (c *Client) billingData(ctx context.Context) (*models.BillingData, error) {
	var env models.ApiResponse[models.BillingData]
	if err := c.fetchPerUser(ctx, "/users/billingData", &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("failed to get billing data: %w", common.ErrUnexpectedResponse)
	}
	return env.Data, nil
}

// Cards returns the saved payment cards keyed by position.
func (c *Client) Cards(ctx context.Context) (decode.Indexed[models.Card], error) {
	bd, err := c.billingData(ctx)
	if err != nil {
		return nil, err
	}
	return bd.Cards, nil
}

// Transactions returns the billing history.
func (c *Client) Transactions(ctx context.Context) ([]models.Transaction, error) {
	bd, err := c.billingData(ctx)
	if err != nil {
		return nil, err
	}
	return bd.Transactions, nil
}

// ActiveOrder returns the user's current order.
func (c *Client) ActiveOrder(ctx context.Context) (*models.Order, error) {
	if err := c.GuardLoggedIn(ctx); err != nil {
		return nil, err
	}
	const path = "/superMarket/GetUserOrderDetails"
	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := decodeJSON(resp, path, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// TrackOrder returns delivery tracking for orderID.
func (c *Client) TrackOrder(ctx context.Context, orderID string) (*models.OrderTracking, error) {
	if err := c.GuardLoggedIn(ctx); err != nil {
		return nil, err
	}
	const path = "/orders/getTrackOrderData"
	resp, err := c.postForm(ctx, path, models.PerOrderForm{OrderID: orderID}.Values())
	if err != nil {
		return nil, err
	}
	var tracking models.OrderTracking
	if err := decodeJSON(resp, path, &tracking); err != nil {
		return nil, err
	}
	return &tracking, nil
}

// fetchPerUser posts the current user id to path and decodes the reply.
func (c *Client) fetchPerUser(ctx context.Context, path string, out any) error {
	if err := c.GuardLoggedIn(ctx); err != nil {
		return err
	}
	userID, err := c.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	resp, err := c.postForm(ctx, path, models.PerUserForm{UserID: userID}.Values())
	if err != nil {
		return err
	}
	return decodeJSON(resp, path, out)
}
