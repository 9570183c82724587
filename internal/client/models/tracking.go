package models

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/lufa/internal/decode"
)

// OrderStatus is the delivery stage of an order.
type OrderStatus string

const (
	OrderPreparing OrderStatus = "preparing"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &decode.DecodeError{Type: "order status", Value: string(data), Reason: "expected a string", Err: err}
	}
	switch st := OrderStatus(raw); st {
	case OrderPreparing, OrderShipped, OrderDelivered:
		*s = st
		return nil
	}
	return &decode.DecodeError{Type: "order status", Value: raw, Reason: fmt.Sprintf("unknown status %q", raw)}
}

// OrderTracking is the live delivery information for an order.
type OrderTracking struct {
	OrderID      string       `json:"order_id"`
	Status       OrderStatus  `json:"status"`
	Description  string       `json:"desc"`
	Step         decode.Count `json:"step"`
	DeliveryDate string       `json:"delivery_date"`
	Boxes        decode.Count `json:"number_box_needed"`
	OrderAmount  decode.Money `json:"order_amount"`
	StopsBefore  decode.Count `json:"stops_before"`
	ETA          string       `json:"eta"`

	DriverName   string `json:"driver_name"`
	CompanyName  string `json:"company_name"`
	CompanyPhone string `json:"formatted_company_phone_number"`
	PickupPhone  string `json:"formatted_pup_phone_number"`
	DeliveryType string `json:"delivery_type"`
	Address      string `json:"address"`
	Reminder     string `json:"reminder"`
}
