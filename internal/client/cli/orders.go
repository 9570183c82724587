package cli

import (
	"context"
	"errors"
	"fmt"
)

// Order prints the current order with its lines and totals.
func (a *App) Order(ctx context.Context) error {
	o, err := a.lufa.ActiveOrder(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	delivery := ""
	if o.DeliveryDate.Valid {
		delivery = o.DeliveryDate.Date.String()
	}
	writeKV(w, [2]string{"Order", o.ID}, [2]string{"Delivery", delivery})
	if err := w.Flush(); err != nil {
		return err
	}

	if len(o.Items) > 0 {
		fmt.Fprintln(a.out)
		w = a.table()
		fmt.Fprintln(w, "QTY\tPRODUCT\tVENDOR\tPRICE\t")
		for _, item := range o.Items.Sorted() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", item.Quantity, item.Name, item.Vendor, a.money(item.Price))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out)
	w = a.table()
	amounts := o.Amounts
	writeKV(w,
		[2]string{"Subtotal", a.money(amounts.Subtotal)},
		[2]string{"Delivery fees", a.money(amounts.DeliveryFees)},
		[2]string{"Total", a.money(amounts.Total)},
	)
	return w.Flush()
}

// Track prints delivery tracking for orderID, or for the current order when
// orderID is empty.
func (a *App) Track(ctx context.Context, orderID string) error {
	if orderID == "" {
		o, err := a.lufa.ActiveOrder(ctx)
		if err != nil {
			return err
		}
		if o.ID == "" {
			return errors.New("no current order, usage: track <order id>")
		}
		orderID = o.ID
	}

	tr, err := a.lufa.TrackOrder(ctx, orderID)
	if err != nil {
		return err
	}

	w := a.table()
	writeKV(w,
		[2]string{"Order", tr.OrderID},
		[2]string{"Status", string(tr.Status)},
		[2]string{"Details", tr.Description},
		[2]string{"Delivery", tr.DeliveryDate},
		[2]string{"ETA", tr.ETA},
		[2]string{"Stops before yours", fmt.Sprint(int(tr.StopsBefore))},
		[2]string{"Driver", tr.DriverName},
		[2]string{"Amount", a.money(tr.OrderAmount)},
	)
	return w.Flush()
}
