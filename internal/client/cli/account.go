package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/lufa/internal/decode"
)

func (a *App) money(m decode.Money) string {
	return m.Format(a.lang)
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

// Profile prints the account profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.lufa.Profile(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintf(w, "Name:\t%s\n", p.FirstName)
	fmt.Fprintf(w, "User ID:\t%s\n", p.UserID)
	if !p.UserCreated.IsZero() {
		fmt.Fprintf(w, "Member since:\t%s\n", p.UserCreated)
	}
	fmt.Fprintf(w, "Family size:\t%d\n", p.FamilySize)
	if p.SubscriptionType != "" {
		fmt.Fprintf(w, "Subscription:\t%s\n", p.SubscriptionType)
	}
	fmt.Fprintf(w, "Credits:\t%s\n", a.money(p.UserCredits))
	fmt.Fprintf(w, "Earnings:\t%s\n", a.money(p.Earnings))
	if pct, ok := p.GivebackDonationPercent.Get(); ok {
		fmt.Fprintf(w, "Giveback donation:\t%g%%\n", pct)
	}
	return w.Flush()
}

// Cards prints the saved payment cards in position order.
func (a *App) Cards(ctx context.Context) error {
	cards, err := a.lufa.Cards(ctx)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(a.out, "No saved cards")
		return nil
	}

	w := a.table()
	fmt.Fprintln(w, "#\tBRAND\tNUMBER\tEXPIRES\t")
	for _, i := range cards.Keys() {
		c := cards[i]
		expires := fmt.Sprintf("%02d/%02d", int(c.Expiry.Month), c.Expiry.Year%100)
		if expired, ok := c.Expired.Bool(); ok && expired {
			expires += " (expired)"
		}
		fmt.Fprintf(w, "%d\t%s\t**** %s\t%s\t\n", i, c.Brand, c.LastFour, expires)
	}
	return w.Flush()
}

// Transactions prints the billing history.
func (a *App) Transactions(ctx context.Context) error {
	txs, err := a.lufa.Transactions(ctx)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "No transactions")
		return nil
	}

	w := a.table()
	fmt.Fprintln(w, "DATE\tORDER\tDESCRIPTION\tTOTAL\t")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", formatTimestamp(tx.Timestamp), tx.OrderID, tx.Title, a.money(tx.Total))
	}
	return w.Flush()
}

func formatTimestamp(t decode.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

// writeKV prints "label: value" rows, skipping empty values.
func writeKV(w io.Writer, rows ...[2]string) {
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(w, "%s:\t%s\n", r[0], r[1])
	}
}
