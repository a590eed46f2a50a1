// Package pricing turns an item's buying price into a rent quote.
package pricing

import "github.com/you-humble/phone-rent/internal/model"

// Quote prices item over termMonths. It is pure; the term must already be
// within [model.MinTerm, model.MaxTerm].
//
// With a positive tax the deposit and the monthly amount are taxed
// independently and Remaining is recomputed from the taxed deposit, so
// Remaining != Monthly*term in that case.
func Quote(item model.Item, termMonths int, settings model.Settings) model.Quote {
	margin := item.MarginPct
	if settings.MarginOverride != nil {
		margin = *settings.MarginOverride
	}
	deposit := item.DepositPct
	if settings.DepositOverride != nil {
		deposit = *settings.DepositOverride
	}

	q := model.Quote{}
	q.Inflow = item.BuyingPrice * (1 + margin/100)
	q.Deposit = q.Inflow * (deposit / 100)
	q.Remaining = q.Inflow - q.Deposit
	q.Monthly = q.Remaining / float64(termMonths)

	if settings.TaxPct > 0 {
		t := settings.TaxPct / 100
		q.Deposit *= 1 + t
		q.Monthly *= 1 + t
		q.Remaining = q.Inflow - q.Deposit
	}

	return q
}
