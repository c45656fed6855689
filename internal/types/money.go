// README: Common money value object used across modules.
package types

// Money amounts are whole currency units; rental rates are per-day integers.
type Money struct {
	Amount   int64
	Currency string
}

const DefaultCurrency = "EUR"

func EUR(amount int64) Money {
	return Money{Amount: amount, Currency: DefaultCurrency}
}
