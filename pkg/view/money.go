package view

import "fmt"

// Money formats a decimal dollar amount for display, e.g. 5.5 -> "$5.50".
// The backend speaks plain JSON numbers, so amounts stay float64 end to
// end and only get rounded at the view edge.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// LineTotal renders price × qty to two decimals.
func LineTotal(price float64, qty int) string {
	return Money(price * float64(qty))
}
