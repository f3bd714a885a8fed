package crud

import (
	"fmt"
	"strconv"
)

// FormatNumber trims trailing zeros the way the tables print quantities and
// sizes: 500 not 500.00.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatMoney renders a price column value.
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
