package pricing

import "fmt"

// FormatCents renders a cent amount as a 2-decimal string, e.g. 39330
// -> "393.30". Rendering with a currency symbol is a display concern.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
