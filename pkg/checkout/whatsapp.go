// Package checkout turns a storefront cart into a WhatsApp order message.
package checkout

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"tiendia.app/api/pkg/cart"
)

// FormatPrice renders an amount in the storefront's display convention:
// "$" prefix, no decimals, "." as the thousands separator ($5.000).
func FormatPrice(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + "$" + b.String()
}

// DigitsOnly strips everything but decimal digits from a phone number,
// which is the form wa.me expects ("+54 9 11..." -> "549...").
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ComposeOrderMessage builds the order text for a cart: a greeting naming the
// store, one bullet per line item (size annotation and unit price each
// omitted when absent) and a bold total. Composing never mutates the cart.
func ComposeOrderMessage(storeName string, c *cart.Cart) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola! \U0001F44B Quisiera hacer el siguiente pedido en *%s*:\n\n", storeName)

	for _, line := range c.Lines() {
		b.WriteString("• " + line.Product.Name)
		if line.Size != nil {
			fmt.Fprintf(&b, " (Talle: %s)", line.Size.Name)
		}
		fmt.Fprintf(&b, " x %d", line.Quantity)
		if line.Product.Price != nil {
			b.WriteString(" - " + FormatPrice(*line.Product.Price))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n*Total: %s*", FormatPrice(c.Total()))
	return b.String()
}

// OrderLink composes the order message and wraps it in a wa.me deep link the
// client opens in a new browsing context.
func OrderLink(storeName, phone string, c *cart.Cart) string {
	message := ComposeOrderMessage(storeName, c)
	return "https://wa.me/" + DigitsOnly(phone) + "?text=" + encodeURIComponent(message)
}

// encodeURIComponent matches the JS encoder wa.me links are built with:
// spaces become %20, never "+".
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
