package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiendia.app/api/pkg/cart"
	"tiendia.app/api/pkg/models"
)

func priced(v float64) *float64 { return &v }

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{999, "$999"},
		{5000, "$5.000"},
		{10000, "$10.000"},
		{1234567, "$1.234.567"},
		{2999.6, "$3.000"},
		{-5000, "-$5.000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPrice(tc.amount), "amount %v", tc.amount)
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5491112345678", DigitsOnly("+5491112345678"))
	assert.Equal(t, "5491112345678", DigitsOnly("+54 9 11 1234-5678"))
	assert.Equal(t, "", DigitsOnly("sin telefono"))
}

func orderCart() *cart.Cart {
	c := cart.New()
	p := models.Product{
		ProductID: 1,
		Name:      "Remera",
		Price:     priced(5000),
		Sizes:     []models.Size{{ID: "sz-s", Name: "S", Stock: 3}},
	}
	c.Add(p, &p.Sizes[0])
	c.Add(p, &p.Sizes[0])
	return c
}

func TestComposeOrderMessage(t *testing.T) {
	msg := ComposeOrderMessage("Mi Tienda", orderCart())

	want := "Hola! 👋 Quisiera hacer el siguiente pedido en *Mi Tienda*:\n\n" +
		"• Remera (Talle: S) x 2 - $5.000\n" +
		"\n*Total: $10.000*"
	assert.Equal(t, want, msg)
}

func TestComposeOmitsSizeAndPriceWhenAbsent(t *testing.T) {
	c := cart.New()
	c.Add(models.Product{ProductID: 2, Name: "Gorra"}, nil)

	msg := ComposeOrderMessage("Mi Tienda", c)

	assert.Contains(t, msg, "• Gorra x 1\n")
	assert.NotContains(t, msg, "Talle")
	assert.NotContains(t, msg, "Gorra x 1 -")
	assert.Contains(t, msg, "*Total: $0*")
}

func TestComposeEmptyCartDegeneratesToHeaderAndZeroTotal(t *testing.T) {
	msg := ComposeOrderMessage("Mi Tienda", cart.New())

	assert.Equal(t, "Hola! 👋 Quisiera hacer el siguiente pedido en *Mi Tienda*:\n\n\n*Total: $0*", msg)
}

func TestOrderLink(t *testing.T) {
	link := OrderLink("Mi Tienda", "+5491112345678", orderCart())

	require.True(t, strings.HasPrefix(link, "https://wa.me/5491112345678?text="), link)
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Equal(t, ComposeOrderMessage("Mi Tienda", orderCart()), text)
}
