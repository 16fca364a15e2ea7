package checkout

import (
	"strings"
	"testing"

	"storefront-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderMessageTotals(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{
		{Product: models.Product{ID: 1, Name: "Açaí 500ml", Price: 499}, Quantity: 2},
	}}
	info := validInfo()
	rates := map[string]int64{"Centro": 500}

	msg := FormatOrderMessage(c, info, rates)

	assert.Contains(t, msg, "Subtotal: R$ 9,98")
	assert.Contains(t, msg, "Frete (Centro): R$ 5,00")
	assert.Contains(t, msg, "*TOTAL: R$ 14,98*")
}

func TestFormatOrderMessageStructure(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{
		{Product: models.Product{ID: 1, Name: "Açaí 500ml", Price: 499}, Quantity: 2, Notes: "sem granola"},
		{Product: models.Product{ID: 2, Name: "Milkshake", Price: 1200}, Quantity: 1},
	}}
	info := validInfo()
	info.GeneralNotes = "Entregar depois das 18h"
	rates := map[string]int64{"Centro": 500}

	msg := FormatOrderMessage(c, info, rates)

	// Fixed section order: header, customer, items, summary, closing.
	sections := []string{
		"NOVO PEDIDO DE SORVETE",
		"Cliente:* Maria Silva",
		"WhatsApp:* (88) 99655-9305",
		"Endereço:* Rua das Flores, 123, Centro",
		"Observações gerais:* Entregar depois das 18h",
		"Forma de pagamento:* Pix",
		"ITENS DO PEDIDO",
		"1. *Açaí 500ml*",
		"Quantidade: 2x",
		"Valor unitário: R$ 4,99",
		"*📝 Obs:* sem granola",
		"2. *Milkshake*",
		"RESUMO DO PEDIDO",
		"Aguarde confirmação do pedido",
	}
	pos := 0
	for _, section := range sections {
		idx := strings.Index(msg[pos:], section)
		assert.GreaterOrEqual(t, idx, 0, "missing or out of order: %q", section)
		pos += idx
	}
}

func TestFormatOrderMessageCashShowsChange(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{
		{Product: models.Product{ID: 1, Name: "Açaí", Price: 499}, Quantity: 1},
	}}
	info := validInfo()
	info.PaymentMethod = models.PaymentCash
	info.ChangeAmount = "50,00"

	msg := FormatOrderMessage(c, info, map[string]int64{"Centro": 500})
	assert.Contains(t, msg, "Forma de pagamento:* Dinheiro")
	assert.Contains(t, msg, "Troco para:* R$ 50,00")

	info.PaymentMethod = models.PaymentPix
	msg = FormatOrderMessage(c, info, map[string]int64{"Centro": 500})
	assert.NotContains(t, msg, "Troco para")
}

func TestFormatOrderMessageUnknownNeighborhoodFeeZero(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{
		{Product: models.Product{ID: 1, Name: "Açaí", Price: 499}, Quantity: 1},
	}}
	info := validInfo()
	info.Neighborhood = "Bairro Novo"

	msg := FormatOrderMessage(c, info, map[string]int64{"Centro": 500})
	assert.Contains(t, msg, "Frete (Bairro Novo): R$ 0,00")
	assert.Contains(t, msg, "*TOTAL: R$ 4,99*")
}

func TestFormatOrderMessageDeterministic(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{
		{Product: models.Product{ID: 1, Name: "Açaí", Price: 499}, Quantity: 2},
	}}
	info := validInfo()
	rates := map[string]int64{"Centro": 500}

	assert.Equal(t,
		FormatOrderMessage(c, info, rates),
		FormatOrderMessage(c, info, rates))
}
