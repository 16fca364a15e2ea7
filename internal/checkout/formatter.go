package checkout

import (
	"fmt"
	"strings"

	"storefront-service/internal/models"
)

// FormatOrderMessage deterministically renders the cart, delivery info and
// computed totals into the WhatsApp order text. Fees come from the supplied
// rate mapping; unknown or empty neighborhoods contribute 0.
func FormatOrderMessage(cart models.Cart, info models.DeliveryInfo, rates map[string]int64) string {
	var b strings.Builder

	b.WriteString("🍦 *NOVO PEDIDO DE SORVETE* 🍦\n\n")
	fmt.Fprintf(&b, "*👤 Cliente:* %s\n", info.Name)
	fmt.Fprintf(&b, "*📱 WhatsApp:* %s\n", info.WhatsApp)
	fmt.Fprintf(&b, "*📍 Endereço:* %s, %s\n", info.Address, info.Neighborhood)
	if strings.TrimSpace(info.GeneralNotes) != "" {
		fmt.Fprintf(&b, "*📝 Observações gerais:* %s\n", info.GeneralNotes)
	}

	fmt.Fprintf(&b, "\n*💳 Forma de pagamento:* %s", models.PaymentMethodLabel(info.PaymentMethod))
	if info.PaymentMethod == models.PaymentCash {
		fmt.Fprintf(&b, "\n*💵 Troco para:* R$ %s", info.ChangeAmount)
	}
	b.WriteString("\n")
	b.WriteString("*🛒 ITENS DO PEDIDO:*\n")

	for i, line := range cart.Lines {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, line.Product.Name)
		fmt.Fprintf(&b, "   Quantidade: %dx\n", line.Quantity)
		fmt.Fprintf(&b, "   Valor unitário: R$ %s\n", FormatCents(line.Product.Price))
		fmt.Fprintf(&b, "   Valor total: R$ %s\n", FormatCents(line.Total()))
		if line.Notes != "" {
			fmt.Fprintf(&b, "   *📝 Obs:* %s\n", line.Notes)
		}
		b.WriteString("\n")
	}

	subtotal := cart.Subtotal()
	fee := rates[info.Neighborhood]
	total := subtotal + fee

	b.WriteString("*💰 RESUMO DO PEDIDO:*\n")
	fmt.Fprintf(&b, "Subtotal: R$ %s\n", FormatCents(subtotal))
	fmt.Fprintf(&b, "Frete (%s): R$ %s\n", info.Neighborhood, FormatCents(fee))
	fmt.Fprintf(&b, "*TOTAL: R$ %s*\n\n", FormatCents(total))
	b.WriteString("✅ *Pedido realizado via catálogo online*\n")
	b.WriteString("⏰ *Aguarde confirmação do pedido*")

	return b.String()
}
