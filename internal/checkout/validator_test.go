package checkout

import (
	"testing"

	"storefront-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func validInfo() models.DeliveryInfo {
	return models.DeliveryInfo{
		Name:          "Maria Silva",
		WhatsApp:      "(88) 99655-9305",
		Neighborhood:  "Centro",
		Address:       "Rua das Flores, 123",
		PaymentMethod: models.PaymentPix,
	}
}

func TestValidateAcceptsValidForm(t *testing.T) {
	dv := NewDeliveryValidator()
	assert.Nil(t, dv.Validate(validInfo()))
}

func TestValidateNameLength(t *testing.T) {
	dv := NewDeliveryValidator()

	info := validInfo()
	info.Name = "M"
	errs := dv.Validate(info)
	assert.Contains(t, errs, "name")

	info.Name = "Ma"
	assert.Nil(t, dv.Validate(info))
}

func TestValidatePhoneShapes(t *testing.T) {
	dv := NewDeliveryValidator()

	accepted := []string{
		"(11) 99999-9999",
		"11999999999",
		"+5511999999999",
		"99999999",
		"(88) 9655-9305",
	}
	for _, phone := range accepted {
		info := validInfo()
		info.WhatsApp = phone
		assert.Nil(t, dv.Validate(info), "expected %q to be accepted", phone)
	}

	rejected := []string{"", "123", "12345678901234", "telefone"}
	for _, phone := range rejected {
		info := validInfo()
		info.WhatsApp = phone
		errs := dv.Validate(info)
		assert.Contains(t, errs, "whatsapp", "expected %q to be rejected", phone)
	}
}

func TestValidateNeighborhoodRequired(t *testing.T) {
	dv := NewDeliveryValidator()

	info := validInfo()
	info.Neighborhood = ""
	errs := dv.Validate(info)
	assert.Equal(t, "Selecione um bairro", errs["neighborhood"])
}

func TestValidateAddressLength(t *testing.T) {
	dv := NewDeliveryValidator()

	info := validInfo()
	info.Address = "Rua"
	errs := dv.Validate(info)
	assert.Contains(t, errs, "address")
}

func TestValidatePaymentMethodEnum(t *testing.T) {
	dv := NewDeliveryValidator()

	for _, method := range []string{models.PaymentPix, models.PaymentCreditCard, models.PaymentDebitCard} {
		info := validInfo()
		info.PaymentMethod = method
		assert.Nil(t, dv.Validate(info))
	}

	info := validInfo()
	info.PaymentMethod = "cheque"
	errs := dv.Validate(info)
	assert.Contains(t, errs, "payment_method")
}

func TestValidateChangeAmountRequiredOnlyForCash(t *testing.T) {
	dv := NewDeliveryValidator()

	// Cash without a well-formed change amount fails.
	info := validInfo()
	info.PaymentMethod = models.PaymentCash
	info.ChangeAmount = ""
	errs := dv.Validate(info)
	assert.Equal(t, "Informe um valor de troco válido (ex: 0,00)", errs["change_amount"])

	info.ChangeAmount = "20"
	errs = dv.Validate(info)
	assert.Contains(t, errs, "change_amount")

	info.ChangeAmount = "20,00"
	assert.Nil(t, dv.Validate(info))

	info.ChangeAmount = "0,00"
	assert.Nil(t, dv.Validate(info))

	// Other methods ignore the field entirely.
	info.PaymentMethod = models.PaymentPix
	info.ChangeAmount = "not a number"
	assert.Nil(t, dv.Validate(info))
}

func TestValidateReportsAllFields(t *testing.T) {
	dv := NewDeliveryValidator()

	errs := dv.Validate(models.DeliveryInfo{PaymentMethod: models.PaymentCash})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "whatsapp")
	assert.Contains(t, errs, "neighborhood")
	assert.Contains(t, errs, "address")
	assert.Contains(t, errs, "change_amount")
}
