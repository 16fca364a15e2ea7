package checkout

import (
	"reflect"
	"regexp"
	"strings"

	"storefront-service/internal/models"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a delivery form field to a human-readable message.
type FieldErrors map[string]string

// phoneRe matches the digit-only form of a Brazilian phone: optional
// country code 55, optional two-digit area code, then an 8 or 9 digit number.
var phoneRe = regexp.MustCompile(`^(55)?(\d{2})?\d{8,9}$`)

// DeliveryValidator validates the customer delivery form. Validation always
// operates on the digit-only phone form; display formatting is the caller's
// concern.
type DeliveryValidator struct {
	validate *validator.Validate
}

// NewDeliveryValidator builds the validator with the storefront's custom
// rules registered.
func NewDeliveryValidator() *DeliveryValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(StripNonDigits(fl.Field().String()))
	})

	// Cross-field rule: change amount is required, in strict currency shape,
	// only when paying cash.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		info := sl.Current().Interface().(models.DeliveryInfo)
		if info.PaymentMethod == models.PaymentCash && !currencyRe.MatchString(info.ChangeAmount) {
			sl.ReportError(info.ChangeAmount, "change_amount", "ChangeAmount", "brl", "")
		}
	}, models.DeliveryInfo{})

	return &DeliveryValidator{validate: v}
}

// Validate checks the delivery form. A nil return means the form is valid;
// otherwise every offending field maps to its message.
func (dv *DeliveryValidator) Validate(info models.DeliveryInfo) FieldErrors {
	err := dv.validate.Struct(info)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"form": "Dados de entrega inválidos"}
	}

	errs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		errs[fe.Field()] = messageFor(fe.Field())
	}
	return errs
}

func messageFor(field string) string {
	switch field {
	case "name":
		return "Nome deve ter pelo menos 2 caracteres"
	case "whatsapp":
		return "WhatsApp deve estar no formato: (11) 99999-9999, 11999999999 ou +5511999999999"
	case "neighborhood":
		return "Selecione um bairro"
	case "address":
		return "Endereço deve ter pelo menos 5 caracteres"
	case "payment_method":
		return "Forma de pagamento inválida"
	case "change_amount":
		return "Informe um valor de troco válido (ex: 0,00)"
	}
	return "Campo inválido"
}
