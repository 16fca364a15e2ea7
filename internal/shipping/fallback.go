package shipping

// fallbackRates is the static neighborhood table used when the rate source
// is unavailable. Fees in centavos. Kept as plain data of the same shape the
// resolver serves, so a fallback session behaves exactly like a live one.
var fallbackRates = map[string]int64{
	"Retirar na loja":    0,
	"Junco":              500,
	"Campo dos Velhos":   500,
	"Alto do Cristo":     500,
	"Domingo Olímpio":    500,
	"Centro":             600,
	"Dom José 1":         600,
	"Dom José 2":         600,
	"Sumaré":             600,
	"Padre Palhano":      600,
	"Paraíso das Flores": 600,
	"Alto da Brasília":   600,
	"Derby":              600,
	"Pedrinha":           600,
	"Terrenos":           600,
	"Vila União":         600,
	"Dom Expedito":       700,
	"COHAB 1":            700,
	"COHAB 2":            700,
	"COHAB 3":            700,
	"Renato Parente":     700,
	"Boa Vizinhança":     700,
}

// FallbackRates returns a copy of the static rate table.
func FallbackRates() map[string]int64 {
	out := make(map[string]int64, len(fallbackRates))
	for k, v := range fallbackRates {
		out[k] = v
	}
	return out
}
