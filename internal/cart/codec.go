package cart

import (
	"encoding/json"

	"storefront-service/internal/models"
	"storefront-service/internal/util"

	"go.uber.org/zap"
)

// EncodeLines serializes cart lines to the persisted JSON form.
func EncodeLines(lines []models.CartLine) ([]byte, error) {
	if lines == nil {
		lines = []models.CartLine{}
	}
	return json.Marshal(lines)
}

// DecodeLines deserializes a persisted cart payload. Malformed content is
// treated as an empty cart, never an error: a corrupt cart is recoverable
// by the customer re-adding items, a hard failure is not.
func DecodeLines(payload []byte) []models.CartLine {
	if len(payload) == 0 {
		return []models.CartLine{}
	}

	var lines []models.CartLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		util.CartDecodeFailures.Inc()
		util.GetLogger().Warn("Discarding malformed cart payload", zap.Error(err))
		return []models.CartLine{}
	}
	if lines == nil {
		return []models.CartLine{}
	}
	return lines
}
