package receipt

import (
	"encoding/json"
	"strings"

	"guia-compras/domain"
)

const (
	DefaultStoreName   = "Loja não identificada"
	DefaultProductName = "Produto sem nome"
	DefaultUnit        = "un"
)

// ParseExtraction isolates the JSON object inside the model's reply and
// applies the defaulting rules the persistence layer relies on. The model
// often wraps its answer in markdown fences or prose; everything outside
// the first "{" and the last "}" is discarded.
func ParseExtraction(text string) (*domain.ExtractedReceipt, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	startIdx := strings.Index(text, "{")
	if startIdx == -1 {
		return nil, domain.ErrNoJSONFound
	}

	endIdx := strings.LastIndex(text, "}")
	if endIdx == -1 || endIdx < startIdx {
		return nil, domain.ErrNoJSONFound
	}

	text = text[startIdx : endIdx+1]

	var extracted domain.ExtractedReceipt
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		return nil, err
	}

	extracted.StoreName = strings.TrimSpace(extracted.StoreName)
	if extracted.StoreName == "" {
		extracted.StoreName = DefaultStoreName
	}

	for i := range extracted.Products {
		product := &extracted.Products[i]

		product.Name = strings.TrimSpace(product.Name)
		if product.Name == "" {
			product.Name = DefaultProductName
		}

		// The line total wins over the advertised price; the unit price
		// mirrors the line total when the model omits it. No arithmetic
		// correction is attempted.
		if product.LineTotal == 0 {
			product.LineTotal = product.Price
		}
		product.Price = product.LineTotal
		if product.UnitPrice == 0 {
			product.UnitPrice = product.LineTotal
		}

		if product.Quantity == 0 {
			product.Quantity = 1
		}

		if product.Unit == "" {
			product.Unit = DefaultUnit
		}

		if product.Keywords == nil {
			product.Keywords = []string{}
		}
	}

	return &extracted, nil
}
