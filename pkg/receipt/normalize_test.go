package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guia-compras/domain"
)

func TestParseExtractionJSONInsideProse(t *testing.T) {
	text := "Claro! Aqui está a análise do cupom fiscal:\n```json\n" +
		`{
  "loja_nome": "Supermercado Pão de Açúcar",
  "valor_total": 87.45,
  "produtos": [
    {
      "nome": "Arroz Tio João 5kg",
      "preco": 24.90,
      "preco_unitario": 24.90,
      "quantidade": 1,
      "valor_total": 24.90,
      "unidade": "un",
      "palavras_chave": ["arroz", "grãos"]
    },
    {
      "nome": "Banana Prata",
      "preco": 8.75,
      "preco_unitario": 6.99,
      "quantidade": 1.252,
      "unidade": "kg",
      "palavras_chave": ["banana", "fruta"]
    }
  ]
}` + "\n```\nEspero ter ajudado!"

	extracted, err := ParseExtraction(text)
	require.NoError(t, err)

	assert.Equal(t, "Supermercado Pão de Açúcar", extracted.StoreName)
	assert.Equal(t, 87.45, extracted.TotalAmount)
	require.Len(t, extracted.Products, 2)

	assert.Equal(t, "Arroz Tio João 5kg", extracted.Products[0].Name)
	assert.Equal(t, 24.90, extracted.Products[0].LineTotal)

	banana := extracted.Products[1]
	assert.Equal(t, 8.75, banana.LineTotal) // mirrors "preco" when "valor_total" is absent
	assert.Equal(t, 6.99, banana.UnitPrice)
	assert.Equal(t, 1.252, banana.Quantity)
	assert.Equal(t, "kg", banana.Unit)
}

func TestParseExtractionNoJSONObject(t *testing.T) {
	cases := []string{
		"Desculpe, não consegui identificar um cupom fiscal nesta imagem.",
		"",
		"``` ```",
		"} {",
	}

	for _, text := range cases {
		_, err := ParseExtraction(text)
		assert.ErrorIs(t, err, domain.ErrNoJSONFound, "input: %q", text)
	}
}

func TestParseExtractionInvalidJSON(t *testing.T) {
	_, err := ParseExtraction(`{"loja_nome": "Mercado", "produtos": "not-a-list"}`)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoJSONFound)
}

func TestParseExtractionDefaults(t *testing.T) {
	extracted, err := ParseExtraction(`{"produtos": [{}]}`)
	require.NoError(t, err)

	assert.Equal(t, DefaultStoreName, extracted.StoreName)
	assert.Equal(t, float64(0), extracted.TotalAmount)

	require.Len(t, extracted.Products, 1)
	product := extracted.Products[0]
	assert.Equal(t, DefaultProductName, product.Name)
	assert.Equal(t, float64(0), product.Price)
	assert.Equal(t, float64(0), product.UnitPrice)
	assert.Equal(t, float64(0), product.LineTotal)
	assert.Equal(t, float64(1), product.Quantity)
	assert.Equal(t, DefaultUnit, product.Unit)
	assert.NotNil(t, product.Keywords)
	assert.Empty(t, product.Keywords)
}

func TestParseExtractionPriceReconciliation(t *testing.T) {
	extracted, err := ParseExtraction(`{
		"loja_nome": "Feira",
		"produtos": [
			{"nome": "Tomate", "preco": 12.50},
			{"nome": "Alface", "valor_total": 4.00, "preco_unitario": 2.00, "quantidade": 2}
		]
	}`)
	require.NoError(t, err)
	require.Len(t, extracted.Products, 2)

	tomate := extracted.Products[0]
	assert.Equal(t, 12.50, tomate.LineTotal)
	assert.Equal(t, 12.50, tomate.Price)
	assert.Equal(t, 12.50, tomate.UnitPrice) // mirrors the line total

	alface := extracted.Products[1]
	assert.Equal(t, 4.00, alface.LineTotal)
	assert.Equal(t, 4.00, alface.Price)
	assert.Equal(t, 2.00, alface.UnitPrice)
}

func TestParseExtractionBareFences(t *testing.T) {
	extracted, err := ParseExtraction("```\n{\"loja_nome\": \"Atacadão\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Atacadão", extracted.StoreName)
	assert.Empty(t, extracted.Products)
}
