package receipt

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"guia-compras/domain"
	"guia-compras/internal/utils"
)

const extractionPrompt = `Analise este cupom fiscal ou recibo de compra e extraia as informações em JSON, exatamente neste formato:
{
  "loja_nome": "nome da loja",
  "valor_total": 0.00,
  "produtos": [
    {
      "nome": "nome do produto",
      "preco": 0.00,
      "preco_unitario": 0.00,
      "quantidade": 1,
      "valor_total": 0.00,
      "unidade": "un",
      "palavras_chave": ["palavra1", "palavra2"]
    }
  ]
}
Regras:
- "preco" e "valor_total" do produto representam o total da linha; "preco_unitario" é o preço de uma unidade.
- "quantidade" pode ser fracionada para produtos vendidos por peso.
- "unidade" deve ser "un", "kg", "g", "l" ou "ml".
- "palavras_chave" deve conter no máximo 2 palavras que descrevam o produto.
Responda APENAS com o JSON, sem texto adicional e sem markdown.`

type (
	ExtractionGateway interface {
		ExtractReceipt(ctx context.Context, document []byte, mimeType string) (string, error)
	}

	geminiGateway struct {
		apiKey string
		model  string
	}
)

func NewGeminiGateway() ExtractionGateway {
	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiGateway{
		apiKey: utils.GetConfig("GEMINI_API_KEY"),
		model:  model,
	}
}

func (g *geminiGateway) ExtractReceipt(ctx context.Context, document []byte, mimeType string) (string, error) {
	if g.apiKey == "" {
		return "", domain.ErrGeminiNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0.1)

	var blob genai.Part
	if mimeType == "application/pdf" {
		blob = genai.Blob{MIMEType: mimeType, Data: document}
	} else {
		blob = genai.ImageData(strings.TrimPrefix(mimeType, "image/"), document)
	}

	resp, err := model.GenerateContent(ctx, blob, genai.Text(extractionPrompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiProcessingFailed
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText.WriteString(string(text))
		}
	}

	return responseText.String(), nil
}
