package receipt

import (
	"encoding/base64"
	"regexp"
	"strings"

	"guia-compras/domain"
)

var dataURIPattern = regexp.MustCompile(`^data:(image/[a-zA-Z.+-]+|application/pdf);base64,`)

// DecodeDocument turns the capture payload into raw bytes plus a MIME type.
// Accepts plain base64 or a data URI; the kind hint is only consulted when
// the payload carries no data URI prefix.
func DecodeDocument(req domain.ScanReceiptRequest) ([]byte, string, error) {
	raw := strings.TrimSpace(req.Document)
	if raw == "" {
		return nil, "", domain.ErrDocumentRequired
	}

	mimeType := ""
	if match := dataURIPattern.FindStringSubmatch(raw); match != nil {
		mimeType = match[1]
		raw = raw[len(match[0]):]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", domain.ErrInvalidDocument
	}
	if len(data) == 0 {
		return nil, "", domain.ErrDocumentRequired
	}

	if mimeType == "" {
		switch req.Kind {
		case "pdf":
			mimeType = "application/pdf"
		case "image", "":
			mimeType = "image/jpeg"
		default:
			return nil, "", domain.ErrInvalidDocumentKind
		}
	}

	return data, mimeType, nil
}
