package renderer

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// VerificationLink joins the verification base URL and the quote number.
func VerificationLink(baseURL, quoteNumber string) string {
	return strings.TrimRight(baseURL, "/") + "/" + quoteNumber
}

// verificationQR returns a PNG QR code pointing at the quote's verification page.
func verificationQR(baseURL, quoteNumber string) ([]byte, error) {
	qrBytes, err := qrcode.Encode(VerificationLink(baseURL, quoteNumber), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return qrBytes, nil
}
