package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
	"github.com/sunthewhat/quote-notify-api/type/shared"
)

// DocumentSigner applies a digital signature to a finished PDF.
type DocumentSigner interface {
	SignPDF(pdfBytes []byte, quoteNumber string) ([]byte, error)
}

type CertificateSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

func NewCertificateSigner(cfg shared.SigningConfig) (*CertificateSigner, error) {
	if !cfg.Enabled {
		slog.Info("PDF signing disabled in configuration")
		return &CertificateSigner{enabled: false}, nil
	}

	if cfg.CertPath == "" || cfg.KeyPath == "" {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certificate, err := loadCertificate(cfg.CertPath)
	if err != nil {
		return nil, err
	}

	privateKey, err := loadPrivateKey(cfg.KeyPath)
	if err != nil {
		return nil, err
	}

	slog.Info("Quote signer initialized",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &CertificateSigner{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

func loadCertificate(path string) (*x509.Certificate, error) {
	certPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", path, err)
	}

	block, _ := pem.Decode(certPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM from %s", path)
	}

	certificate, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}
	return certificate, nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	keyPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", path, err)
	}

	block, _ := pem.Decode(keyPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to decode private key PEM from %s", path)
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	// PKCS8 fallback
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA format")
	}
	return rsaKey, nil
}

// SignPDF returns the signed document. Any signing failure is logged and the
// unsigned bytes are returned so the notification still goes out.
func (s *CertificateSigner) SignPDF(pdfBytes []byte, quoteNumber string) ([]byte, error) {
	if !s.enabled {
		return pdfBytes, nil
	}
	if len(pdfBytes) == 0 {
		return pdfBytes, fmt.Errorf("empty PDF bytes")
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     "VX-360 Networks",
				Location: "Hosted PBX Quotes",
				Reason:   fmt.Sprintf("Customer acceptance of quote %s", quoteNumber),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	inputReader := bytes.NewReader(pdfBytes)
	var outputBuffer bytes.Buffer

	var signingError error
	func() {
		defer func() {
			if r := recover(); r != nil {
				signingError = fmt.Errorf("panic during PDF signing: %v", r)
			}
		}()

		pdfReader, err := digitorus_pdf.NewReader(inputReader, int64(len(pdfBytes)))
		if err != nil {
			signingError = err
			return
		}

		if _, err := inputReader.Seek(0, io.SeekStart); err != nil {
			signingError = err
			return
		}

		signingError = sign.Sign(inputReader, &outputBuffer, pdfReader, int64(len(pdfBytes)), signData)
	}()

	if signingError != nil || outputBuffer.Len() == 0 {
		slog.Warn("PDF signing failed, returning unsigned PDF",
			"quote_number", quoteNumber,
			"error", signingError)
		return pdfBytes, nil
	}

	slog.Info("Quote PDF signed",
		"quote_number", quoteNumber,
		"original_size", len(pdfBytes),
		"signed_size", outputBuffer.Len())

	return outputBuffer.Bytes(), nil
}

func (s *CertificateSigner) IsEnabled() bool {
	return s.enabled
}
