package renderer

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const signatureFallback = "[Signature on file]"

// signatureImage is a decoded data-URI image ready to hand to gofpdf.
type signatureImage struct {
	format string
	data   []byte
}

// decodeSignature accepts "data:image/<any>;base64,<payload>" and sniffs the
// real format from the bytes. Only formats gofpdf can embed are returned.
func decodeSignature(dataURI string) (*signatureImage, bool) {
	if !strings.HasPrefix(dataURI, "data:image") {
		return nil, false
	}
	header, encoded, found := strings.Cut(dataURI, ",")
	if !found || !strings.Contains(header, ";base64") {
		return nil, false
	}

	encoded = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			return -1
		}
		return r
	}, encoded)

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(encoded); err != nil {
			return nil, false
		}
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	switch format {
	case "png", "jpeg", "gif":
		return &signatureImage{format: format, data: data}, true
	}
	return nil, false
}

// embedImage places the image in the given box under name. gofpdf errors are
// sticky, so a rejected image clears the error and reports false for the
// caller to draw a fallback instead.
func (d *document) embedImage(name string, img *signatureImage, x, y, w, h float64) bool {
	if img == nil || !d.pdf.Ok() {
		return false
	}

	opts := gofpdf.ImageOptions{ImageType: img.format}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.data))
	if !d.pdf.Ok() {
		d.pdf.ClearError()
		return false
	}

	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if !d.pdf.Ok() {
		d.pdf.ClearError()
		return false
	}
	return true
}
