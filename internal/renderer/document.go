package renderer

import (
	"bytes"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth  = 612.0
	pageHeight = 792.0
	margin     = 50.0
)

type rgb struct{ r, g, b int }

var (
	colorInk       = rgb{30, 41, 59}
	colorMuted     = rgb{100, 116, 139}
	colorFaint     = rgb{148, 163, 184}
	colorBody      = rgb{71, 85, 105}
	colorRule      = rgb{226, 232, 240}
	colorNight     = rgb{15, 20, 25}
	colorBrandRed  = rgb{183, 28, 28}
	colorBrandBlue = rgb{30, 136, 229}
	colorTableHead = rgb{21, 101, 192}
	colorZebra     = rgb{248, 250, 252}
	colorSubtotal  = rgb{241, 245, 249}
	colorSigned    = rgb{6, 95, 70}
	colorMint      = rgb{240, 253, 244}
	colorMintEdge  = rgb{167, 243, 208}
	colorWhite     = rgb{255, 255, 255}
	colorSilver    = rgb{200, 200, 200}
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// document wraps a gofpdf canvas with a running vertical cursor and the few
// layout primitives the quote needs. All text goes through the cp1252
// translator so punctuation such as "—" and "•" survives the core fonts.
type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	y   float64
}

func newDocument(compress bool) *document {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetCompression(compress)
	pdf.AddPage()

	return &document{
		pdf: pdf,
		// The translator keeps an internal buffer, so each document owns one.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// ensureRoom starts a new page when the cursor has moved past limit. This is
// the only place pages are added.
func (d *document) ensureRoom(limit float64) bool {
	if d.y <= limit {
		return false
	}
	d.pdf.AddPage()
	d.y = margin
	return true
}

func (d *document) font(style string, size float64) {
	d.pdf.SetFont("Helvetica", style, size)
}

func (d *document) textColor(c rgb) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *document) fillColor(c rgb) {
	d.pdf.SetFillColor(c.r, c.g, c.b)
}

func (d *document) drawColor(c rgb) {
	d.pdf.SetDrawColor(c.r, c.g, c.b)
}

// text draws s with its baseline at y, anchored at x according to a.
func (d *document) text(x, y float64, s string, a align) {
	s = d.tr(s)
	switch a {
	case alignCenter:
		x -= d.pdf.GetStringWidth(s) / 2
	case alignRight:
		x -= d.pdf.GetStringWidth(s)
	}
	d.pdf.Text(x, y, s)
}

func (d *document) width(s string) float64 {
	return d.pdf.GetStringWidth(d.tr(s))
}

// band fills a plain rectangle.
func (d *document) band(x, y, w, h float64, fill rgb) {
	d.fillColor(fill)
	d.pdf.Rect(x, y, w, h, "F")
}

// panel draws a rounded box, filled and outlined when edge is non-nil.
func (d *document) panel(x, y, w, h, radius float64, fill rgb, edge *rgb) {
	d.fillColor(fill)
	style := "F"
	if edge != nil {
		d.drawColor(*edge)
		style = "FD"
	}
	d.pdf.RoundedRect(x, y, w, h, radius, "1234", style)
}

func (d *document) rule(x1, y1, x2, y2 float64, c rgb, lineWidth float64) {
	d.drawColor(c)
	d.pdf.SetLineWidth(lineWidth)
	d.pdf.Line(x1, y1, x2, y2)
}

// column is one cell of a table row: its anchor, alignment and styling.
type column struct {
	x     float64
	align align
	style string
	color rgb
	text  string
}

// tableRow fills a full-width row background and draws each column on the
// row's text baseline.
func (d *document) tableRow(height, baseline float64, fill rgb, size float64, cols ...column) {
	d.band(margin, d.y, pageWidth-margin*2, height, fill)
	for _, c := range cols {
		d.font(c.style, size)
		d.textColor(c.color)
		d.text(c.x, d.y+baseline, c.text, c.align)
	}
	d.y += height
}

func (d *document) output(w io.Writer) error {
	return d.pdf.Output(w)
}

func (d *document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
