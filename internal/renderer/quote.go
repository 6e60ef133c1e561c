package renderer

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/sunthewhat/quote-notify-api/common/util"
	"github.com/sunthewhat/quote-notify-api/type/payload"
)

const (
	preparerName    = "Kenneth White"
	companyName     = "VX-360 Networks, Inc"
	companyContact  = "VX-360 Networks, Inc • (855) 360-9360 • vx360net.com"
	legalDisclaimer = "This document was electronically signed and is a binding agreement between the parties."
	emptyAmount     = "—"

	// Rows and the signature panel start a new page once the cursor is
	// past these lines.
	rowBreakAt       = pageHeight - 200
	signatureBreakAt = pageHeight - 180

	colQty     = margin + 290
	colMonthly = margin + 370
	colOnetime = pageWidth - margin - 10
)

var filenameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// Artifact is a rendered quote ready to be attached to an email.
type Artifact struct {
	Filename string
	PDF      []byte
	Pages    int
}

// Base64 is the standard encoding of the PDF, as attachment APIs expect it.
func (a *Artifact) Base64() string {
	return base64.StdEncoding.EncodeToString(a.PDF)
}

// Filename returns Signed_Quote_<quote>.pdf with anything outside
// [A-Za-z0-9-] replaced by an underscore.
func Filename(quoteNumber string) string {
	if quoteNumber == "" {
		quoteNumber = "Quote"
	}
	return "Signed_Quote_" + filenameUnsafe.ReplaceAllString(quoteNumber, "_") + ".pdf"
}

type Options struct {
	Location *time.Location
	// VerifyURL, when set, adds a QR code linking to <VerifyURL>/<quote>.
	VerifyURL string
	Signer    DocumentSigner
	// DisableCompression leaves content streams readable; used by tests.
	DisableCompression bool
}

type QuoteRenderer struct {
	opts Options
}

func NewQuoteRenderer(opts Options) *QuoteRenderer {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &QuoteRenderer{opts: opts}
}

// Render draws the signed quote. An unusable signature image never fails the
// render; only canvas or output errors do.
func (r *QuoteRenderer) Render(p *payload.NotifyPayload) (*Artifact, error) {
	signed := util.FormatSignedAt(p.SignedAt, r.opts.Location)

	d := newDocument(!r.opts.DisableCompression)
	d.pdf.SetTitle(fmt.Sprintf("Signed Quote %s", p.QuoteNumber), true)
	d.pdf.SetCreator("quote-notify-api", true)

	r.drawHeader(d)
	r.drawTitle(d, p, signed)
	r.drawLineItems(d, p)
	r.drawTotals(d, p)
	r.drawSignature(d, p, signed)
	r.drawFooter(d)

	if err := d.pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render quote pdf: %w", err)
	}

	pages := d.pdf.PageCount()
	pdfBytes, err := d.bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to output quote pdf: %w", err)
	}

	if r.opts.Signer != nil {
		if signedBytes, signErr := r.opts.Signer.SignPDF(pdfBytes, p.QuoteNumber); signErr != nil {
			slog.Warn("Quote signing skipped", "quote_number", p.QuoteNumber, "error", signErr)
		} else {
			pdfBytes = signedBytes
		}
	}

	return &Artifact{
		Filename: Filename(p.QuoteNumber),
		PDF:      pdfBytes,
		Pages:    pages,
	}, nil
}

func (r *QuoteRenderer) drawHeader(d *document) {
	d.band(0, 0, pageWidth, 80, colorNight)
	d.band(0, 76, pageWidth/2, 4, colorBrandRed)
	d.band(pageWidth/2, 76, pageWidth/2, 4, colorBrandBlue)

	d.textColor(colorWhite)
	d.font("B", 18)
	d.text(margin, 42, "VX-360 NETWORKS", alignLeft)
	d.font("", 9)
	d.text(margin, 58, "HOSTED PBX QUOTE", alignLeft)

	// Status badge: a stroked tick followed by the label, centred together.
	d.panel(pageWidth-200, 20, 150, 40, 6, colorSigned, nil)
	d.font("B", 11)
	label := "SIGNED"
	const tickWidth, gap = 10.0, 5.0
	left := pageWidth - 125 - (tickWidth+gap+d.width(label))/2
	d.rule(left, 40, left+3.5, 44, colorWhite, 1.5)
	d.rule(left+3.5, 44, left+tickWidth, 35, colorWhite, 1.5)
	d.text(left+tickWidth+gap, 45, label, alignLeft)

	d.y = 105
}

func (r *QuoteRenderer) drawTitle(d *document, p *payload.NotifyPayload, signed util.SignedAt) {
	d.textColor(colorInk)
	d.font("B", 20)
	d.text(margin, d.y, "Hosted PBX Quote", alignLeft)
	d.y += 18

	d.font("", 10)
	d.textColor(colorFaint)
	d.text(margin, d.y, p.QuoteNumber, alignLeft)
	d.y += 28

	columns := [3]float64{margin, margin + 180, margin + 360}

	d.font("B", 7)
	d.textColor(colorFaint)
	for i, label := range []string{"PREPARED FOR", "PREPARED BY", "QUOTE DATE"} {
		d.text(columns[i], d.y, label, alignLeft)
	}
	d.y += 14

	d.font("B", 11)
	d.textColor(colorInk)
	for i, value := range []string{p.Company, preparerName, signed.ShortDate} {
		d.text(columns[i], d.y, value, alignLeft)
	}
	d.y += 14

	d.font("B", 9)
	d.textColor(colorMuted)
	d.text(columns[0], d.y, p.ContactName, alignLeft)
	d.text(columns[1], d.y, companyName, alignLeft)
	d.y += 30

	d.rule(margin, d.y, pageWidth-margin, d.y, colorRule, 1)
	d.y += 20
}

func (r *QuoteRenderer) drawLineItems(d *document, p *payload.NotifyPayload) {
	d.tableRow(24, 16, colorTableHead, 8,
		column{x: margin + 10, align: alignLeft, style: "B", color: colorWhite, text: "DESCRIPTION"},
		column{x: colQty, align: alignCenter, style: "B", color: colorWhite, text: "QTY"},
		column{x: colMonthly, align: alignRight, style: "B", color: colorWhite, text: "MONTHLY"},
		column{x: colOnetime, align: alignRight, style: "B", color: colorWhite, text: "ONE-TIME"},
	)

	for i, item := range p.LineItems {
		d.ensureRoom(rowBreakAt)

		fill := colorWhite
		if i%2 == 1 {
			fill = colorZebra
		}
		monthly, monthlyColor := MonthlyLabel(item.MonthlyAmount()), colorFaint
		if item.MonthlyAmount() > 0 {
			monthlyColor = colorBrandRed
		}

		d.tableRow(22, 15, fill, 9,
			column{x: margin + 10, align: alignLeft, style: "B", color: colorInk, text: string(item.Name)},
			column{x: colQty, align: alignCenter, color: colorBody, text: util.FormatQuantity(item.Quantity())},
			column{x: colMonthly, align: alignRight, color: monthlyColor, text: monthly},
			column{x: colOnetime, align: alignRight, color: colorInk, text: OnetimeLabel(item.OnetimeAmount())},
		)
	}

	top := d.y
	d.tableRow(24, 16, colorSubtotal, 9,
		column{x: margin + 10, align: alignLeft, style: "B", color: colorInk, text: "Subtotals"},
		column{x: colMonthly, align: alignRight, style: "B", color: colorBrandRed, text: "$" + util.FormatCurrency(p.MonthlyRecurring) + "/mo"},
		column{x: colOnetime, align: alignRight, style: "B", color: colorInk, text: "$" + util.FormatCurrency(p.OnetimeFees)},
	)
	d.rule(margin, top, pageWidth-margin, top, colorTableHead, 1.5)
	d.y += 16
}

func (r *QuoteRenderer) drawTotals(d *document, p *payload.NotifyPayload) {
	const left, valueX = pageWidth - 260, pageWidth - 60
	y := d.y

	d.pdf.SetLineWidth(1)
	d.panel(left, y, 210, 80, 6, colorWhite, &colorRule)

	d.font("", 8)
	d.textColor(colorMuted)
	d.text(pageWidth-250, y+18, "Monthly Recurring:", alignLeft)
	d.font("B", 8)
	d.textColor(colorBrandRed)
	d.text(valueX, y+18, "$"+util.FormatCurrency(p.MonthlyRecurring)+"/mo", alignRight)

	d.font("", 8)
	d.textColor(colorMuted)
	d.text(pageWidth-250, y+34, "One-Time Fees:", alignLeft)
	d.font("B", 8)
	d.textColor(colorInk)
	d.text(valueX, y+34, "$"+util.FormatCurrency(p.OnetimeFees), alignRight)

	d.panel(pageWidth-258, y+46, 206, 28, 4, colorNight, nil)
	d.font("", 8)
	d.textColor(colorSilver)
	d.text(pageWidth-248, y+64, "Total Due at Signing:", alignLeft)
	d.font("B", 13)
	d.textColor(colorWhite)
	d.text(pageWidth-62, y+65, "$"+util.FormatCurrency(p.TotalDue), alignRight)

	d.y += 100
}

func (r *QuoteRenderer) drawSignature(d *document, p *payload.NotifyPayload, signed util.SignedAt) {
	d.ensureRoom(signatureBreakAt)
	y := d.y
	left := margin + 16
	dateX := pageWidth - margin - 160

	d.pdf.SetLineWidth(1)
	d.panel(margin, y, pageWidth-margin*2, 140, 8, colorMint, &colorMintEdge)

	d.font("B", 7)
	d.textColor(colorSigned)
	d.text(left, y+18, "ELECTRONIC SIGNATURE", alignLeft)
	d.rule(left, y+24, margin+200, y+24, colorRule, 1)

	img, ok := decodeSignature(p.SignatureData)
	if !ok || !d.embedImage("signature", img, left, y+30, 180, 50) {
		d.font("", 10)
		d.textColor(colorInk)
		d.text(left, y+55, signatureFallback, alignLeft)
	}

	d.rule(left, y+86, margin+200, y+86, colorSilver, 1)
	d.font("B", 9)
	d.textColor(colorInk)
	d.text(left, y+100, p.SignerName, alignLeft)

	signerLine := p.Company
	if p.SignerTitle != "" {
		signerLine = p.SignerTitle + " — " + p.Company
	}
	d.font("", 8)
	d.textColor(colorMuted)
	d.text(left, y+114, signerLine, alignLeft)

	if r.opts.VerifyURL != "" && p.QuoteNumber != "" {
		r.drawVerification(d, p.QuoteNumber, y)
	}

	d.font("B", 7)
	d.textColor(colorSigned)
	d.text(dateX, y+18, "DATE SIGNED", alignLeft)
	d.rule(dateX, y+24, pageWidth-margin-16, y+24, colorRule, 1)
	d.font("", 9)
	d.textColor(colorInk)
	d.text(dateX, y+40, signed.LongDate, alignLeft)
	d.text(dateX, y+54, signed.Time, alignLeft)

	d.y += 155
}

func (r *QuoteRenderer) drawVerification(d *document, quoteNumber string, y float64) {
	const size = 60.0
	x := (margin+200+pageWidth-margin-160)/2 - size/2

	png, err := verificationQR(r.opts.VerifyURL, quoteNumber)
	if err != nil {
		slog.Warn("Verification QR skipped", "quote_number", quoteNumber, "error", err)
		return
	}
	if !d.embedImage("verification", &signatureImage{format: "png", data: png}, x, y+30, size, size) {
		return
	}
	d.font("", 6)
	d.textColor(colorMuted)
	d.text(x+size/2, y+100, "SCAN TO VERIFY", alignCenter)
}

func (r *QuoteRenderer) drawFooter(d *document) {
	d.font("", 7)
	d.textColor(colorFaint)
	d.text(pageWidth/2, pageHeight-40, legalDisclaimer, alignCenter)
	d.text(pageWidth/2, pageHeight-28, companyContact, alignCenter)
}

// MonthlyLabel is "$x/mo" for positive amounts and a dash otherwise.
func MonthlyLabel(amount float64) string {
	if amount > 0 {
		return "$" + util.FormatCurrency(amount) + "/mo"
	}
	return emptyAmount
}

// OnetimeLabel is "$x" for positive amounts and a dash otherwise.
func OnetimeLabel(amount float64) string {
	if amount > 0 {
		return "$" + util.FormatCurrency(amount)
	}
	return emptyAmount
}
