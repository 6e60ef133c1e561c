package mailtemplate

import (
	"fmt"
	"strings"

	"github.com/sunthewhat/quote-notify-api/common/util"
	"github.com/sunthewhat/quote-notify-api/type/payload"
)

// Audience selects which recipient an email is written for.
type Audience int

const (
	Internal Audience = iota
	Customer
)

func (a Audience) String() string {
	if a == Customer {
		return "customer"
	}
	return "internal"
}

// Data is everything the email body needs. Signed holds the already localized
// signature time so the PDF and both emails agree.
type Data struct {
	Quote  *payload.NotifyPayload
	Signed util.SignedAt
}

// Subject is shared by both audiences; the internal copy gets a party prefix.
func Subject(audience Audience, quoteNumber, company string) string {
	subject := fmt.Sprintf("✅ Signed: %s — %s", orDefault(quoteNumber, "Quote"), orDefault(company, "Customer"))
	if audience == Internal {
		return "🎉 " + subject
	}
	return subject
}

// Build renders the complete HTML document for the given audience.
func Build(audience Audience, data Data) string {
	q := data.Quote
	if q == nil {
		q = &payload.NotifyPayload{}
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"></head>`)
	b.WriteString(`<body style="margin:0;padding:0;background:#f1f5f9;font-family:Arial,Helvetica,sans-serif">`)
	b.WriteString(`<div style="max-width:600px;margin:0 auto;padding:20px">`)
	b.WriteString(header(q))
	b.WriteString(`<div style="background:white;padding:0;border-radius:0 0 12px 12px;box-shadow:0 2px 8px rgba(0,0,0,0.06)">`)
	b.WriteString(greeting(audience, q))
	b.WriteString(signatureCard(q, data.Signed))
	if len(q.LineItems) > 0 {
		b.WriteString(pricingTable(q.LineItems))
		b.WriteString(totalsTable(q))
	}
	b.WriteString(attachmentNote())
	b.WriteString(`</div>`)
	b.WriteString(footer())
	b.WriteString(`</div></body></html>`)
	return b.String()
}

func header(q *payload.NotifyPayload) string {
	return fmt.Sprintf(`<div style="background:linear-gradient(135deg,#065f46,#059669);padding:24px 28px;border-radius:12px 12px 0 0;text-align:center">`+
		`<div style="font-size:36px;margin-bottom:8px">✅</div>`+
		`<div style="font-size:20px;font-weight:900;color:white">Quote Accepted &amp; Signed</div>`+
		`<div style="font-size:12px;color:rgba(255,255,255,0.8);margin-top:4px">%s — %s</div>`+
		`</div>`,
		util.EscapeHTML(q.QuoteNumber), util.EscapeHTML(q.Company))
}

func greeting(audience Audience, q *payload.NotifyPayload) string {
	var body string
	if audience == Customer {
		body = fmt.Sprintf(`<p>Hi %s,</p><p>Thank you for accepting our Hosted PBX quote. The signed agreement is attached as a PDF for your records.</p>`,
			util.EscapeHTML(util.FirstName(q.ContactName, q.SignerName)))
	} else {
		body = fmt.Sprintf(`<p>Great news! <strong>%s</strong> has signed quote <strong>%s</strong>. The signed agreement is attached.</p>`,
			util.EscapeHTML(orDefault(q.Company, "A customer")), util.EscapeHTML(q.QuoteNumber))
	}
	return `<div style="padding:24px 28px;font-size:14px;color:#333;line-height:1.6">` + body + `</div>`
}

func signatureCard(q *payload.NotifyPayload, signed util.SignedAt) string {
	signer := util.EscapeHTML(q.SignerName)
	if q.SignerTitle != "" {
		signer += " (" + util.EscapeHTML(q.SignerTitle) + ")"
	}
	return fmt.Sprintf(`<div style="margin:0 28px 20px;background:#f0fdf4;border:1px solid #a7f3d0;border-radius:10px;padding:16px 20px">`+
		`<div style="font-size:10px;font-weight:800;color:#065f46;text-transform:uppercase;letter-spacing:1px;margin-bottom:10px">Signature Details</div>`+
		`<div style="font-size:13px;color:#1e293b;margin-bottom:6px"><strong>Signed by:</strong> %s</div>`+
		`<div style="font-size:13px;color:#1e293b;margin-bottom:6px"><strong>Company:</strong> %s</div>`+
		`<div style="font-size:13px;color:#1e293b"><strong>Date:</strong> %s at %s</div></div>`,
		signer, util.EscapeHTML(q.Company), signed.LongDate, signed.Time)
}

const headCell = `<th style="padding:8px %dpx;text-align:%s;font-size:9px;font-weight:800;color:#94a3b8;text-transform:uppercase;border-bottom:1px solid #e2e8f0">%s</th>`

func pricingTable(items payload.LineItems) string {
	var b strings.Builder
	b.WriteString(`<div style="margin:0 28px 16px;border:1px solid #e2e8f0;border-radius:10px;overflow:hidden">`)
	b.WriteString(`<div style="background:#1565c0;padding:10px 14px"><div style="font-size:10px;font-weight:800;color:white;text-transform:uppercase;letter-spacing:1px">Services &amp; Pricing</div></div>`)
	b.WriteString(`<table width="100%" cellpadding="0" cellspacing="0"><tr style="background:#f8fafc">`)
	fmt.Fprintf(&b, headCell, 14, "left", "Description")
	fmt.Fprintf(&b, headCell, 10, "center", "Qty")
	fmt.Fprintf(&b, headCell, 10, "right", "Monthly")
	fmt.Fprintf(&b, headCell, 14, "right", "One-Time")
	b.WriteString(`</tr>`)
	for _, item := range items {
		b.WriteString(itemRow(item))
	}
	b.WriteString(`</table></div>`)
	return b.String()
}

func itemRow(item payload.LineItem) string {
	monthly, monthlyColor := "—", "#94a3b8"
	if item.MonthlyAmount() > 0 {
		monthly, monthlyColor = "$"+util.FormatCurrency(item.MonthlyAmount())+"/mo", "#B71C1C"
	}
	onetime := "—"
	if item.OnetimeAmount() > 0 {
		onetime = "$" + util.FormatCurrency(item.OnetimeAmount())
	}
	return fmt.Sprintf(`<tr>`+
		`<td style="padding:8px 14px;border-bottom:1px solid #f1f5f9;font-size:12px;font-weight:600;color:#1e293b">%s</td>`+
		`<td style="padding:8px 10px;border-bottom:1px solid #f1f5f9;font-size:12px;text-align:center;color:#475569">%s</td>`+
		`<td style="padding:8px 10px;border-bottom:1px solid #f1f5f9;font-size:12px;text-align:right;color:%s">%s</td>`+
		`<td style="padding:8px 14px;border-bottom:1px solid #f1f5f9;font-size:12px;text-align:right;color:#1e293b">%s</td>`+
		`</tr>`,
		util.EscapeHTML(string(item.Name)), util.FormatQuantity(item.Quantity()), monthlyColor, monthly, onetime)
}

func totalsTable(q *payload.NotifyPayload) string {
	return fmt.Sprintf(`<div style="margin:0 28px 20px"><table width="100%%" cellpadding="0" cellspacing="0" style="border:1px solid #e2e8f0;border-radius:10px;overflow:hidden">`+
		`<tr><td style="padding:10px 18px;font-size:12px;color:#64748b;border-bottom:1px solid #f1f5f9">Monthly Recurring</td><td style="padding:10px 18px;text-align:right;font-size:13px;font-weight:800;color:#B71C1C;border-bottom:1px solid #f1f5f9">$%s/mo</td></tr>`+
		`<tr><td style="padding:10px 18px;font-size:12px;color:#64748b;border-bottom:1px solid #f1f5f9">One-Time Fees</td><td style="padding:10px 18px;text-align:right;font-size:13px;font-weight:800;color:#1e293b;border-bottom:1px solid #f1f5f9">$%s</td></tr>`+
		`<tr style="background:#0f1419"><td style="padding:12px 18px;font-size:13px;color:rgba(255,255,255,0.7)">Total Due at Signing</td><td style="padding:12px 18px;text-align:right;font-size:18px;font-weight:900;color:white">$%s</td></tr>`+
		`</table></div>`,
		util.FormatCurrency(q.MonthlyRecurring), util.FormatCurrency(q.OnetimeFees), util.FormatCurrency(q.TotalDue))
}

func attachmentNote() string {
	return `<div style="padding:20px 28px;border-top:1px solid #f1f5f9;font-size:11px;color:#94a3b8;text-align:center">` +
		`📎 The signed agreement PDF is attached to this email.<br>` +
		`Both parties have received a copy for their records.</div>`
}

func footer() string {
	return `<div style="text-align:center;padding:16px;font-size:10px;color:#94a3b8">VX-360 Networks, Inc • (855) 360-9360 • vx360net.com</div>`
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
