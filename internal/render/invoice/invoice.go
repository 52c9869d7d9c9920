package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/orincore/glitzfusion/internal/domain"
)

const fontFamily = "Helvetica"

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// page bundles the document with the cp1252 translator the core fonts
// need for UTF-8 input.
type page struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// Render produces the complete single-page invoice PDF. Any underlying
// page-construction failure is fatal to this one document; callers
// degrade by sending without the attachment.
func (r *Renderer) Render(data domain.InvoiceData) ([]byte, error) {
	const op = "render.invoice.Render"

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	p := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	// The watermark sits under all other content.
	p.drawWatermark()
	p.drawHeader()
	p.drawMetaBox(data)
	p.drawParties(data)
	p.drawEventPanel(data)
	p.drawMembersTable(data.Members)

	cur := &cursor{y: billingStartY(len(data.Members))}
	p.drawBillingSummary(billingRows(data), cur)
	p.drawFooter(cur)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return buf.Bytes(), nil
}

func (p *page) drawWatermark() {
	p.pdf.SetFont(fontFamily, "B", 110)
	p.pdf.SetTextColor(22, 163, 74)
	p.pdf.SetAlpha(0.08, "Normal")

	w := p.pdf.GetStringWidth("PAID")
	p.pdf.Text((pageWidth-w)/2, 480, "PAID")

	p.pdf.SetAlpha(1, "Normal")
}

func (p *page) drawHeader() {
	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.SetFont(fontFamily, "B", 22)
	p.pdf.Text(marginX, 56, "GLITZFUSION")

	p.pdf.SetTextColor(107, 114, 128)
	p.pdf.SetFont(fontFamily, "", 10)
	p.pdf.Text(marginX, 72, p.tr("Performing Arts Academy • FusionX Events"))

	p.pdf.SetDrawColor(22, 163, 74)
	p.pdf.SetLineWidth(2)
	p.pdf.Line(marginX, 84, pageWidth-marginX, 84)
}

func (p *page) drawMetaBox(data domain.InvoiceData) {
	const boxX, boxY, boxW, boxH = 395.0, 30.0, 160.0, 50.0

	p.pdf.SetFillColor(243, 244, 246)
	p.pdf.SetDrawColor(209, 213, 219)
	p.pdf.SetLineWidth(0.5)
	p.pdf.Rect(boxX, boxY, boxW, boxH, "FD")

	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.SetFont(fontFamily, "B", 11)
	p.pdf.Text(boxX+8, boxY+16, "INVOICE")

	p.pdf.SetFont(fontFamily, "", 8)
	p.pdf.Text(boxX+8, boxY+30, p.tr(data.InvoiceNumber))

	p.pdf.SetTextColor(107, 114, 128)
	p.pdf.Text(boxX+8, boxY+42, FormatInvoiceDate(data.InvoiceDate))
}

func (p *page) drawParties(data domain.InvoiceData) {
	const boxY, boxW = 105.0, 247.0
	const boxH = 95.0
	rightX := pageWidth - marginX - boxW

	p.pdf.SetDrawColor(209, 213, 219)
	p.pdf.SetLineWidth(0.5)
	p.pdf.Rect(marginX, boxY, boxW, boxH, "D")
	p.pdf.Rect(rightX, boxY, boxW, boxH, "D")

	p.pdf.SetTextColor(22, 163, 74)
	p.pdf.SetFont(fontFamily, "B", 10)
	p.pdf.Text(marginX+10, boxY+18, "Bill To")
	p.pdf.Text(rightX+10, boxY+18, "Payment Details")

	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.SetFont(fontFamily, "", 9)

	left := []string{
		data.CustomerName,
		data.CustomerEmail,
		data.CustomerPhone,
	}
	right := []string{
		"Payment ID: " + data.PaymentID,
		"Method: " + data.PaymentMethod,
		"Paid on: " + FormatInvoiceDate(data.PaymentDate),
		"Amount: " + rupees(data.TotalAmount),
	}

	y := boxY + 36.0
	for _, line := range left {
		p.pdf.Text(marginX+10, y, p.tr(line))
		y += 14
	}

	y = boxY + 36.0
	for _, line := range right {
		p.pdf.Text(rightX+10, y, p.tr(line))
		y += 14
	}
}

func (p *page) drawEventPanel(data domain.InvoiceData) {
	const boxY = 215.0
	const boxH = 80.0

	p.pdf.SetFillColor(240, 253, 244)
	p.pdf.SetDrawColor(22, 163, 74)
	p.pdf.SetLineWidth(0.8)
	p.pdf.Rect(marginX, boxY, contentWidth, boxH, "FD")

	p.pdf.SetTextColor(22, 163, 74)
	p.pdf.SetFont(fontFamily, "B", 10)
	p.pdf.Text(marginX+12, boxY+18, "Event Details")

	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.SetFont(fontFamily, "", 10)

	y := boxY + 35.0
	for _, line := range p.wrap(data.EventTitle, 240, 2) {
		p.pdf.Text(marginX+12, y, line)
		y += 13
	}

	p.pdf.SetFont(fontFamily, "", 9)
	p.pdf.Text(marginX+12, y, p.tr(data.EventDate+" • "+data.EventTime))

	rightX := marginX + 290.0

	p.pdf.SetTextColor(107, 114, 128)
	p.pdf.SetFont(fontFamily, "", 8)
	p.pdf.Text(rightX, boxY+18, "Booking Code")

	p.pdf.SetTextColor(22, 163, 74)
	p.pdf.SetFont(fontFamily, "B", 14)
	p.pdf.Text(rightX, boxY+36, p.tr(data.BookingCode))

	if data.Venue != "" {
		p.pdf.SetTextColor(17, 24, 39)
		p.pdf.SetFont(fontFamily, "", 9)
		vy := boxY + 54.0
		for _, line := range p.wrap(data.Venue, 210, 2) {
			p.pdf.Text(rightX, vy, line)
			vy += 12
		}
	}
}

func (p *page) drawMembersTable(members []domain.Member) {
	colW := []float64{30, 150, 200, contentWidth - 380}
	headers := []string{"#", "Name", "Email", "Phone"}

	p.pdf.SetXY(marginX, membersTableTop)
	p.pdf.SetFillColor(31, 41, 55)
	p.pdf.SetTextColor(255, 255, 255)
	p.pdf.SetFont(fontFamily, "B", 9)

	for i, h := range headers {
		align := "LM"
		if i == 0 {
			align = "CM"
		}
		p.pdf.CellFormat(colW[i], tableHeaderH, h, "", 0, align, true, 0, "")
	}

	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.SetFont(fontFamily, "", 8)

	y := membersTableTop + tableHeaderH
	for i, m := range members {
		if i%2 == 0 {
			p.pdf.SetFillColor(249, 250, 251)
		} else {
			p.pdf.SetFillColor(255, 255, 255)
		}

		p.pdf.SetXY(marginX, y)
		p.pdf.CellFormat(colW[0], memberRowH, fmt.Sprintf("%d", i+1), "", 0, "CM", true, 0, "")
		p.pdf.CellFormat(colW[1], memberRowH, p.tr(m.Name), "", 0, "LM", true, 0, "")
		p.pdf.CellFormat(colW[2], memberRowH, p.tr(m.Email), "", 0, "LM", true, 0, "")
		p.pdf.CellFormat(colW[3], memberRowH, p.tr(m.Phone), "", 0, "LM", true, 0, "")

		y += memberRowH
	}
}

func (p *page) drawBillingSummary(rows []billingRow, cur *cursor) {
	amountW := 120.0
	labelW := contentWidth - amountW

	p.pdf.SetXY(marginX, cur.y)
	p.pdf.SetFillColor(243, 244, 246)
	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.SetFont(fontFamily, "B", 9)
	p.pdf.CellFormat(labelW, billingHeaderH, "Description", "", 0, "LM", true, 0, "")
	p.pdf.CellFormat(amountW, billingHeaderH, "Amount", "", 0, "RM", true, 0, "")
	cur.advance(billingHeaderH)

	for _, row := range rows {
		if row.emphasis {
			p.pdf.SetXY(marginX, cur.y)
			p.pdf.SetFillColor(31, 41, 55)
			p.pdf.SetTextColor(255, 255, 255)
			p.pdf.SetFont(fontFamily, "B", 10)
			p.pdf.CellFormat(labelW, totalBandH, row.label, "", 0, "LM", true, 0, "")

			p.pdf.SetTextColor(22, 163, 74)
			p.pdf.SetFont(fontFamily, "B", 11)
			p.pdf.CellFormat(amountW, totalBandH, p.tr(row.amount), "", 0, "RM", true, 0, "")
			cur.advance(totalBandH)
			continue
		}

		rowH := billingLineH
		if row.sub != "" {
			rowH = billingBaseH
		}

		p.pdf.SetTextColor(17, 24, 39)
		p.pdf.SetFont(fontFamily, "", 9)
		p.pdf.SetXY(marginX+labelW, cur.y)
		p.pdf.CellFormat(amountW, rowH, p.tr(row.amount), "", 0, "RM", false, 0, "")

		p.pdf.SetFont(fontFamily, "B", 9)
		p.pdf.Text(marginX, cur.y+13, p.tr(row.label))

		if row.sub != "" {
			p.pdf.SetTextColor(107, 114, 128)
			p.pdf.SetFont(fontFamily, "", 7)
			sub := row.sub
			if lines := p.wrap(sub, labelW-10, 1); len(lines) > 0 {
				sub = lines[0]
			} else {
				sub = ""
			}
			p.pdf.Text(marginX, cur.y+24, sub)
		}

		cur.advance(rowH)
	}
}

func (p *page) drawFooter(cur *cursor) {
	footerY := cur.advance(40)

	lineH := 16.0
	if pageHeight-footerY < footerReserve {
		lineH = 12
	}

	center := func(y float64, s string) {
		w := p.pdf.GetStringWidth(s)
		p.pdf.Text((pageWidth-w)/2, y, s)
	}

	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.SetFont(fontFamily, "B", 9)
	center(footerY, "Thank you for choosing GLITZFUSION!")

	p.pdf.SetFont(fontFamily, "", 8)
	center(footerY+lineH, p.tr("For queries, contact events@glitzfusion.in • +91 98765 43210"))

	p.pdf.SetTextColor(107, 114, 128)
	p.pdf.SetFont(fontFamily, "", 7)
	center(footerY+2*lineH, "This is a computer-generated invoice and does not require a signature.")
}

// wrap honors a maxWidth via the renderer's word wrap, keeping at most
// maxLines lines. Input is translated before splitting so widths are
// measured in the font's own encoding.
func (p *page) wrap(s string, maxWidth float64, maxLines int) []string {
	if s == "" {
		return nil
	}

	lines := p.pdf.SplitText(p.tr(s), maxWidth)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
