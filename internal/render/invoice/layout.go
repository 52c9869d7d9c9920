package invoice

import (
	"fmt"

	"github.com/orincore/glitzfusion/internal/domain"
)

// A4 in points, top-left origin.
const (
	pageWidth    = 595.28
	pageHeight   = 841.89
	marginX      = 40.0
	contentWidth = pageWidth - 2*marginX

	membersTableTop = 310.0
	tableHeaderH    = 22.0
	memberRowH      = 20.0

	// The billing summary never starts above this line even for a
	// single-member table.
	minBillingY = 420.0
	billingGap  = 25.0

	billingHeaderH = 20.0
	billingBaseH   = 28.0
	billingLineH   = 18.0
	totalBandH     = 26.0

	// Below this much remaining page space the footer switches to
	// compact line spacing.
	footerReserve = 90.0
)

// cursor tracks the current vertical offset while sections are drawn
// top to bottom.
type cursor struct {
	y float64
}

func (c *cursor) advance(dy float64) float64 {
	c.y += dy
	return c.y
}

// billingStartY places the billing summary under the members table,
// which grows linearly with member count.
func billingStartY(memberCount int) float64 {
	y := membersTableTop + tableHeaderH + float64(memberCount)*memberRowH + billingGap
	if y < minBillingY {
		y = minBillingY
	}
	return y
}

type billingRow struct {
	label    string
	sub      string
	amount   string
	emphasis bool
}

// billingRows decides which summary lines are drawn. Tax and discount
// rows appear only when present and positive; the renderer trusts the
// caller's TotalAmount.
func billingRows(data domain.InvoiceData) []billingRow {
	rows := []billingRow{{
		label:  fmt.Sprintf("Event Booking (%d members)", len(data.Members)),
		sub:    data.EventTitle,
		amount: rupees(data.Subtotal),
	}}

	if data.Taxes > 0 {
		rows = append(rows, billingRow{
			label:  "Taxes & Fees",
			amount: rupees(data.Taxes),
		})
	}

	if data.Discount > 0 {
		rows = append(rows, billingRow{
			label:  "Discount",
			amount: "- " + rupees(data.Discount),
		})
	}

	return append(rows, billingRow{
		label:    "Total",
		amount:   rupees(data.TotalAmount),
		emphasis: true,
	})
}
