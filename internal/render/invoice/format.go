package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GenerateInvoiceNumber builds the deterministic invoice identifier
// FX-YYYY-MM-DD-{bookingCode}-{LAST4}. It uses the current date at
// generation time, not the payment date: the invoice-issued date may
// legitimately differ from the payment date.
func GenerateInvoiceNumber(bookingCode, paymentID string) string {
	now := time.Now()

	last4 := paymentID
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}

	return fmt.Sprintf(
		"FX-%04d-%02d-%02d-%s-%s",
		now.Year(), int(now.Month()), now.Day(),
		bookingCode, strings.ToUpper(last4),
	)
}

// FormatInvoiceDate renders the long-form date used on invoices, e.g.
// "15 January 2024". Indian English conventions, fixed regardless of
// deployment locale.
func FormatInvoiceDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// rupees renders a whole-rupee amount with Indian digit grouping:
// 2500 -> "Rs. 2,500", 100000 -> "Rs. 1,00,000". All monetary math in
// this subsystem is integer arithmetic on whole units.
func rupees(n int) string {
	return "Rs. " + groupIndian(n)
}

func groupIndian(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.Itoa(n)
	if len(s) > 3 {
		head := s[:len(s)-3]
		tail := s[len(s)-3:]

		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}

		s = strings.Join(append(parts, tail), ",")
	}

	if neg {
		return "-" + s
	}
	return s
}
