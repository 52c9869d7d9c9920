package invoice

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/orincore/glitzfusion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice(memberCount int) domain.InvoiceData {
	members := make([]domain.Member, 0, memberCount)
	for i := 0; i < memberCount; i++ {
		members = append(members, domain.Member{
			Name:  fmt.Sprintf("Member %d", i+1),
			Email: fmt.Sprintf("member%d@example.com", i+1),
			Phone: "+91 98765 43210",
		})
	}

	return domain.InvoiceData{
		InvoiceNumber: "FX-2026-09-01-FX001-3456",
		InvoiceDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		PaymentID:     "pay_test123456",
		PaymentMethod: "UPI",
		PaymentDate:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		BookingCode:   "FX001",
		EventTitle:    "FusionX Summer Showcase",
		EventDate:     "15 March 2026",
		EventTime:     "7:00 PM",
		Venue:         "GLITZFUSION Auditorium",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "+91 98765 43210",
		Subtotal:      2500,
		TotalAmount:   2500,
		Members:       members,
	}
}

func TestGenerateInvoiceNumber_Format(t *testing.T) {
	now := time.Now()
	want := fmt.Sprintf("FX-%04d-%02d-%02d-FX001-3456", now.Year(), int(now.Month()), now.Day())

	got := GenerateInvoiceNumber("FX001", "pay_test123456")

	assert.Equal(t, want, got)
}

func TestGenerateInvoiceNumber_UppercasesAlphabeticSuffix(t *testing.T) {
	got := GenerateInvoiceNumber("FX001", "pay_abcXYZ")

	assert.True(t, strings.HasSuffix(got, "-CXYZ"), got)
}

func TestGenerateInvoiceNumber_ShortPaymentID(t *testing.T) {
	got := GenerateInvoiceNumber("FX001", "ab")

	assert.True(t, strings.HasSuffix(got, "-FX001-AB"), got)
}

func TestFormatInvoiceDate(t *testing.T) {
	d := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "15 January 2024", FormatInvoiceDate(d))
}

func TestRupees_IndianGrouping(t *testing.T) {
	cases := map[int]string{
		0:        "Rs. 0",
		999:      "Rs. 999",
		2500:     "Rs. 2,500",
		100000:   "Rs. 1,00,000",
		1234567:  "Rs. 12,34,567",
		10000000: "Rs. 1,00,00,000",
	}

	for n, want := range cases {
		assert.Equal(t, want, rupees(n))
	}
}

func TestBillingRows_NoTaxOrDiscount(t *testing.T) {
	rows := billingRows(sampleInvoice(1))

	require.Len(t, rows, 2)
	assert.Contains(t, rows[0].amount, "2,500")
	assert.True(t, rows[1].emphasis)
	assert.Equal(t, "Rs. 2,500", rows[1].amount)
}

func TestBillingRows_WithTaxAndDiscount(t *testing.T) {
	data := sampleInvoice(1)
	data.Taxes = 450
	data.Discount = 250
	data.TotalAmount = 2700

	rows := billingRows(data)

	require.Len(t, rows, 4)
	assert.Equal(t, "Taxes & Fees", rows[1].label)
	assert.Equal(t, "Discount", rows[2].label)
	assert.Equal(t, "- Rs. 250", rows[2].amount)
	assert.Equal(t, "Rs. 2,700", rows[3].amount)
}

func TestBillingStartY_GrowsWithMembers(t *testing.T) {
	one := billingStartY(1)
	five := billingStartY(5)

	assert.Greater(t, five, one)
	assert.GreaterOrEqual(t, one, minBillingY)
}

func TestRender_ProducesPDF(t *testing.T) {
	r := NewRenderer()

	for _, n := range []int{1, 5} {
		b, err := r.Render(sampleInvoice(n))
		require.NoError(t, err)
		require.NotEmpty(t, b)
		assert.True(t, strings.HasPrefix(string(b[:5]), "%PDF-"))
	}
}

func TestRender_WithOptionalRows(t *testing.T) {
	data := sampleInvoice(3)
	data.Taxes = 450
	data.Discount = 100
	data.TotalAmount = 2850

	b, err := NewRenderer().Render(data)

	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
