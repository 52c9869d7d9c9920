package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/orincore/glitzfusion/internal/domain"
)

const bodyStyle = `font-family:Arial,Helvetica,sans-serif;color:#111827;max-width:600px;margin:0 auto`

var bookingConfirmationTmpl = template.Must(template.New("booking").Parse(`
<div style="` + bodyStyle + `">
  <h2 style="color:#16A34A">Booking Confirmed!</h2>
  <p>Hi {{.MemberName}},</p>
  <p>Your booking for <strong>{{.Booking.EventTitle}}</strong> is confirmed.</p>
  <table style="border-collapse:collapse">
    <tr><td style="padding:4px 12px 4px 0;color:#6B7280">Booking code</td><td><strong>{{.Booking.BookingCode}}</strong></td></tr>
    <tr><td style="padding:4px 12px 4px 0;color:#6B7280">Date</td><td>{{.Booking.Date}}</td></tr>
    <tr><td style="padding:4px 12px 4px 0;color:#6B7280">Time</td><td>{{.Booking.Time}}</td></tr>
    <tr><td style="padding:4px 12px 4px 0;color:#6B7280">Venue</td><td>{{.Booking.Venue}}</td></tr>
  </table>
  {{if .HasTicket}}<p>Your ticket:</p><img src="cid:ticket.png" alt="Ticket" style="max-width:100%"/>{{end}}
  <p style="color:#6B7280;font-size:12px">See you at the show!<br/>Team GLITZFUSION</p>
</div>`))

var paymentConfirmationTmpl = template.Must(template.New("payment").Parse(`
<div style="` + bodyStyle + `">
  <h2 style="color:#16A34A">Payment Confirmed</h2>
  <p>Hi {{.MemberName}},</p>
  <p>We received your payment of <strong>{{.Amount}}</strong> for <strong>{{.Booking.EventTitle}}</strong>.</p>
  <table style="border-collapse:collapse">
    <tr><td style="padding:4px 12px 4px 0;color:#6B7280">Invoice</td><td>{{.InvoiceNumber}}</td></tr>
    <tr><td style="padding:4px 12px 4px 0;color:#6B7280">Payment ID</td><td>{{.PaymentID}}</td></tr>
    <tr><td style="padding:4px 12px 4px 0;color:#6B7280">Booking code</td><td><strong>{{.Booking.BookingCode}}</strong></td></tr>
  </table>
  {{if .HasInvoice}}<p>Your invoice is attached as a PDF.</p>{{end}}
  {{if .HasTicket}}<p>Your ticket:</p><img src="cid:ticket.png" alt="Ticket" style="max-width:100%"/>{{end}}
  {{if .Entries}}
  <p>Tickets for all members are attached:</p>
  <ul>{{range .Entries}}<li><strong>{{.Code}}</strong> - {{.Name}}</li>{{end}}</ul>
  {{end}}
  <p style="color:#6B7280;font-size:12px">Team GLITZFUSION</p>
</div>`))

var otpTmpl = template.Must(template.New("otp").Parse(`
<div style="` + bodyStyle + `">
  <h2 style="color:#16A34A">Your verification code</h2>
  <p style="font-size:32px;letter-spacing:6px"><strong>{{.Code}}</strong></p>
  <p>This code is valid for 5 minutes. If you did not request it, ignore this email.</p>
  <p style="color:#6B7280;font-size:12px">Team GLITZFUSION</p>
</div>`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="` + bodyStyle + `">
  <h2 style="color:#16A34A">Welcome, {{.Name}}!</h2>
  <p>You are checked in{{if .EventTitle}} for <strong>{{.EventTitle}}</strong>{{end}}. Enjoy the show!</p>
  <p style="color:#6B7280;font-size:12px">Team GLITZFUSION</p>
</div>`))

type ticketEntry struct {
	Name string
	Code string
}

type paymentBody struct {
	MemberName    string
	Booking       domain.BookingData
	Amount        string
	InvoiceNumber string
	PaymentID     string
	HasInvoice    bool
	HasTicket     bool
	Entries       []ticketEntry
}

func bookingConfirmationBody(booking domain.BookingData, memberName string, hasTicket bool) (string, string) {
	var html bytes.Buffer
	_ = bookingConfirmationTmpl.Execute(&html, struct {
		MemberName string
		Booking    domain.BookingData
		HasTicket  bool
	}{memberName, booking, hasTicket})

	text := fmt.Sprintf(
		"Booking confirmed!\n\nEvent: %s\nBooking code: %s\nDate: %s\nTime: %s\nVenue: %s\n\nTeam GLITZFUSION",
		booking.EventTitle, booking.BookingCode, booking.Date, booking.Time, booking.Venue,
	)

	return html.String(), text
}

func paymentConfirmationBody(data paymentBody) (string, string) {
	var html bytes.Buffer
	_ = paymentConfirmationTmpl.Execute(&html, data)

	var text strings.Builder
	fmt.Fprintf(&text, "Payment confirmed.\n\nEvent: %s\nAmount: %s\nInvoice: %s\nPayment ID: %s\nBooking code: %s\n",
		data.Booking.EventTitle, data.Amount, data.InvoiceNumber, data.PaymentID, data.Booking.BookingCode)

	if len(data.Entries) > 0 {
		text.WriteString("\nMember tickets:\n")
		for _, e := range data.Entries {
			fmt.Fprintf(&text, "  %s - %s\n", e.Code, e.Name)
		}
	}

	text.WriteString("\nTeam GLITZFUSION")

	return html.String(), text.String()
}

func otpBody(code string) (string, string) {
	var html bytes.Buffer
	_ = otpTmpl.Execute(&html, struct{ Code string }{code})

	text := fmt.Sprintf("Your GLITZFUSION verification code is %s. It is valid for 5 minutes.", code)

	return html.String(), text
}

func welcomeBody(name, eventTitle string) (string, string) {
	var html bytes.Buffer
	_ = welcomeTmpl.Execute(&html, struct{ Name, EventTitle string }{name, eventTitle})

	text := fmt.Sprintf("Welcome, %s! You are checked in. Enjoy the show!\n\nTeam GLITZFUSION", name)

	return html.String(), text
}
