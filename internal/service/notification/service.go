package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/orincore/glitzfusion/internal/config"
	"github.com/orincore/glitzfusion/internal/domain"
	"github.com/orincore/glitzfusion/internal/render/invoice"
	"github.com/orincore/glitzfusion/internal/smtp"
	"golang.org/x/sync/errgroup"
)

type TicketRenderer interface {
	RenderOnTemplate(ctx context.Context, templateURL string, data domain.TicketData) ([]byte, error)
	RenderDefault(data domain.TicketData) ([]byte, error)
}

type InvoiceRenderer interface {
	Render(data domain.InvoiceData) ([]byte, error)
}

// Result is the structured outcome of one send operation. Email
// delivery is best-effort: render failures degrade to partial
// attachments and are reported here, never thrown.
type Result struct {
	Success          bool   `json:"success"`
	Error            string `json:"error,omitempty"`
	InvoiceGenerated bool   `json:"invoiceGenerated"`
	TicketGenerated  bool   `json:"ticketGenerated"`
	TicketsGenerated int    `json:"ticketsGenerated"`
	InvoiceNumber    string `json:"invoiceNumber,omitempty"`
}

type WelcomeData struct {
	Name       string
	Email      string
	EventTitle string
}

type SenderFactory func(cfg config.SMTPConfig) (smtp.Sender, error)

// Service assembles and transmits transactional emails. The SMTP
// transport is constructed lazily on first use and reused for the
// lifetime of the service.
type Service struct {
	cfg      config.SMTPConfig
	tickets  TicketRenderer
	invoices InvoiceRenderer
	logger   *slog.Logger

	newSender SenderFactory

	mu     sync.Mutex
	sender smtp.Sender
}

type Option func(*Service)

// WithSenderFactory overrides transport construction, enabling test
// doubles.
func WithSenderFactory(fn SenderFactory) Option {
	return func(s *Service) {
		s.newSender = fn
	}
}

func New(
	cfg config.SMTPConfig,
	tickets TicketRenderer,
	invoices InvoiceRenderer,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		cfg:      cfg,
		tickets:  tickets,
		invoices: invoices,
		logger:   logger,
		newSender: func(cfg config.SMTPConfig) (smtp.Sender, error) {
			return smtp.New(cfg)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) transport() (smtp.Sender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sender != nil {
		return s.sender, nil
	}

	sender, err := s.newSender(s.cfg)
	if err != nil {
		return nil, err
	}

	s.sender = sender
	return sender, nil
}

// SendBookingConfirmation generates one ticket for the recipient (the
// primary member when the recipient is not among the members), embeds
// it inline and sends. Ticket failure degrades to a plain email.
func (s *Service) SendBookingConfirmation(
	ctx context.Context,
	recipient string,
	booking domain.BookingData,
	ticketTemplateURL string,
) Result {
	const op = "service.notification.SendBookingConfirmation"

	sender, err := s.transport()
	if err != nil {
		return s.transportFailure(op, err)
	}

	codes := resolveMemberCodes(booking)
	idx := recipientIndex(booking, recipient)
	data := ticketDataFor(booking, idx, codes[idx])

	png, err := s.renderTicket(ctx, ticketTemplateURL, data)
	if err != nil {
		s.logger.Warn("ticket generation failed, sending without it",
			"booking_code", booking.BookingCode, "error", err)
	}

	html, text := bookingConfirmationBody(booking, data.MemberName, png != nil)

	msg := &smtp.Message{
		To:      recipient,
		From:    s.cfg.From,
		Subject: "Booking Confirmed - " + booking.EventTitle,
		HTML:    html,
		Text:    text,
	}

	ticketsGenerated := 0
	if png != nil {
		ticketsGenerated = 1
		msg.Attachments = append(msg.Attachments, smtp.Attachment{
			Filename:    "ticket.png",
			Content:     png,
			ContentType: "image/png",
			CID:         "ticket.png",
		})
	}

	if err := sender.Send(ctx, msg); err != nil {
		s.logger.Error("booking confirmation send failed",
			"booking_code", booking.BookingCode, "error", err)
		return Result{Error: err.Error(), TicketsGenerated: ticketsGenerated}
	}

	return Result{Success: true, TicketsGenerated: ticketsGenerated}
}

// SendPaymentConfirmation attaches the invoice PDF and the paying
// recipient's ticket, proceeding with whatever artifacts succeeded.
func (s *Service) SendPaymentConfirmation(
	ctx context.Context,
	recipient string,
	booking domain.BookingData,
	payment domain.PaymentData,
	ticketTemplateURL string,
) Result {
	const op = "service.notification.SendPaymentConfirmation"

	sender, err := s.transport()
	if err != nil {
		return s.transportFailure(op, err)
	}

	codes := resolveMemberCodes(booking)
	idx := recipientIndex(booking, recipient)

	invoiceNumber := invoice.GenerateInvoiceNumber(booking.BookingCode, payment.PaymentID)

	pdf := s.renderInvoice(booking, payment, invoiceNumber, idx)

	data := ticketDataFor(booking, idx, codes[idx])
	png, err := s.renderTicket(ctx, ticketTemplateURL, data)
	if err != nil {
		s.logger.Warn("ticket generation failed, sending without it",
			"booking_code", booking.BookingCode, "error", err)
	}

	html, text := paymentConfirmationBody(paymentBody{
		MemberName:    data.MemberName,
		Booking:       booking,
		Amount:        fmt.Sprintf("Rs. %d", payment.Amount),
		InvoiceNumber: invoiceNumber,
		PaymentID:     payment.PaymentID,
		HasInvoice:    pdf != nil,
		HasTicket:     png != nil,
	})

	msg := &smtp.Message{
		To:      recipient,
		From:    s.cfg.From,
		Subject: "Payment Confirmed - Invoice " + invoiceNumber,
		HTML:    html,
		Text:    text,
	}

	// Invoice first, then the ticket.
	if pdf != nil {
		msg.Attachments = append(msg.Attachments, smtp.Attachment{
			Filename:    "invoice-" + invoiceNumber + ".pdf",
			Content:     pdf,
			ContentType: "application/pdf",
		})
	}
	if png != nil {
		msg.Attachments = append(msg.Attachments, smtp.Attachment{
			Filename:    "ticket.png",
			Content:     png,
			ContentType: "image/png",
			CID:         "ticket.png",
		})
	}

	if err := sender.Send(ctx, msg); err != nil {
		s.logger.Error("payment confirmation send failed",
			"booking_code", booking.BookingCode, "error", err)
		return Result{
			Error:            err.Error(),
			InvoiceGenerated: pdf != nil,
			TicketGenerated:  png != nil,
			InvoiceNumber:    invoiceNumber,
		}
	}

	return Result{
		Success:          true,
		InvoiceGenerated: pdf != nil,
		TicketGenerated:  png != nil,
		InvoiceNumber:    invoiceNumber,
	}
}

// SendPaymentConfirmationWithAllTickets generates one ticket per
// member and attaches every ticket as a separate file, in member
// order, after the invoice. Member renders share no mutable state and
// run concurrently.
func (s *Service) SendPaymentConfirmationWithAllTickets(
	ctx context.Context,
	recipient string,
	booking domain.BookingData,
	payment domain.PaymentData,
	ticketTemplateURL string,
) Result {
	const op = "service.notification.SendPaymentConfirmationWithAllTickets"

	sender, err := s.transport()
	if err != nil {
		return s.transportFailure(op, err)
	}

	codes := resolveMemberCodes(booking)
	idx := recipientIndex(booking, recipient)

	invoiceNumber := invoice.GenerateInvoiceNumber(booking.BookingCode, payment.PaymentID)
	pdf := s.renderInvoice(booking, payment, invoiceNumber, idx)

	tickets := make([][]byte, len(booking.Members))

	g, gctx := errgroup.WithContext(ctx)
	for i := range booking.Members {
		i := i
		g.Go(func() error {
			png, err := s.renderTicket(gctx, ticketTemplateURL, ticketDataFor(booking, i, codes[i]))
			if err != nil {
				s.logger.Warn("member ticket generation failed",
					"booking_code", booking.BookingCode, "member_index", i, "error", err)
				return nil
			}
			tickets[i] = png
			return nil
		})
	}
	_ = g.Wait()

	entries := make([]ticketEntry, 0, len(booking.Members))
	for i, m := range booking.Members {
		entries = append(entries, ticketEntry{Name: m.Name, Code: codes[i]})
	}

	html, text := paymentConfirmationBody(paymentBody{
		MemberName:    booking.Members[idx].Name,
		Booking:       booking,
		Amount:        fmt.Sprintf("Rs. %d", payment.Amount),
		InvoiceNumber: invoiceNumber,
		PaymentID:     payment.PaymentID,
		HasInvoice:    pdf != nil,
		Entries:       entries,
	})

	msg := &smtp.Message{
		To:      recipient,
		From:    s.cfg.From,
		Subject: "Payment Confirmed - Invoice " + invoiceNumber,
		HTML:    html,
		Text:    text,
	}

	if pdf != nil {
		msg.Attachments = append(msg.Attachments, smtp.Attachment{
			Filename:    "invoice-" + invoiceNumber + ".pdf",
			Content:     pdf,
			ContentType: "application/pdf",
		})
	}

	ticketsGenerated := 0
	for i, png := range tickets {
		if png == nil {
			continue
		}
		ticketsGenerated++
		msg.Attachments = append(msg.Attachments, smtp.Attachment{
			Filename:    fmt.Sprintf("ticket-%s.png", codes[i]),
			Content:     png,
			ContentType: "image/png",
		})
	}

	if err := sender.Send(ctx, msg); err != nil {
		s.logger.Error("payment confirmation send failed",
			"booking_code", booking.BookingCode, "error", err)
		return Result{
			Error:            err.Error(),
			InvoiceGenerated: pdf != nil,
			TicketsGenerated: ticketsGenerated,
			InvoiceNumber:    invoiceNumber,
		}
	}

	return Result{
		Success:          true,
		InvoiceGenerated: pdf != nil,
		TicketsGenerated: ticketsGenerated,
		InvoiceNumber:    invoiceNumber,
	}
}

// SendOTP sends the verification-code email. Expiry enforcement is
// external; the 5-minute validity is messaging only.
func (s *Service) SendOTP(ctx context.Context, email, code string) Result {
	const op = "service.notification.SendOTP"

	sender, err := s.transport()
	if err != nil {
		return s.transportFailure(op, err)
	}

	html, text := otpBody(code)

	msg := &smtp.Message{
		To:      email,
		From:    s.cfg.From,
		Subject: "Your GLITZFUSION verification code",
		HTML:    html,
		Text:    text,
	}

	if err := sender.Send(ctx, msg); err != nil {
		s.logger.Error("otp send failed", "error", err)
		return Result{Error: err.Error()}
	}

	return Result{Success: true}
}

// SendWelcome sends the post-check-in courtesy email.
func (s *Service) SendWelcome(ctx context.Context, data WelcomeData) Result {
	const op = "service.notification.SendWelcome"

	sender, err := s.transport()
	if err != nil {
		return s.transportFailure(op, err)
	}

	html, text := welcomeBody(data.Name, data.EventTitle)

	msg := &smtp.Message{
		To:      data.Email,
		From:    s.cfg.From,
		Subject: "Welcome to GLITZFUSION!",
		HTML:    html,
		Text:    text,
	}

	if err := sender.Send(ctx, msg); err != nil {
		s.logger.Error("welcome send failed", "error", err)
		return Result{Error: err.Error()}
	}

	return Result{Success: true}
}

func (s *Service) transportFailure(op string, err error) Result {
	if errors.Is(err, smtp.ErrNotConfigured) {
		s.logger.Warn("send skipped, SMTP not configured", "op", op)
		return Result{Error: smtp.ErrNotConfigured.Error()}
	}

	s.logger.Error("transport construction failed", "op", op, "error", err)
	return Result{Error: err.Error()}
}

func (s *Service) renderTicket(
	ctx context.Context,
	templateURL string,
	data domain.TicketData,
) ([]byte, error) {
	if templateURL == "" {
		return s.tickets.RenderDefault(data)
	}
	return s.tickets.RenderOnTemplate(ctx, templateURL, data)
}

func (s *Service) renderInvoice(
	booking domain.BookingData,
	payment domain.PaymentData,
	invoiceNumber string,
	recipientIdx int,
) []byte {
	customer := booking.Members[recipientIdx]

	pdf, err := s.invoices.Render(domain.InvoiceData{
		InvoiceNumber: invoiceNumber,
		InvoiceDate:   time.Now(),
		PaymentID:     payment.PaymentID,
		PaymentMethod: payment.PaymentMethod,
		PaymentDate:   payment.PaymentDate,
		BookingCode:   booking.BookingCode,
		EventTitle:    booking.EventTitle,
		EventDate:     booking.Date,
		EventTime:     booking.Time,
		Venue:         booking.Venue,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		Subtotal:      payment.Amount,
		TotalAmount:   payment.Amount,
		Members:       booking.Members,
	})
	if err != nil {
		s.logger.Warn("invoice generation failed, sending without it",
			"booking_code", booking.BookingCode, "error", err)
		return nil
	}

	return pdf
}

func ticketDataFor(b domain.BookingData, idx int, code string) domain.TicketData {
	m := b.Members[idx]

	return domain.TicketData{
		BookingCode:  b.BookingCode,
		MemberCode:   code,
		MemberName:   m.Name,
		EventTitle:   b.EventTitle,
		Date:         b.Date,
		Time:         b.Time,
		Venue:        b.Venue,
		MemberIndex:  idx,
		TotalMembers: len(b.Members),
	}
}
