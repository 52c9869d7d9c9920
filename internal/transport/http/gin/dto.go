package httpgin

import (
	"time"

	"github.com/orincore/glitzfusion/internal/domain"
	"github.com/orincore/glitzfusion/internal/service/notification"
)

type QuoteRequest struct {
	Category                string `json:"category" binding:"required"`
	BasePrice               int    `json:"base_price" binding:"gte=0"`
	MaxTickets              int    `json:"max_tickets" binding:"required"`
	Description             string `json:"description"`
	Enabled                 bool   `json:"enabled"`
	ThresholdPercentage     int    `json:"threshold_percentage"`
	PriceIncreasePercentage int    `json:"price_increase_percentage"`
	BookedCount             int    `json:"booked_count"`
}

func (r QuoteRequest) Tier() domain.PricingTier {
	return domain.PricingTier{
		Category:    domain.TierCategory(r.Category),
		BasePrice:   r.BasePrice,
		MaxTickets:  r.MaxTickets,
		Description: r.Description,
	}
}

func (r QuoteRequest) PricingConfig() domain.DynamicPricingConfig {
	return domain.DynamicPricingConfig{
		Enabled:                 r.Enabled,
		ThresholdPercentage:     r.ThresholdPercentage,
		PriceIncreasePercentage: r.PriceIncreasePercentage,
	}
}

type QuoteResponse struct {
	Category string `json:"category"`
	Price    int    `json:"price"`
}

type MemberInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	MemberCode string `json:"member_code"`
}

type BookingInput struct {
	BookingCode string        `json:"booking_code" binding:"required"`
	Members     []MemberInput `json:"members" binding:"required,min=1,dive"`
	EventTitle  string        `json:"event_title" binding:"required"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Venue       string        `json:"venue"`
	TotalAmount int           `json:"total_amount"`
}

func (b BookingInput) Booking() domain.BookingData {
	members := make([]domain.Member, 0, len(b.Members))
	for _, m := range b.Members {
		members = append(members, domain.Member{
			Name:       m.Name,
			Email:      m.Email,
			Phone:      m.Phone,
			MemberCode: m.MemberCode,
		})
	}

	return domain.BookingData{
		BookingCode: b.BookingCode,
		Members:     members,
		EventTitle:  b.EventTitle,
		Date:        b.Date,
		Time:        b.Time,
		Venue:       b.Venue,
		TotalAmount: b.TotalAmount,
		MemberCount: len(members),
	}
}

type PaymentInput struct {
	PaymentID     string `json:"payment_id" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	PaymentDate   string `json:"payment_date"`
	Amount        int    `json:"amount" binding:"required,gt=0"`
}

func (p PaymentInput) Payment() domain.PaymentData {
	paidAt, err := time.Parse(time.RFC3339, p.PaymentDate)
	if err != nil {
		paidAt = time.Now()
	}

	return domain.PaymentData{
		PaymentID:     p.PaymentID,
		PaymentMethod: p.PaymentMethod,
		PaymentDate:   paidAt,
		Amount:        p.Amount,
	}
}

type BookingConfirmationRequest struct {
	Email             string       `json:"email" binding:"required,email"`
	Booking           BookingInput `json:"booking" binding:"required"`
	TicketTemplateURL string       `json:"ticket_template_url"`
}

type PaymentConfirmationRequest struct {
	Email             string       `json:"email" binding:"required,email"`
	Booking           BookingInput `json:"booking" binding:"required"`
	Payment           PaymentInput `json:"payment" binding:"required"`
	TicketTemplateURL string       `json:"ticket_template_url"`
}

type OTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type WelcomeRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
	EventTitle string `json:"event_title"`
}

func toWelcomeData(req WelcomeRequest) notification.WelcomeData {
	return notification.WelcomeData{
		Name:       req.Name,
		Email:      req.Email,
		EventTitle: req.EventTitle,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}
