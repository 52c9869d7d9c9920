package domain

import "time"

type TierCategory string

const (
	TierEarlyBird TierCategory = "early_bird"
	TierRegular   TierCategory = "regular"
	TierVIP       TierCategory = "vip"
	TierPremium   TierCategory = "premium"
	TierStudent   TierCategory = "student"
	TierGroup     TierCategory = "group"
)

// PricingTier is one priced admission category of an event.
// CurrentPrice is the quoted price after any dynamic step-up and is
// always recomputed from BasePrice, never stored below it.
type PricingTier struct {
	Category     TierCategory
	BasePrice    int
	CurrentPrice int
	MaxTickets   int
	Description  string
}

// DynamicPricingConfig is attached to an event and applies to all of
// its tiers. It is read-only at quote time.
type DynamicPricingConfig struct {
	Enabled                 bool
	ThresholdPercentage     int
	PriceIncreasePercentage int
}

type Member struct {
	Name       string
	Email      string
	Phone      string
	MemberCode string
}

// BookingData arrives fully formed from the external booking store.
// Members[0] is the primary/purchasing contact. Date, Time and Venue
// are display strings already formatted by the caller.
type BookingData struct {
	BookingCode string
	Members     []Member
	EventTitle  string
	Date        string
	Time        string
	Venue       string
	TotalAmount int
	MemberCount int
}

type PaymentData struct {
	PaymentID     string
	PaymentMethod string
	PaymentDate   time.Time
	Amount        int
}

// TicketData is the per-recipient render input. It is constructed
// fresh per send operation and never persisted here.
type TicketData struct {
	BookingCode  string
	MemberCode   string
	MemberName   string
	EventTitle   string
	Date         string
	Time         string
	Venue        string
	MemberIndex  int
	TotalMembers int
}

// InvoiceData exists only for the duration of one PDF render. The
// renderer trusts TotalAmount; it does not re-derive it from the
// subtotal, taxes and discount.
type InvoiceData struct {
	InvoiceNumber string
	InvoiceDate   time.Time

	PaymentID     string
	PaymentMethod string
	PaymentDate   time.Time

	BookingCode string
	EventTitle  string
	EventDate   string
	EventTime   string
	Venue       string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Subtotal    int
	Taxes       int
	Discount    int
	TotalAmount int

	Members []Member
}
