package httpgin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orincore/glitzfusion/internal/service"
	"github.com/orincore/glitzfusion/internal/service/pricing"
)

func NewRouter(
	svcs *service.Services,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/pricing/quote", handleQuote(svcs))

		n := v1.Group("/notifications")
		{
			n.POST("/booking-confirmation", handleBookingConfirmation(svcs))
			n.POST("/payment-confirmation", handlePaymentConfirmation(svcs))
			n.POST("/payment-confirmation/all-tickets", handlePaymentConfirmationAllTickets(svcs))
			n.POST("/otp", handleOTP(svcs))
			n.POST("/welcome", handleWelcome(svcs))
		}
	}

	return r
}

func handleQuote(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		price, err := svcs.Pricing.Quote(req.Tier(), req.PricingConfig(), req.BookedCount)
		if err != nil {
			respondPricingErr(c, err)
			return
		}

		c.JSON(http.StatusOK, QuoteResponse{Category: req.Category, Price: price})
	}
}

func handleBookingConfirmation(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookingConfirmationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		res := svcs.Notification.SendBookingConfirmation(
			c.Request.Context(), req.Email, req.Booking.Booking(), req.TicketTemplateURL,
		)

		// Delivery is best-effort: the result object carries the
		// outcome, the request itself succeeded.
		c.JSON(http.StatusOK, res)
	}
}

func handlePaymentConfirmation(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentConfirmationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		res := svcs.Notification.SendPaymentConfirmation(
			c.Request.Context(), req.Email, req.Booking.Booking(), req.Payment.Payment(), req.TicketTemplateURL,
		)

		c.JSON(http.StatusOK, res)
	}
}

func handlePaymentConfirmationAllTickets(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentConfirmationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		res := svcs.Notification.SendPaymentConfirmationWithAllTickets(
			c.Request.Context(), req.Email, req.Booking.Booking(), req.Payment.Payment(), req.TicketTemplateURL,
		)

		c.JSON(http.StatusOK, res)
	}
}

func handleOTP(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		res := svcs.Notification.SendOTP(c.Request.Context(), req.Email, req.Code)

		c.JSON(http.StatusOK, res)
	}
}

func handleWelcome(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WelcomeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		res := svcs.Notification.SendWelcome(c.Request.Context(), toWelcomeData(req))

		c.JSON(http.StatusOK, res)
	}
}

// --- Helpers ---

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// Pricing input errors are hard precondition violations and map to
// 400, unlike notification results which are always 200.
func respondPricingErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidCapacity),
		errors.Is(err, pricing.ErrNegativeBasePrice),
		errors.Is(err, pricing.ErrInvalidThreshold),
		errors.Is(err, pricing.ErrInvalidIncrease),
		errors.Is(err, pricing.ErrNegativeBookings),
		errors.Is(err, pricing.ErrUnknownTierCategory):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
