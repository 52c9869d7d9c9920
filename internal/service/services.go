package service

import (
	"log/slog"

	"github.com/orincore/glitzfusion/internal/config"
	"github.com/orincore/glitzfusion/internal/render/invoice"
	"github.com/orincore/glitzfusion/internal/render/ticket"
	"github.com/orincore/glitzfusion/internal/service/notification"
	"github.com/orincore/glitzfusion/internal/service/pricing"
)

type Services struct {
	Pricing      *pricing.Service
	Notification *notification.Service
}

func NewServices(smtpCfg config.SMTPConfig, logger *slog.Logger) *Services {
	return &Services{
		Pricing: pricing.New(),
		Notification: notification.New(
			smtpCfg,
			ticket.NewRenderer(),
			invoice.NewRenderer(),
			logger,
		),
	}
}
