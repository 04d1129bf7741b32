// Package whatsapp builds the deep links that hand a conversation over to
// the pharmacy's WhatsApp number.
package whatsapp

import (
	"net/url"

	"pharmacy/config"
	"pharmacy/internal/domain/service"
)

type messenger struct {
	phone string
}

// NewMessenger builds the deep-link generator for the configured number.
func NewMessenger(cfg *config.Config) service.Messenger {
	return &messenger{phone: cfg.WhatsApp.Phone}
}

func (m *messenger) OrderLink(message string) string {
	return "https://wa.me/" + m.phone + "?text=" + url.QueryEscape(message)
}

func (m *messenger) ContactLink() string {
	return "https://wa.me/" + m.phone
}
