package services

import (
	"context"
	"log"
)

// SMSSender delivers a text message to a phone number. The real gateway
// lives outside this service.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// ConsoleSMSSender writes the message to the log instead of sending it.
// Used in development and as the default until a gateway is configured.
type ConsoleSMSSender struct{}

func NewConsoleSMSSender() *ConsoleSMSSender {
	return &ConsoleSMSSender{}
}

func (s *ConsoleSMSSender) Send(ctx context.Context, phone, message string) error {
	log.Printf("[SMS] to %s: %s", phone, message)
	return nil
}
