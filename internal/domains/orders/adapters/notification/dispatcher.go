// Package notification renders and dispatches transition emails to the
// customer, one attempt per invocation.
package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/orders/ports"
)

// Sender is the outbound send primitive, satisfied by the SMTP client.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}

// Dispatcher implements the order notification port on top of a Sender.
type Dispatcher struct {
	sender Sender
}

// NewDispatcher wires the outbound mail client into a notification adapter.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// SendConfirmation mails the customer that the order was confirmed.
func (d *Dispatcher) SendConfirmation(ctx context.Context, order *domain.Order) error {
	return d.send(ctx, order, "Order Confirmed - %s", confirmationTmpl)
}

// SendCancellation mails the customer that the order was cancelled.
func (d *Dispatcher) SendCancellation(ctx context.Context, order *domain.Order) error {
	return d.send(ctx, order, "Order Cancelled - %s", cancellationTmpl)
}

func (d *Dispatcher) send(ctx context.Context, order *domain.Order, subjectFmt string, tmpl *template.Template) error {
	if d == nil || d.sender == nil {
		return errors.New("notification dispatcher not configured")
	}
	if order == nil {
		return errors.New("order is nil")
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, order); err != nil {
		return fmt.Errorf("render notification: %w", err)
	}
	subject := fmt.Sprintf(subjectFmt, order.Product)
	if _, err := d.sender.Send(ctx, order.Email, subject, body.String()); err != nil {
		return fmt.Errorf("dispatch notification: %w", err)
	}
	return nil
}

var _ ports.Notifier = (*Dispatcher)(nil)
