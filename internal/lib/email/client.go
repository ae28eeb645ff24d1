// Package email sends notification emails through Resend.
//
// Message bodies are rendered from HTML templates embedded in the binary.
package email

import (
	"context"
	"fmt"
	"strconv"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/deppfellow/visitor-log/internal/config"
	"github.com/deppfellow/visitor-log/internal/model/visitor"
)

// Client wraps the Resend client and a logger.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates a Client using the Resend API key from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		from:   fmt.Sprintf("%s <%s>", "Visitor Log", cfg.Notification.Sender),
		logger: logger,
	}
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(ctx context.Context, to, subject string, templateName Template, data map[string]string) error {
	body, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("email_id", sent.Id).
		Str("template", string(templateName)).
		Msg("email accepted by provider")

	return nil
}

// SendVisitorArrivedEmail tells the front desk that v has been logged.
func (c *Client) SendVisitorArrivedEmail(ctx context.Context, to string, v visitor.Visitor) error {
	return c.SendEmail(
		ctx,
		to,
		fmt.Sprintf("%s has arrived", v.Name),
		TemplateVisitorArrived,
		VisitorArrivedData(v),
	)
}

// VisitorArrivedData maps a visitor onto the visitor_arrived template fields.
func VisitorArrivedData(v visitor.Visitor) map[string]string {
	return map[string]string{
		"VisitorName": v.Name,
		"VisitorAge":  strconv.Itoa(v.Age),
		"VisitDate":   v.Date,
		"VisitTime":   v.Time,
		"Assistant":   v.Assistant,
		"Comments":    v.Comments,
	}
}
