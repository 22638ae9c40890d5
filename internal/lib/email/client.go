// Package email sends transactional e-mail through Resend.
//
// Bodies are rendered from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/nyashahama/bkw-backend/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Template names an embedded template, without the .html suffix.
type Template string

const (
	TemplateWelcome         Template = "welcome"
	TemplateBookingReceived Template = "booking_received"
)

type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient returns a client that delivers through Resend. Without an API
// key the client renders but does not send.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{
		from:   cfg.Integration.EmailFrom,
		logger: logger,
	}
	if cfg.Integration.ResendAPIKey != "" {
		c.client = resend.NewClient(cfg.Integration.ResendAPIKey)
	}
	return c
}

// Render executes the named template with data.
func Render(name Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, string(name)+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

func (c *Client) SendEmail(ctx context.Context, to, subject string, name Template, data map[string]string) error {
	html, err := Render(name, data)
	if err != nil {
		return err
	}

	if c.client == nil {
		c.logger.Warn().
			Str("to", to).
			Str("template", string(name)).
			Msg("resend api key not configured, skipping email delivery")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
