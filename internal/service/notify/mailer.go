package notify

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/oakfield/london-property-agent/backend/internal/config"
	"github.com/oakfield/london-property-agent/backend/internal/model/lead"
)

// Notifier delivers captured leads to an external channel. Delivery is
// best-effort: callers log failures and never surface them to the client.
type Notifier interface {
	Notify(ctx context.Context, ref string, l lead.Lead) error
}

// Mailer sends a lead-summary email over SMTP.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer builds a Mailer from the SMTP section of the configuration.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Notify emails the lead summary to the configured recipient. When sender
// or recipient is unset the notification is skipped silently.
func (m *Mailer) Notify(ctx context.Context, ref string, l lead.Lead) error {
	if !m.cfg.Enabled() {
		log.Printf("[notify] email not configured, skipping notification for lead %s", ref)
		return nil
	}

	body, err := renderLeadHTML(ref, l)
	if err != nil {
		return fmt.Errorf("render notification body: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Sender); err != nil {
		return fmt.Errorf("set sender address: %w", err)
	}
	if err := msg.To(m.cfg.Recipient); err != nil {
		return fmt.Errorf("set recipient address: %w", err)
	}
	msg.Subject(subjectFor(l))
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.Sender),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send notification email: %w", err)
	}

	log.Printf("[notify] lead notification %s sent to %s", ref, m.cfg.Recipient)
	return nil
}

func subjectFor(l lead.Lead) string {
	interest := strings.ToUpper(strings.TrimSpace(l.InterestType))
	if interest == "" {
		interest = "N/A"
	}
	return fmt.Sprintf("New property lead captured - %s", interest)
}

var leadMailTemplate = template.Must(template.New("lead").Parse(`<html>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2 style="color: #1a1f3d;">New Property Lead</h2>
    <hr style="border: 1px solid #c9a227;">
    <table style="width: 100%; border-collapse: collapse;">
        <tr><td style="padding: 10px; font-weight: bold;">Name:</td><td style="padding: 10px;">{{.Lead.Name}}</td></tr>
        <tr style="background: #f5f3ef;"><td style="padding: 10px; font-weight: bold;">Contact:</td><td style="padding: 10px;">{{.Lead.ContactChannel}}</td></tr>
        <tr><td style="padding: 10px; font-weight: bold;">Email:</td><td style="padding: 10px;">{{.Lead.Email}}</td></tr>
        <tr style="background: #f5f3ef;"><td style="padding: 10px; font-weight: bold;">Interest:</td><td style="padding: 10px;">{{.Lead.InterestType}}</td></tr>
        <tr><td style="padding: 10px; font-weight: bold;">Budget:</td><td style="padding: 10px;">{{.Lead.Budget}}</td></tr>
        <tr style="background: #f5f3ef;"><td style="padding: 10px; font-weight: bold;">Postcode:</td><td style="padding: 10px;">{{.Lead.Postcode}}</td></tr>
        <tr><td style="padding: 10px; font-weight: bold;">Details:</td><td style="padding: 10px;">{{.Lead.Details}}</td></tr>
    </table>
    <hr style="border: 1px solid #c9a227;">
    <p style="color: #666; font-size: 12px;">Reference: {{.Ref}} · Captured at {{.CapturedAt}}</p>
</body>
</html>`))

func renderLeadHTML(ref string, l lead.Lead) (string, error) {
	var b strings.Builder
	err := leadMailTemplate.Execute(&b, struct {
		Ref        string
		Lead       lead.Lead
		CapturedAt string
	}{
		Ref:        ref,
		Lead:       l,
		CapturedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
