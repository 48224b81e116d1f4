package notify

import (
	"context"
	"strings"
	"testing"

	"github.com/oakfield/london-property-agent/backend/internal/config"
	"github.com/oakfield/london-property-agent/backend/internal/model/lead"
)

func TestNotifySkipsWhenUnconfigured(t *testing.T) {
	mailer := NewMailer(config.SMTPConfig{Host: "smtp.example.com", Port: 587})

	err := mailer.Notify(context.Background(), "ref-1", lead.Lead{Name: "Jane"})
	if err != nil {
		t.Fatalf("expected silent skip, got %v", err)
	}
}

func TestRenderLeadHTMLEscapesValues(t *testing.T) {
	body, err := renderLeadHTML("ref-2", lead.Lead{
		Name:    "<script>alert(1)</script>",
		Email:   "jane@x.com",
		Budget:  "£500k",
		Details: "likes Canary Wharf & Shoreditch",
	})
	if err != nil {
		t.Fatalf("renderLeadHTML err: %v", err)
	}

	if strings.Contains(body, "<script>") {
		t.Fatal("lead values must be HTML-escaped")
	}
	if !strings.Contains(body, "jane@x.com") {
		t.Fatal("body missing email")
	}
	if !strings.Contains(body, "£500k") {
		t.Fatal("body missing budget")
	}
	if !strings.Contains(body, "ref-2") {
		t.Fatal("body missing lead reference")
	}
}

func TestSubjectForUppercasesInterest(t *testing.T) {
	if got := subjectFor(lead.Lead{InterestType: "buy"}); !strings.Contains(got, "BUY") {
		t.Fatalf("unexpected subject: %q", got)
	}
	if got := subjectFor(lead.Lead{}); !strings.Contains(got, "N/A") {
		t.Fatalf("unexpected subject for empty interest: %q", got)
	}
}
