package lead_test

import (
	"strings"
	"testing"

	leadmodel "github.com/oakfield/london-property-agent/backend/internal/model/lead"
	leadsvc "github.com/oakfield/london-property-agent/backend/internal/service/lead"
)

func TestValidEmail(t *testing.T) {
	if !leadsvc.ValidEmail("a@b.co") {
		t.Fatal("a@b.co should be valid")
	}
	if leadsvc.ValidEmail("a@b") {
		t.Fatal("a@b should be invalid")
	}
	if leadsvc.ValidEmail("not-an-email") {
		t.Fatal("not-an-email should be invalid")
	}
	if leadsvc.ValidEmail("") {
		t.Fatal("empty string should be invalid")
	}
}

func TestValidUKPostcode(t *testing.T) {
	for _, valid := range []string{"SW1A 1AA", "sw1a1aa", "E14 5AB", "W1K 7AA", "EC1A 1BB", "  SW1A 1AA  "} {
		if !leadsvc.ValidUKPostcode(valid) {
			t.Fatalf("%q should be valid", valid)
		}
	}
	for _, invalid := range []string{"12345", "SW1A", "", "ABCDEFG"} {
		if leadsvc.ValidUKPostcode(invalid) {
			t.Fatalf("%q should be invalid", invalid)
		}
	}
}

func TestValidateAllFieldsPass(t *testing.T) {
	v := leadsvc.Validate(leadmodel.Lead{Email: "jane@x.com", Postcode: "sw1a 1aa"})
	if !v.OK() {
		t.Fatalf("expected valid lead, reasons: %v", v.Reasons)
	}
	if len(v.Reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", v.Reasons)
	}
}

func TestValidateReasonsOrderedAndNamed(t *testing.T) {
	v := leadsvc.Validate(leadmodel.Lead{Email: "bad-email", Postcode: "12345"})
	if v.OK() {
		t.Fatal("expected invalid lead")
	}
	if v.EmailValid || v.PostcodeValid {
		t.Fatalf("expected both flags false, got email=%v postcode=%v", v.EmailValid, v.PostcodeValid)
	}
	if len(v.Reasons) != 2 {
		t.Fatalf("expected two reasons, got %v", v.Reasons)
	}
	if !strings.Contains(v.Reasons[0], "email") || !strings.Contains(v.Reasons[0], "bad-email") {
		t.Fatalf("first reason should name the email and its value: %q", v.Reasons[0])
	}
	if !strings.Contains(v.Reasons[1], "postcode") || !strings.Contains(v.Reasons[1], "12345") {
		t.Fatalf("second reason should name the postcode and its value: %q", v.Reasons[1])
	}
}

func TestValidateOnlyEmailFails(t *testing.T) {
	v := leadsvc.Validate(leadmodel.Lead{Email: "bad-email", Postcode: "SW1A 1AA"})
	if v.EmailValid {
		t.Fatal("expected email flag false")
	}
	if !v.PostcodeValid {
		t.Fatal("expected postcode flag true")
	}
	if len(v.Reasons) != 1 {
		t.Fatalf("expected one reason, got %v", v.Reasons)
	}
}
