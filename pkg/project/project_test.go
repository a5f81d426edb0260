package project

import "testing"

func TestValidate(t *testing.T) {
	p := Project{Name: "Work", Icon: "briefcase", Color: "#1677ff"}
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid project: %v", err)
	}
}

func TestValidateRejectsBadFields(t *testing.T) {
	if err := (Project{Name: "  "}).Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := (Project{Name: "Work", Icon: "dragon"}).Validate(); err == nil {
		t.Fatalf("expected error for unknown icon")
	}
	if err := (Project{Name: "Work", Color: "blue"}).Validate(); err == nil {
		t.Fatalf("expected error for malformed color")
	}
	if err := (Project{Name: "Work", Color: "#12345"}).Validate(); err == nil {
		t.Fatalf("expected error for short color")
	}
}

func TestValidIcon(t *testing.T) {
	if !ValidIcon("rocket") {
		t.Fatalf("rocket should be a known icon")
	}
	if ValidIcon("spaceship") {
		t.Fatalf("spaceship should not be a known icon")
	}
}
