package team

import "testing"

func TestExpand(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"CAN", "Canada"},
		{"CZE", "Czechia"},
		{"USA", "United States"},
		{"sui", "Switzerland"},
		{" FIN ", "Finland"},
		{"XXX", "XXX"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Expand(tt.code); got != tt.expected {
				t.Errorf("Expand(%q) = %q, expected %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Czech Republic", "Czechia"},
		{"czechia", "Czechia"},
		{"USA", "United States"},
		{"us", "United States"},
		{"United States of America", "United States"},
		{"CZE", "Czechia"},
		{"sweden", "Sweden"},
		{"Korea", "South Korea"},
		{"united kingdom", "Great Britain"},
		{"  Finland  ", "Finland"},
		{"Atlantis", "Atlantis"},
		{"TBD", "TBD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.name); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode("CAN") {
		t.Error("expected CAN to be a known code")
	}
	if IsCode("QQQ") {
		t.Error("expected QQQ to be unknown")
	}
	if IsCode("vs") {
		t.Error("expected 'vs' to be unknown")
	}
}
