package regexengine

import "testing"

func TestLuhnCheck(t *testing.T) {
	tests := []struct {
		name  string
		match string
		want  bool
	}{
		{"valid visa", "4532015112830366", true},
		{"invalid checksum", "4532015112830367", false},
		{"too short", "123456789012", false},
		{"with separators", "4532-0151-1283-0366", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := luhnCheck(tt.match); got != tt.want {
				t.Errorf("luhnCheck(%q) = %v, want %v", tt.match, got, tt.want)
			}
		})
	}
}

func TestAadhaarCheck(t *testing.T) {
	tests := []struct {
		name  string
		match string
		want  bool
	}{
		{"valid", "234567890123", true},
		{"starts with 0", "034567890123", false},
		{"starts with 1", "134567890123", false},
		{"wrong length", "2345678901", false},
		{"with separators", "2345 6789 0123", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := aadhaarCheck(tt.match); got != tt.want {
				t.Errorf("aadhaarCheck(%q) = %v, want %v", tt.match, got, tt.want)
			}
		})
	}
}

func TestPanCheck(t *testing.T) {
	tests := []struct {
		name  string
		match string
		want  bool
	}{
		{"valid fourth char A", "AAAAA1234A", true},
		{"valid fourth char P", "ABCPA1234Z", true},
		{"invalid fourth char", "ABCDE1234Z", false},
		{"wrong length", "ABCPA1234", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := panCheck(tt.match); got != tt.want {
				t.Errorf("panCheck(%q) = %v, want %v", tt.match, got, tt.want)
			}
		})
	}
}

func TestSSNCheck(t *testing.T) {
	tests := []struct {
		name  string
		match string
		want  bool
	}{
		{"valid", "456-78-9012", true},
		{"area 000", "000-78-9012", false},
		{"area 666", "666-78-9012", false},
		{"area 9xx", "912-78-9012", false},
		{"group 00", "456-00-9012", false},
		{"serial 0000", "456-78-0000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ssnCheck(tt.match); got != tt.want {
				t.Errorf("ssnCheck(%q) = %v, want %v", tt.match, got, tt.want)
			}
		})
	}
}

func TestHighEntropy(t *testing.T) {
	if highEntropy("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa") {
		t.Error("expected low-entropy repeated string to fail")
	}
	if !highEntropy("wJalrXUtnFEMI/K7MDENG/bPxRfiCYEXAMPLEKEY") {
		t.Error("expected high-entropy random-looking string to pass")
	}
	if highEntropy("short") {
		t.Error("expected <8 char string to fail regardless of entropy")
	}
}
