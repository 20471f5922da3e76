package extractors

import "testing"

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"plain", "plain"},
		{"  leading and trailing  ", "leading and trailing"},
		{"tabs\tand\nnewlines\r\neverywhere", "tabs and newlines everywhere"},
		{"many     spaces", "many spaces"},
	}
	for _, tt := range tests {
		if got := collapseWhitespace(tt.in); got != tt.want {
			t.Errorf("collapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeepLink(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"", false},
		{"#", false},
		{"#section-2", false},
		{"javascript:void(0)", false},
		{"JavaScript:alert(1)", false},
		{"/about", true},
		{"https://example.com/page", true},
		{"mailto:team@example.com", true},
		{"../relative", true},
	}
	for _, tt := range tests {
		if got := keepLink(tt.href); got != tt.want {
			t.Errorf("keepLink(%q) = %v, want %v", tt.href, got, tt.want)
		}
	}
}
