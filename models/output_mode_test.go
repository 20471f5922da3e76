package models

import "testing"

func TestParseOutputMode(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputMode
		wantErr bool
	}{
		{"json", OutputJSON, false},
		{"text", OutputText, false},
		{"all", OutputAll, false},
		{"", OutputJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
