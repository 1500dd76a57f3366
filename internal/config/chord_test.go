package config

import "testing"

func TestParseChord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"q", "q"},
		{"Q", "Q"},
		{"shift+q", "Q"},
		{"ctrl+K", "ctrl+k"},
		{"Control+k", "ctrl+k"},
		{"alt+x", "alt+x"},
		{"alt+ctrl+x", "alt+ctrl+x"},
		{"enter", "enter"},
		{"Return", "enter"},
		{"escape", "esc"},
		{"space", " "},
		{" ", " "},
		{"shift+tab", "shift+tab"},
		{"ctrl+up", "ctrl+up"},
		{"ctrl+shift+down", "ctrl+shift+down"},
		{"alt+enter", "alt+enter"},
		{"PageDown", "pgdown"},
		{"f5", "f5"},
		{"+", "+"},
		{"alt++", "alt++"},
		{"?", "?"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChord(tt.in)
			if err != nil {
				t.Fatalf("ParseChord(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseChord(%q): got %q want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseChord_Errors(t *testing.T) {
	for _, in := range []string{"", "hyper+a", "ctrl+", "f13", "ctrl+1", "ctrl+shift+a", "enterr"} {
		if got, err := ParseChord(in); err == nil {
			t.Fatalf("ParseChord(%q): expected error, got %q", in, got)
		}
	}
}

func TestDisplayChord(t *testing.T) {
	if got := DisplayChord(" "); got != "space" {
		t.Fatalf("got %q", got)
	}
	if got := DisplayChord("ctrl+k"); got != "ctrl+k" {
		t.Fatalf("got %q", got)
	}
}
