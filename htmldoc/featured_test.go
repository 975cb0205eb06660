package htmldoc

import "testing"

func TestIsFeatured(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		featured string
		want     bool
	}{
		{"identical", "https://x.com/a.png", "https://x.com/a.png", true},
		{"scheme ignored", "https://x.com/a.png", "http://x.com/a.png", true},
		{"query ignored", "https://x.com/a.png?w=10", "http://x.com/a.png", true},
		{"query on both", "x.com/a.png?w=10", "https://x.com/a.png?w=640&h=480", true},
		{"no scheme on url", "x.com/a.png", "https://x.com/a.png", true},
		{"different path", "https://x.com/b.png", "https://x.com/a.png", false},
		{"different host", "https://y.com/a.png", "https://x.com/a.png", false},
		{"empty featured", "https://x.com/a.png", "", false},
		{"both empty", "", "", false},
		{"fragment is significant", "https://x.com/a.png#top", "https://x.com/a.png", false},
		{"protocol-relative not stripped", "//x.com/a.png", "https://x.com/a.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFeatured(tt.url, tt.featured); got != tt.want {
				t.Errorf("IsFeatured(%q, %q) = %v, want %v", tt.url, tt.featured, got, tt.want)
			}
		})
	}
}
