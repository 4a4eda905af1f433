package content

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Opening Hours", "opening-hours"},
		{"About Us!", "about-us"},
		{"FAQ -- Parties & Events", "faq-parties-events"},
		{"  padded  ", "padded"},
		{"!!!", ""},
		{"Already-Slugged", "already-slugged"},
	}

	for _, tt := range tests {
		if got := generateSlug(tt.title); got != tt.want {
			t.Errorf("generateSlug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
