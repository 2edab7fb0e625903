package models

import "testing"

func TestTextResolve(t *testing.T) {
	tests := []struct {
		name   string
		text   Text
		locale string
		want   string
	}{
		{"english requested and present", Text{EN: "Bridge", AR: "جسر"}, "en", "Bridge"},
		{"arabic requested and present", Text{EN: "Bridge", AR: "جسر"}, "ar", "جسر"},
		{"arabic requested, falls back", Text{EN: "Bridge"}, "ar", "Bridge"},
		{"english requested, falls back", Text{AR: "جسر"}, "en", "جسر"},
		{"unknown locale behaves as english", Text{EN: "Bridge", AR: "جسر"}, "fr", "Bridge"},
		{"both empty", Text{}, "en", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.text.Resolve(tc.locale); got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.locale, got, tc.want)
			}
		})
	}
}

func TestTextEmpty(t *testing.T) {
	if !(Text{}).Empty() {
		t.Fatalf("zero Text must be empty")
	}
	if (Text{AR: "جسر"}).Empty() {
		t.Fatalf("half-filled Text must not be empty")
	}
}
