package util

import "testing"

func TestHashKey(t *testing.T) {
	got := HashKey("Owner@Example.com ")
	if got != HashKey("owner@example.com") {
		t.Fatalf("expected case and space insensitive hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"La Esquina":          "la-esquina",
		"  Café & Panadería ": "cafe-panaderia",
		"../../etc/passwd":    "etc-passwd",
		"Taller_Sur 2":        "taller-sur-2",
		"北京":                  "",
		"":                    "",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
