package service

import "testing"

func TestNormalizeUploadScene(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"invoice", "invoice"},
		{" Product ", "product"},
		{"", "common"},
		{"banner", "common"},
	}
	for _, tc := range cases {
		if got := normalizeUploadScene(tc.input); got != tc.want {
			t.Fatalf("scene %q: want %q got %q", tc.input, tc.want, got)
		}
	}
}

func TestIsAllowedExtension(t *testing.T) {
	allowed := []string{".pdf", "jpg", " PNG "}

	if !isAllowedExtension(".pdf", allowed) {
		t.Fatal(".pdf should be allowed")
	}
	if !isAllowedExtension(".jpg", allowed) {
		t.Fatal("dotless config entries should still match")
	}
	if !isAllowedExtension(".png", allowed) {
		t.Fatal("matching is case and whitespace insensitive")
	}
	if isAllowedExtension(".exe", allowed) {
		t.Fatal(".exe should not be allowed")
	}
	if isAllowedExtension("", allowed) {
		t.Fatal("empty extension should not be allowed")
	}
}
