package qr

import (
	"bytes"
	"testing"
)

func TestItemURL(t *testing.T) {
	tests := []struct {
		base string
		id   int64
		want string
	}{
		{"https://findly.example.com", 42, "https://findly.example.com/?item=42"},
		{"https://findly.example.com/", 42, "https://findly.example.com/?item=42"},
		{"http://localhost:8080", 1715342400000, "http://localhost:8080/?item=1715342400000"},
	}
	for _, tt := range tests {
		if got := ItemURL(tt.base, tt.id); got != tt.want {
			t.Errorf("ItemURL(%q, %d) = %q, want %q", tt.base, tt.id, got, tt.want)
		}
	}
}

func TestItemPNG(t *testing.T) {
	data, err := ItemPNG("https://findly.example.com", 42, 0)
	if err != nil {
		t.Fatalf("ItemPNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
}
