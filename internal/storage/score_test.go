package storage

import (
	"fmt"
	"testing"
	"time"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"42", 42},
		{" 7\n", 7},
		{"", 0},
		{"abc", 0},
		{"12.5", 0},
		{"-3", 0},
		{"0", 0},
	}
	for _, tt := range tests {
		if got := ParseScore(tt.raw); got != tt.want {
			t.Errorf("ParseScore(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	if best, ok, err := m.LoadBestScore(); best != 0 || ok || err != nil {
		t.Errorf("Empty store: got (%d, %v, %v)", best, ok, err)
	}

	m.SaveBestScore(10)
	m.SaveBestScore(4)
	if best, ok, _ := m.LoadBestScore(); best != 10 || !ok {
		t.Errorf("Expected (10, true), got (%d, %v)", best, ok)
	}
}

func TestGdataStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	g, err := OpenGdata(fmt.Sprintf("dinodash_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("App data directory unavailable: %v", err)
	}

	if best, ok, err := g.LoadBestScore(); err != nil || ok || best != 0 {
		t.Fatalf("Fresh store: got (%d, %v, %v)", best, ok, err)
	}
	if err := g.SaveBestScore(15); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	if best, ok, err := g.LoadBestScore(); err != nil || !ok || best != 15 {
		t.Errorf("Expected (15, true, nil), got (%d, %v, %v)", best, ok, err)
	}
}
