package runner

import (
	"errors"
	"testing"
)

func TestOpenBestReadsStore(t *testing.T) {
	store := &memStore{best: 42, has: true}
	best, w := OpenBest(store, nil)
	defer w.Close()

	if best != 42 {
		t.Errorf("Expected best 42, got %d", best)
	}
	if w.Degraded() {
		t.Error("Healthy store should not degrade the writer")
	}
}

func TestOpenBestEmptyStore(t *testing.T) {
	best, w := OpenBest(&memStore{}, nil)
	defer w.Close()
	if best != 0 {
		t.Errorf("Empty store should read as 0, got %d", best)
	}
}

func TestOpenBestLoadFailure(t *testing.T) {
	store := &memStore{loadErr: errors.New("disk on fire")}
	best, w := OpenBest(store, nil)
	defer w.Close()

	if best != 0 {
		t.Errorf("Failed load should read as 0, got %d", best)
	}
	if !w.Degraded() {
		t.Error("Failed load should leave the writer in memory-only mode")
	}
	w.Submit(9)
	if len(store.saved()) != 0 {
		t.Error("Degraded writer should not touch the store")
	}
}

func TestBestWriterLatestWins(t *testing.T) {
	store := &memStore{gate: make(chan struct{})}
	w := NewBestWriter(store, nil)

	// The first save blocks on the gate, the rest queue behind it
	w.Submit(1)
	store.gate <- struct{}{}
	for i := 2; i <= 50; i++ {
		w.Submit(i)
	}
	close(store.gate)
	w.Close()

	saves := store.saved()
	if len(saves) == 0 || saves[len(saves)-1] != 50 {
		t.Fatalf("Last stored score should be 50, got %v", saves)
	}
	for i := 1; i < len(saves); i++ {
		if saves[i] <= saves[i-1] {
			t.Errorf("Stores out of order: %v", saves)
		}
	}
	if w.Written() != len(saves) {
		t.Errorf("Written() = %d, store saw %d", w.Written(), len(saves))
	}
}

func TestBestWriterDegradesOnFailure(t *testing.T) {
	store := &memStore{saveErr: errors.New("read-only")}
	w := NewBestWriter(store, nil)

	w.Submit(5)
	w.Close()

	if !w.Degraded() {
		t.Error("Writer should degrade after a failed save")
	}
	w.Submit(6)
	if w.Written() != 0 {
		t.Errorf("Nothing should be written, got %d", w.Written())
	}
}

func TestBestWriterSessionIntegration(t *testing.T) {
	store := &memStore{best: 2, has: true}
	best, w := OpenBest(store, nil)

	s := NewSession(quietConfig(), testViewport, Options{Seed: 1, Best: best, Sink: w})
	s.Start()
	s.score.current = 7
	s.RegisterHit()
	w.Close()

	if got := store.saved(); len(got) != 1 || got[0] != 7 {
		t.Errorf("Expected the new best 7 to be stored, got %v", got)
	}
	if s.Best() != 7 {
		t.Errorf("Session best should be 7, got %d", s.Best())
	}
}
