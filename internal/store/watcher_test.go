package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatcher_ReloadsOnExternalWrite(t *testing.T) {
	s, dir := newTestStore(t)

	w, err := Watch(s, zap.NewNop())
	if err != nil {
		t.Fatalf("starting watcher: %v", err)
	}
	defer w.Close()

	doc := `{"snacks": [{"id": "punugulu", "name": "పునుగులు", "english_name": "Punugulu",
		"ingredients": ["మినపపప్పు"], "cooking_time": "20 నిమిషాలు", "difficulty": "సులభం",
		"servings": "4", "description": "", "instructions": ["వేయించండి"]}]}`
	if err := os.WriteFile(filepath.Join(dir, RecipesFile), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		if s.Stats().Recipes == 1 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("store did not reload, still %d recipes", s.Stats().Recipes)
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	s, dir := newTestStore(t)
	before := s.Stats()

	w, err := Watch(s, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(150 * time.Millisecond)

	if got := s.Stats(); got != before {
		t.Errorf("unrelated file changed the store: %+v -> %+v", before, got)
	}
}
