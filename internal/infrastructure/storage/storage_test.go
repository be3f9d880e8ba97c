package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/WendellNunes/RogueLibras/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	svc := NewReplayService(t.TempDir())

	session := &domain.ReplaySession{
		Seed:      42,
		Timestamp: 1757000000,
		Actions: []domain.ReplayAction{
			{Tick: 1, Action: domain.ActionInit, Payload: json.RawMessage{}},
			{Tick: 2, Action: domain.ActionTrackEnemy, Payload: json.RawMessage(`{"enemyId":"GOBLIN"}`)},
			{Tick: 3, Action: domain.ActionAttack, Payload: json.RawMessage{}},
			{Tick: 4, Action: domain.ActionTrackCard, Payload: json.RawMessage(`{"cardId":"FIRE"}`)},
			{Tick: 5, Action: domain.ActionAnswer, Payload: json.RawMessage(`{"option":"A"}`)},
		},
	}

	path, err := svc.Save(session)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "run_42_1757000000.rlrp" {
		t.Errorf("file name = %q", filepath.Base(path))
	}

	loaded, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Seed != session.Seed || loaded.Timestamp != session.Timestamp {
		t.Errorf("header = (%d,%d), want (%d,%d)",
			loaded.Seed, loaded.Timestamp, session.Seed, session.Timestamp)
	}
	if len(loaded.Actions) != len(session.Actions) {
		t.Fatalf("actions = %d, want %d", len(loaded.Actions), len(session.Actions))
	}
	for i, act := range loaded.Actions {
		want := session.Actions[i]
		if act.Tick != want.Tick || act.Action != want.Action {
			t.Errorf("action %d = (%d,%v), want (%d,%v)", i, act.Tick, act.Action, want.Tick, want.Action)
		}
		if string(act.Payload) != string(want.Payload) {
			t.Errorf("action %d payload = %q, want %q", i, act.Payload, want.Payload)
		}
	}
}

func TestLoadRejectsForeignFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bogus.rlrp")
	if err := os.WriteFile(path, []byte("NOPE\x01\x00\x00\x00"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewReplayService(dir)
	if _, err := svc.Load(path); err == nil {
		t.Error("want error for invalid magic")
	}
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	svc := NewReplayService(t.TempDir())

	session := &domain.ReplaySession{Seed: 1, Timestamp: 2}
	path, err := svc.Save(session)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data[4] = 99 // портим версию в заголовке
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Load(path); err == nil {
		t.Error("want error for unsupported version")
	}
}
