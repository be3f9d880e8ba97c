package engine

import (
	"testing"

	"github.com/WendellNunes/RogueLibras/internal/config"
	"github.com/WendellNunes/RogueLibras/internal/domain"
)

// Записанный забег при том же сиде воспроизводится в то же состояние.
func TestReplayReproducesRun(t *testing.T) {
	s := newTestService(t)

	trackEnemy(t, s, "GOBLIN")
	playCard(t, s, "FIRE")
	playCard(t, s, "WATER")
	playCard(t, s, "THUNDER")
	playCard(t, s, "FIRE")

	if s.State() != domain.StateIntermission {
		t.Fatalf("state = %v, want Intermission", s.State())
	}
	session := s.ReplaySnapshot()
	if len(session.Actions) == 0 {
		t.Fatal("run must be recorded")
	}

	cfg := config.Default()
	cfg.Tracking.DebounceSeconds = 0
	cfg.Battle.EnemyAttackDelaySeconds = 0
	cfg.Battle.MissChanceIfFast = 0
	cfg.UI.ButtonDelaySeconds = 0

	rep, err := NewService(cfg, session.Seed)
	if err != nil {
		t.Fatal(err)
	}
	rep.SetImmediate()
	rep.SetRecording(false)

	for _, act := range session.Actions {
		rep.Apply(act.InternalCommand())
	}

	if rep.State() != s.State() {
		t.Errorf("state = %v, want %v", rep.State(), s.State())
	}
	if rep.player != s.player {
		t.Errorf("player = %+v, want %+v", rep.player, s.player)
	}
	if rep.session.Score() != s.session.Score() {
		t.Errorf("score = %d, want %d", rep.session.Score(), s.session.Score())
	}
	for _, card := range domain.AllCards {
		if got, want := rep.inventory.Count(card), s.inventory.Count(card); got != want {
			t.Errorf("%s = %d, want %d", card, got, want)
		}
	}
}

// Воспроизведение с записью выключено: снятый реплей пуст.
func TestReplayModeDoesNotRecord(t *testing.T) {
	s := newTestService(t)
	s.SetRecording(false)

	trackEnemy(t, s, "GOBLIN")
	apply(t, s, domain.ActionAttack, nil)

	if got := len(s.ReplaySnapshot().Actions); got != 0 {
		t.Errorf("recorded %d actions, want 0", got)
	}
}
