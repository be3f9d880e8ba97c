package systems

import (
	"testing"
	"time"
)

func TestSessionTimeFormat(t *testing.T) {
	cur := time.Unix(1000, 0)
	s := NewRunSession(func() time.Time { return cur })

	s.StartRun()
	cur = cur.Add(83 * time.Second)

	if got := s.FormattedTime(); got != "01:23" {
		t.Errorf("FormattedTime = %q, want 01:23", got)
	}
}

func TestSessionStopFreezesTime(t *testing.T) {
	cur := time.Unix(1000, 0)
	s := NewRunSession(func() time.Time { return cur })

	s.StartRun()
	cur = cur.Add(10 * time.Second)
	s.StopRun()
	cur = cur.Add(1 * time.Hour)

	if s.Elapsed() != 10*time.Second {
		t.Errorf("elapsed = %v, want 10s", s.Elapsed())
	}
	// Повторная остановка не двигает замороженное время
	s.StopRun()
	if s.Elapsed() != 10*time.Second {
		t.Errorf("second stop changed elapsed: %v", s.Elapsed())
	}
}

func TestSessionRestartResetsScore(t *testing.T) {
	cur := time.Unix(1000, 0)
	s := NewRunSession(func() time.Time { return cur })

	s.StartRun()
	s.AddScore(30)
	s.AddScore(70)
	if s.Score() != 100 {
		t.Fatalf("score = %d, want 100", s.Score())
	}

	s.StartRun()
	if s.Score() != 0 {
		t.Errorf("restart must zero the score, got %d", s.Score())
	}
}
