package systems

import (
	"fmt"
	"time"
)

// RunSession считает время и счет текущего забега.
// Часы инъецируются ради детерминированных тестов и реплеев.
type RunSession struct {
	now     func() time.Time
	started time.Time
	frozen  time.Duration
	running bool
	score   int
}

// NewRunSession создает сессию с данными часами. nil означает time.Now.
func NewRunSession(now func() time.Time) *RunSession {
	if now == nil {
		now = time.Now
	}
	return &RunSession{now: now}
}

// StartRun запускает отсчет нового забега, сбрасывая счет и время.
func (s *RunSession) StartRun() {
	s.started = s.now()
	s.frozen = 0
	s.running = true
	s.score = 0
}

// StopRun замораживает время забега. Повторные вызовы безопасны.
func (s *RunSession) StopRun() {
	if !s.running {
		return
	}
	s.frozen = s.now().Sub(s.started)
	s.running = false
}

// AddScore начисляет очки.
func (s *RunSession) AddScore(points int) {
	s.score += points
}

// Score возвращает текущий счет.
func (s *RunSession) Score() int {
	return s.score
}

// Elapsed возвращает прошедшее время забега.
func (s *RunSession) Elapsed() time.Duration {
	if s.running {
		return s.now().Sub(s.started)
	}
	return s.frozen
}

// FormattedTime возвращает время забега в формате MM:SS.
func (s *RunSession) FormattedTime() string {
	total := int(s.Elapsed().Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
