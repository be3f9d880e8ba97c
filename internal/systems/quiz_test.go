package systems

import (
	"math/rand"
	"testing"

	"github.com/WendellNunes/RogueLibras/internal/domain"
)

func TestQuizGateOptionsPlacement(t *testing.T) {
	content := map[domain.CardID]QuizContent{
		domain.CardFire: {Correct: "fire.mp4", Wrong: []string{"water.mp4", "rock.mp4"}},
	}
	gate := NewQuizGate(rand.New(rand.NewSource(7)), content)

	// Правильный ролик всегда на стороне, которую вернул StartQuestion
	for i := 0; i < 50; i++ {
		correctIsA := gate.StartQuestion(domain.CardFire)
		a, b := gate.Options()
		got := b
		if correctIsA {
			got = a
		}
		if got != "fire.mp4" {
			t.Fatalf("iteration %d: correct side holds %q", i, got)
		}
		if a == b {
			t.Fatal("both options must differ")
		}
	}
}

func TestQuizGateBothSidesOccur(t *testing.T) {
	gate := NewQuizGate(rand.New(rand.NewSource(1)), nil)

	seenA, seenB := false, false
	for i := 0; i < 100; i++ {
		if gate.StartQuestion(domain.CardApple) {
			seenA = true
		} else {
			seenB = true
		}
	}
	if !seenA || !seenB {
		t.Error("correct side must be randomized between A and B")
	}
}

func TestQuizGateWithoutContent(t *testing.T) {
	gate := NewQuizGate(rand.New(rand.NewSource(2)), nil)

	gate.StartQuestion(domain.CardBread)
	a, b := gate.Options()
	if a != "" || b != "" {
		t.Error("unconfigured card must produce empty options")
	}
	if !gate.Active() {
		t.Error("gate must be active after StartQuestion")
	}

	gate.StopQuestion()
	gate.StopQuestion() // повторная остановка безопасна
	if gate.Active() {
		t.Error("gate must be inactive after StopQuestion")
	}
	if gate.Card() != domain.CardNone {
		t.Error("stopped gate must not keep the card")
	}
}
