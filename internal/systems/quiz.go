package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

// QuizContent - сконфигурированные ролики жеста для одной карты.
type QuizContent struct {
	Correct string
	Wrong   []string
}

// QuizGate - воротa викторины: каждое действие с картой проходит через
// вопрос "какой из двух жестов соответствует карте". Правильная сторона
// выбирается случайно при каждом вопросе.
type QuizGate struct {
	rng     *rand.Rand
	content map[domain.CardID]QuizContent

	active     bool
	card       domain.CardID
	optionA    string
	optionB    string
	correctIsA bool
}

// NewQuizGate создает ворота с данным генератором и контентом.
// Контент может быть пустым: тогда вопрос задается без роликов.
func NewQuizGate(rng *rand.Rand, content map[domain.CardID]QuizContent) *QuizGate {
	if content == nil {
		content = make(map[domain.CardID]QuizContent)
	}
	return &QuizGate{rng: rng, content: content}
}

// StartQuestion открывает вопрос для карты и возвращает, какая сторона верная.
func (g *QuizGate) StartQuestion(card domain.CardID) bool {
	g.active = true
	g.card = card
	g.correctIsA = g.rng.Intn(2) == 0
	g.optionA, g.optionB = "", ""

	if c, ok := g.content[card]; ok && c.Correct != "" && len(c.Wrong) > 0 {
		wrong := c.Wrong[g.rng.Intn(len(c.Wrong))]
		if g.correctIsA {
			g.optionA, g.optionB = c.Correct, wrong
		} else {
			g.optionA, g.optionB = wrong, c.Correct
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "quiz_gate",
		"card":      card.String(),
	}).Debug("Question started.")

	return g.correctIsA
}

// StopQuestion закрывает вопрос. Повторные вызовы безопасны.
func (g *QuizGate) StopQuestion() {
	g.active = false
	g.card = domain.CardNone
	g.optionA, g.optionB = "", ""
}

// Active сообщает, открыт ли вопрос.
func (g *QuizGate) Active() bool {
	return g.active
}

// Card возвращает карту открытого вопроса.
func (g *QuizGate) Card() domain.CardID {
	return g.card
}

// Options возвращает ролики вариантов A и B открытого вопроса.
func (g *QuizGate) Options() (string, string) {
	return g.optionA, g.optionB
}
