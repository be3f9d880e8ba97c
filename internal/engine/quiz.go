package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/internal/systems"
	"github.com/WendellNunes/RogueLibras/pkg/api"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

// startQuiz открывает вопрос по жесту. Любое использование карты проходит
// через него: бой, обмен валюты, еда в магазине, сумка в передышке.
func (s *GameService) startQuiz(card domain.CardID, mode quizMode, qty int, returnState domain.GameState) {
	s.quizMode = mode
	s.quizCard = card
	s.quizQty = qty
	s.quizReturn = returnState
	s.quizStarted = s.now()
	s.correctIsA = s.gate.StartQuestion(card)
	s.enterState(domain.StateQuiz)
}

// handleAnswer разрешает открытый вопрос. Ответ принимается ровно один раз:
// после первого ответа автомат уходит из Quiz, и повторы игнорируются.
func (s *GameService) handleAnswer(p api.AnswerPayload) error {
	if s.state != domain.StateQuiz {
		return nil
	}
	s.enterState(domain.StateQuizResolving)
	s.gate.StopQuestion()

	correct := (p.Option == "A") == s.correctIsA
	fast := s.now().Sub(s.quizStarted) <= s.cfg.FastAnswerWindow()
	card := s.quizCard
	qty := s.quizQty
	mode := s.quizMode
	returnState := s.quizReturn
	s.quizMode = quizNone
	s.quizCard = domain.CardNone

	if correct {
		s.audio.Cue(CueQuizCorrect)
	} else {
		s.audio.Cue(CueQuizWrong)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"card":      card.String(),
		"correct":   correct,
		"fast":      fast,
	}).Info("Quiz resolved.")

	switch mode {
	case quizBattle:
		s.resolveBattleQuiz(card, correct, fast)
	case quizShopCurrency:
		s.resolveCurrencyQuiz(card, qty, correct, returnState)
	case quizShopItem:
		s.resolveShopItemQuiz(card, qty, correct, returnState)
	case quizIntermissionUse:
		s.resolveIntermissionQuiz(card, qty, correct, fast)
	default:
		s.enterState(returnState)
	}
	return nil
}

// resolveBattleQuiz применяет карту в бою или отдает ход врагу.
func (s *GameService) resolveBattleQuiz(card domain.CardID, correct, fast bool) {
	s.enterState(domain.StateEnemyTurn)

	if !correct {
		s.banner = "Errado!"
		s.missArmed = false
		s.scheduleEnemyAttack()
		return
	}

	s.banner = "Correto!"
	// Быстрый верный ответ взводит шанс промаха следующей атаки врага.
	s.missArmed = fast

	consumed := s.inventory.Consume(card, 1)
	if !consumed && s.cfg.EnforceInventory() {
		s.banner = fmt.Sprintf("Sem %s", card.Name())
		s.scheduleEnemyAttack()
		return
	}

	s.audio.Cue(CueCardUse)
	s.applyBattleCard(card)

	// Применение могло закончить бой: побег, победа, передышка.
	if s.state != domain.StateEnemyTurn {
		return
	}
	if s.enemyTracked && s.enemy != nil && s.enemy.HP > 0 {
		s.scheduleEnemyAttack()
	} else {
		s.endTurn()
	}
}

// applyBattleCard применяет эффект карты в бою.
func (s *GameService) applyBattleCard(card domain.CardID) {
	switch {
	case card.IsAttack():
		s.dealDamageToEnemy(s.tables.Damage[card])
	case card.IsHeal():
		systems.HealPlayer(&s.player, s.tables.Heal[card])
	case card == domain.CardEscape:
		// Побег закрывает бой без счета и добычи.
		s.enterIntermission()
	}
}

// resolveCurrencyQuiz обменивает валютные карты на деньги.
// Неверный ответ карты не сжигает: обмен просто не происходит.
func (s *GameService) resolveCurrencyQuiz(card domain.CardID, qty int, correct bool, returnState domain.GameState) {
	s.missArmed = false
	if !correct {
		s.enterState(returnState)
		s.banner = "Errado!"
		return
	}

	if !s.inventory.Consume(card, qty) && s.cfg.EnforceInventory() {
		s.enterState(returnState)
		s.banner = fmt.Sprintf("Sem %s", card.Name())
		return
	}
	amount := s.tables.Exchange[card] * qty
	s.player.AddMoney(amount)
	s.audio.Cue(CueCardUse)

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"card":      card.String(),
		"qty":       qty,
		"amount":    amount,
	}).Info("Currency exchanged.")

	s.enterState(returnState)
	s.banner = "Correto!"
}

// resolveShopItemQuiz применяет еду прямо в магазине.
// Неверный ответ карты не сжигает.
func (s *GameService) resolveShopItemQuiz(card domain.CardID, qty int, correct bool, returnState domain.GameState) {
	s.missArmed = false
	if !correct {
		s.enterState(returnState)
		s.banner = "Errado!"
		return
	}

	if !s.inventory.Consume(card, qty) && s.cfg.EnforceInventory() {
		s.enterState(returnState)
		s.banner = fmt.Sprintf("Sem %s", card.Name())
		return
	}
	for i := 0; i < qty; i++ {
		systems.HealPlayer(&s.player, s.tables.Heal[card])
	}
	s.audio.Cue(CueCardUse)
	s.enterState(returnState)
	s.banner = "Correto!"
}

// resolveIntermissionQuiz применяет карту из сумки в передышке.
// Здесь неверный ответ сжигает карты: риск заложен в использование
// вне магазина.
func (s *GameService) resolveIntermissionQuiz(card domain.CardID, qty int, correct, fast bool) {
	if !correct {
		s.inventory.Consume(card, qty)
		s.enterState(domain.StateIntermission)
		s.banner = "Errado!"
		return
	}

	s.missArmed = fast
	if !s.inventory.Consume(card, qty) && s.cfg.EnforceInventory() {
		s.enterState(domain.StateIntermission)
		s.banner = fmt.Sprintf("Sem %s", card.Name())
		return
	}
	if card.IsCurrency() {
		s.player.AddMoney(s.tables.Exchange[card] * qty)
	} else {
		for i := 0; i < qty; i++ {
			systems.HealPlayer(&s.player, s.tables.Heal[card])
		}
	}
	s.audio.Cue(CueCardUse)
	s.enterState(domain.StateIntermission)
	s.banner = "Correto!"
}
