package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/internal/systems"
	"github.com/WendellNunes/RogueLibras/pkg/api"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

// canAcceptEnemyTracking - ворота трекинга маркера врага.
// Во время вопроса, хода врага, магазина и финальных экранов
// события трекинга игнорируются.
func (s *GameService) canAcceptEnemyTracking() bool {
	switch s.state {
	case domain.StateAwaitEnemyTracking, domain.StateBattleReady,
		domain.StateAwaitActionTracking, domain.StateCardReady:
		return true
	}
	return false
}

// handleTrackEnemy - AR-камера увидела маркер врага.
func (s *GameService) handleTrackEnemy(p api.EnemyPayload) error {
	if !s.canAcceptEnemyTracking() {
		return nil
	}

	now := s.now()
	if now.Sub(s.lastEnemyTrack) < s.cfg.TrackDebounce() {
		return nil
	}
	s.lastEnemyTrack = now

	id := domain.ParseEnemy(p.EnemyID)
	if id == domain.EnemyNone {
		return fmt.Errorf("unknown enemy %q", p.EnemyID)
	}

	// Пока враг удерживается, другие маркеры бой не переключают.
	if s.enemyLocked && s.enemy != nil && s.enemy.ID != id {
		return nil
	}
	if s.enemyTracked && s.enemy != nil && s.enemy.ID == id {
		return nil
	}

	// Каждый захват начинает бой заново: полные HP, чистые флаги хода.
	s.enemy = domain.NewEnemy(id, s.tables.Enemies[id])
	s.enemyTracked = true
	s.enemyLocked = s.cfg.LockEnemy()
	s.clearTurnTransients()
	s.missArmed = false
	s.attackTimer.Cancel()
	s.attackTimer = nil

	s.audio.Cue(CueEnemyAppear)
	if id.IsBoss() {
		s.audio.Cue(CueBossSequence)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"enemy":     id.String(),
		"hp":        s.enemy.HP,
	}).Info("Enemy engaged.")

	s.enterState(domain.StateBattleReady)
	s.banner = s.enemy.ID.Name()
	return nil
}

// handleEnemyLost - маркер врага пропал из кадра.
// Если враг удерживается до конца боя, событие игнорируется.
func (s *GameService) handleEnemyLost() error {
	if s.enemyLocked {
		return nil
	}
	if !s.enemyTracked {
		return nil
	}
	s.enemyTracked = false
	s.enemy = nil
	s.clearTurnTransients()

	if s.canAcceptEnemyTracking() {
		s.enterState(domain.StateAwaitEnemyTracking)
	}
	return nil
}

// canAcceptCardTracking - ворота трекинга карты. В бою карты принимаются
// только после нажатия "Атака", вне боя - в передышке и магазине.
func (s *GameService) canAcceptCardTracking() bool {
	if s.state.OutOfBattle() {
		return true
	}
	return s.state == domain.StateAwaitActionTracking || s.state == domain.StateCardReady
}

// handleTrackCard - AR-камера увидела карту.
// Вне боя карта открывает режим использования из сумки,
// в бою - заряжает карту для хода.
func (s *GameService) handleTrackCard(p api.CardPayload) error {
	// Ворота раньше дебаунса: событие в чужом состоянии не должно
	// сдвигать окно и глотать первое валидное событие после себя.
	if !s.canAcceptCardTracking() {
		return nil
	}

	now := s.now()
	if now.Sub(s.lastCardTrack) < s.cfg.TrackDebounce() {
		return nil
	}
	s.lastCardTrack = now

	card := domain.ParseCard(p.CardID)
	if card == domain.CardNone {
		return fmt.Errorf("unknown card %q", p.CardID)
	}

	if s.state.OutOfBattle() {
		return s.trackCardOutOfBattle(card)
	}

	if !card.IsBattleUsable() {
		s.banner = "Inválido"
		return nil
	}
	if s.cfg.EnforceInventory() && s.inventory.Count(card) == 0 {
		s.banner = fmt.Sprintf("Sem %s", card.Name())
		return nil
	}

	// Последняя показанная карта побеждает.
	s.armedCard = card
	s.cardTracked = true
	s.audio.Cue(CueCardAppear)
	s.enterState(domain.StateCardReady)
	s.banner = card.Name()
	return nil
}

// trackCardOutOfBattle открывает режим использования карты в передышке
// или магазине. Пока открыта корзина, трекинг карт не принимается.
func (s *GameService) trackCardOutOfBattle(card domain.CardID) error {
	if !s.shop.CanAcceptUseTracking() {
		return nil
	}
	if !card.IsIntermissionUsable() {
		s.banner = "Inválido"
		return nil
	}
	have := s.inventory.Count(card)
	if s.cfg.EnforceInventory() && have == 0 {
		s.banner = fmt.Sprintf("Sem %s", card.Name())
		return nil
	}

	s.shop.BeginUse(card, have)
	s.audio.Cue(CueCardAppear)
	s.banner = fmt.Sprintf("%s x1", card.Name())
	return nil
}

// handleCardLost - карта пропала из кадра.
func (s *GameService) handleCardLost() error {
	if s.state.OutOfBattle() {
		s.shop.CancelUse()
		return nil
	}
	if s.state != domain.StateCardReady {
		return nil
	}
	s.cardTracked = false
	s.armedCard = domain.CardNone
	s.enterState(domain.StateAwaitActionTracking)
	return nil
}

// handleAttack - кнопка "Атака": открывает окно трекинга карты.
func (s *GameService) handleAttack() error {
	s.delayedButton(func() {
		if s.state != domain.StateBattleReady {
			return
		}
		if !s.enemyTracked {
			s.enterState(domain.StateAwaitEnemyTracking)
			return
		}
		s.attackPressed = true
		s.cardTracked = false
		s.armedCard = domain.CardNone
		s.attackTimer.Cancel()
		s.attackTimer = nil
		s.enterState(domain.StateAwaitActionTracking)
	})
	return nil
}

// handlePass - кнопка "Пас": игрок пропускает ход, враг бьет в ответ.
func (s *GameService) handlePass() error {
	s.delayedButton(func() {
		switch s.state {
		case domain.StateBattleReady, domain.StateAwaitActionTracking, domain.StateCardReady:
		default:
			return
		}
		if !s.enemyTracked {
			return
		}
		s.clearTurnTransients()
		s.enterState(domain.StateEnemyTurn)
		s.scheduleEnemyAttack()
	})
	return nil
}

// handleUse - кнопка "Использовать": заряженная карта уходит в вопрос.
func (s *GameService) handleUse() error {
	s.delayedButton(func() {
		if s.state != domain.StateCardReady || !s.cardTracked || !s.enemyTracked {
			return
		}
		s.startQuiz(s.armedCard, quizBattle, 1, domain.StateBattleReady)
	})
	return nil
}

// handleChallenge - кнопка "Desafio": игрок бросает текущую передышку
// и возвращается к поиску врага. Резерв корзины возвращается в кошелек.
func (s *GameService) handleChallenge() error {
	s.delayedButton(func() {
		switch s.state {
		case domain.StateQuiz, domain.StateQuizResolving,
			domain.StateVictory, domain.StateGameOver:
			return
		}
		if refund := s.shop.CancelCart(); refund > 0 {
			logger.Log.WithFields(logrus.Fields{
				"component": "engine",
				"refund":    refund,
			}).Info("Cart refunded on challenge.")
		}
		s.shop.CancelUse()

		s.enemy = nil
		s.enemyTracked = false
		s.enemyLocked = false
		s.clearTurnTransients()
		s.missArmed = false
		s.attackTimer.Cancel()
		s.attackTimer = nil
		s.audio.Cue(CueIdleStop)
		s.enterState(domain.StateAwaitEnemyTracking)
	})
	return nil
}

// scheduleEnemyAttack планирует ответный удар врага после паузы.
// Прежний запланированный удар отменяется: двойных ударов не бывает.
func (s *GameService) scheduleEnemyAttack() {
	s.attackTimer.Cancel()
	s.attackTimer = s.sched.After(s.cfg.EnemyAttackDelay(), func() {
		s.resolveEnemyAttack()
	})
}

// resolveEnemyAttack выполняет ответный удар врага и завершает его ход.
func (s *GameService) resolveEnemyAttack() {
	s.attackTimer = nil
	if !s.enemyTracked || s.enemy == nil {
		return
	}
	// Если игрок успел сбежать в магазин или бой уже кончился, удара нет.
	switch s.state {
	case domain.StateIntermission, domain.StateShop,
		domain.StateQuiz, domain.StateQuizResolving,
		domain.StateVictory, domain.StateGameOver:
		return
	}

	if s.missArmed {
		s.missArmed = false
		if s.rng.Float64() < s.cfg.Battle.MissChanceIfFast {
			logger.Log.WithFields(logrus.Fields{
				"component": "engine",
				"enemy":     s.enemy.ID.String(),
			}).Info("Enemy attack missed.")
			s.endTurn()
			s.banner = "Falhou!"
			return
		}
	}

	s.audio.Cue(CueEnemyAttack)
	died := systems.EnemyStrike(s.enemy, &s.player)
	if died {
		s.audio.Cue(CuePlayerDefeated)
		s.enterState(domain.StateGameOver)
		return
	}
	s.endTurn()
}

// endTurn завершает ход игрока и возвращает автомат в боевую готовность.
func (s *GameService) endTurn() {
	s.clearTurnTransients()
	if s.enemyTracked {
		s.enterState(domain.StateBattleReady)
		if s.enemy != nil {
			s.banner = s.enemy.ID.Name()
		}
	} else {
		s.enterState(domain.StateAwaitEnemyTracking)
	}
}

// dealDamageToEnemy наносит урон врагу и, если тот побежден, начисляет
// счет и добычу. Победа над последним уникальным врагом дает Victory,
// иначе бой сменяется передышкой.
func (s *GameService) dealDamageToEnemy(damage int) {
	if s.enemy == nil {
		return
	}
	defeated := systems.DealDamageToEnemy(s.enemy, damage)
	if !defeated {
		return
	}

	s.audio.Cue(CueEnemyDefeated)
	s.session.AddScore(s.enemy.Score)
	for _, drop := range s.tables.Drops[s.enemy.ID] {
		s.inventory.Add(drop.Card, drop.Qty)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"enemy":     s.enemy.ID.String(),
		"score":     s.session.Score(),
	}).Info("Enemy defeated.")

	if s.progress.RegisterEnemyDefeated(s.enemy.ID) {
		s.enterState(domain.StateVictory)
		return
	}
	s.enterIntermission()
}

// enterIntermission закрывает бой и открывает передышку с магазином.
func (s *GameService) enterIntermission() {
	s.enemy = nil
	s.enemyTracked = false
	s.enemyLocked = false
	s.clearTurnTransients()
	s.attackTimer.Cancel()
	s.attackTimer = nil
	s.audio.Cue(CueIdleStop)
	s.enterState(domain.StateIntermission)
}
