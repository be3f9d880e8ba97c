package agent

import (
	"encoding/json"
	"log"
	"math/rand"

	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/internal/engine"
	"github.com/WendellNunes/RogueLibras/pkg/api"
)

// Bot - headless-агент для прогонки забега без AR-клиента.
// Он подключается к хабу как обычный клиент, получает снимки состояния
// и отвечает командами: изображает и камеру (трекинг маркеров), и пальцы
// (кнопки). Полезен для нагрузочных прогонов и отладки баланса.
//
// Стратегия нарочно примитивная: выслеживать первого непобежденного врага,
// жечь атакующие карты по кругу, на вопросы отвечать наугад.
type Bot struct {
	SessionID string
	Service   *engine.GameService
	Inbox     chan api.ServerResponse
	Done      chan struct{}

	rng *rand.Rand
}

func NewBot(sessionID string, service *engine.GameService, seed int64) *Bot {
	log.Printf("[BOT] Creating agent %s", sessionID)
	return &Bot{
		SessionID: sessionID,
		Service:   service,
		Inbox:     service.Hub.Register(sessionID),
		Done:      make(chan struct{}),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
// Цикл завершается на финальном экране забега.
func (b *Bot) Run() {
	defer close(b.Done)
	defer b.Service.Hub.Unregister(b.SessionID)

	b.sendCommand(domain.ActionInit, nil)

	var last api.ServerResponse
	for event := range b.Inbox {
		// Реагируем только на смену состояния: на каждый снимок
		// отвечать нельзя, бот зациклит сам себя.
		if event.State == last.State && event.Banner == last.Banner {
			continue
		}
		last = event

		if b.makeMove(event) {
			return
		}
	}
}

// makeMove выбирает следующую команду. Возвращает true на финальном экране.
func (b *Bot) makeMove(state api.ServerResponse) bool {
	switch state.State {
	case domain.StateAwaitEnemyTracking.String():
		if id := b.pickEnemy(state); id != "" {
			b.sendCommand(domain.ActionTrackEnemy, api.EnemyPayload{EnemyID: id})
		}

	case domain.StateBattleReady.String():
		b.sendCommand(domain.ActionAttack, nil)

	case domain.StateAwaitActionTracking.String():
		if card := b.pickCard(state); card != "" {
			b.sendCommand(domain.ActionTrackCard, api.CardPayload{CardID: card})
		} else {
			// Карт не осталось - только пасовать.
			b.sendCommand(domain.ActionPass, nil)
		}

	case domain.StateCardReady.String():
		b.sendCommand(domain.ActionUse, nil)

	case domain.StateQuiz.String():
		option := "A"
		if b.rng.Intn(2) == 1 {
			option = "B"
		}
		b.sendCommand(domain.ActionAnswer, api.AnswerPayload{Option: option})

	case domain.StateIntermission.String(), domain.StateShop.String():
		b.sendCommand(domain.ActionChallenge, nil)

	case domain.StateVictory.String(), domain.StateGameOver.String():
		log.Printf("[BOT %s] Run finished: %s, score %d, time %s",
			b.SessionID, state.State, state.Score, state.Elapsed)
		return true
	}
	return false
}

// pickEnemy возвращает первого непобежденного врага ростера.
func (b *Bot) pickEnemy(state api.ServerResponse) string {
	defeated := make(map[string]bool, len(state.Defeated))
	for _, d := range state.Defeated {
		defeated[d] = true
	}
	for _, id := range domain.Roster {
		if !defeated[id.String()] {
			return id.String()
		}
	}
	return ""
}

// pickCard возвращает атакующую карту, которая еще есть в сумке,
// или еду, если HP просели.
func (b *Bot) pickCard(state api.ServerResponse) string {
	if state.Player.HP < state.Player.MaxHP/3 {
		for _, card := range []domain.CardID{domain.CardApple, domain.CardBread} {
			if state.Inventory[card.String()] > 0 {
				return card.String()
			}
		}
	}
	for _, card := range []domain.CardID{domain.CardFire, domain.CardThunder, domain.CardWater, domain.CardRock} {
		if state.Inventory[card.String()] > 0 {
			return card.String()
		}
	}
	return ""
}

func (b *Bot) sendCommand(action domain.ActionType, payload interface{}) {
	var payloadBytes json.RawMessage
	if payload != nil {
		var err error
		payloadBytes, err = json.Marshal(payload)
		if err != nil {
			log.Printf("[BOT %s] Error marshalling payload: %v", b.SessionID, err)
			return
		}
	}

	b.Service.ProcessCommand(api.ClientCommand{
		Action:  action.String(),
		Payload: payloadBytes,
	})
}
