package engine

import (
	"testing"

	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/pkg/api"
)

// enterIntermissionByDefeat доводит игру до передышки победой над гоблином.
func enterIntermissionByDefeat(t *testing.T, s *GameService) {
	t.Helper()
	trackEnemy(t, s, "GOBLIN")
	s.dealDamageToEnemy(1000)
	if s.State() != domain.StateIntermission {
		t.Fatalf("state = %v, want Intermission", s.State())
	}
}

func TestShopCartReservesAndRefunds(t *testing.T) {
	s := newTestService(t)
	enterIntermissionByDefeat(t, s)
	apply(t, s, domain.ActionEnterShop, nil)
	if s.State() != domain.StateShop {
		t.Fatalf("state = %v, want Shop", s.State())
	}

	// Фуга стоит все 100: корзина резервирует деньги сразу
	apply(t, s, domain.ActionShopSelect, api.CardPayload{CardID: "ESCAPE"})
	if s.banner != "Fuga x1" {
		t.Errorf("banner = %q, want Fuga x1", s.banner)
	}
	if s.player.Money != 0 {
		t.Errorf("money = %d, want 0 (reserved)", s.player.Money)
	}

	// На вторую позицию денег уже нет
	apply(t, s, domain.ActionShopSelect, api.CardPayload{CardID: "FIRE"})
	if s.banner != "Sem $" {
		t.Errorf("banner = %q, want Sem $", s.banner)
	}

	// Вызов следующего врага возвращает резерв
	apply(t, s, domain.ActionChallenge, nil)
	if s.player.Money != 100 {
		t.Errorf("money = %d, want 100 after refund", s.player.Money)
	}
	if s.State() != domain.StateAwaitEnemyTracking {
		t.Errorf("state = %v, want AwaitEnemyTracking", s.State())
	}
}

func TestShopPurchaseMovesStockToBag(t *testing.T) {
	s := newTestService(t)
	enterIntermissionByDefeat(t, s)
	apply(t, s, domain.ActionEnterShop, nil)

	apply(t, s, domain.ActionShopSelect, api.CardPayload{CardID: "BREAD"})
	apply(t, s, domain.ActionShopAdjust, api.AdjustPayload{Delta: 1})
	if s.banner != "Pão x2" {
		t.Errorf("banner = %q, want Pão x2", s.banner)
	}

	apply(t, s, domain.ActionShopBuy, nil)
	if s.banner != "$$$" {
		t.Errorf("banner = %q, want $$$", s.banner)
	}
	if s.player.Money != 70 {
		t.Errorf("money = %d, want 70", s.player.Money)
	}
	if got := s.inventory.Count(domain.CardBread); got != 7 {
		t.Errorf("bread = %d, want 7", got)
	}
	if got := s.shop.StockSnapshot()[domain.CardBread]; got != 3 {
		t.Errorf("stock = %d, want 3", got)
	}
}

func TestShopCancelEmptiesCart(t *testing.T) {
	s := newTestService(t)
	enterIntermissionByDefeat(t, s)
	apply(t, s, domain.ActionEnterShop, nil)

	apply(t, s, domain.ActionShopSelect, api.CardPayload{CardID: "APPLE"})
	if s.player.Money != 70 {
		t.Fatalf("money = %d, want 70", s.player.Money)
	}

	apply(t, s, domain.ActionShopCancel, nil)
	if s.banner != "Cancelado" {
		t.Errorf("banner = %q, want Cancelado", s.banner)
	}
	if s.player.Money != 100 {
		t.Errorf("money = %d, want 100", s.player.Money)
	}
	if len(s.shop.CartSnapshot()) != 0 {
		t.Error("cart must be empty after cancel")
	}
}

func TestBagUseExchangesCurrency(t *testing.T) {
	s := newTestService(t)
	enterIntermissionByDefeat(t, s) // дроп гоблина: 5 монет и 3 пачки

	apply(t, s, domain.ActionBagUse, api.UsePayload{CardID: "COINS", Qty: 3})
	if s.State() != domain.StateQuiz {
		t.Fatalf("state = %v, want Quiz", s.State())
	}

	answer(t, s, true)
	if s.State() != domain.StateIntermission {
		t.Errorf("state = %v, want Intermission", s.State())
	}
	if s.banner != "Correto!" {
		t.Errorf("banner = %q, want Correto!", s.banner)
	}
	if s.player.Money != 130 {
		t.Errorf("money = %d, want 130 (3 packs x10)", s.player.Money)
	}
	if got := s.inventory.Count(domain.CardCoins); got != 0 {
		t.Errorf("coin packs = %d, want 0", got)
	}
}

func TestBagUseWrongAnswerBurnsCards(t *testing.T) {
	s := newTestService(t)
	enterIntermissionByDefeat(t, s)
	s.player.HP = 50

	apply(t, s, domain.ActionBagUse, api.UsePayload{CardID: "APPLE", Qty: 2})
	answer(t, s, false)

	if s.banner != "Errado!" {
		t.Errorf("banner = %q, want Errado!", s.banner)
	}
	// Неверный ответ в передышке сжигает поставленные карты
	if got := s.inventory.Count(domain.CardApple); got != 3 {
		t.Errorf("apples = %d, want 3 (burned)", got)
	}
	if s.player.HP != 50 {
		t.Errorf("player hp = %d, want 50 (no heal)", s.player.HP)
	}
	if s.State() != domain.StateIntermission {
		t.Errorf("state = %v, want Intermission", s.State())
	}
}

func TestBagUseHealAppliesPerCard(t *testing.T) {
	s := newTestService(t)
	enterIntermissionByDefeat(t, s)
	s.player.HP = 60

	apply(t, s, domain.ActionBagUse, api.UsePayload{CardID: "APPLE", Qty: 3})
	answer(t, s, true)

	if s.player.HP != 90 {
		t.Errorf("player hp = %d, want 90 (3 apples x10)", s.player.HP)
	}
	if got := s.inventory.Count(domain.CardApple); got != 2 {
		t.Errorf("apples = %d, want 2", got)
	}
}

func TestShopUseWrongAnswerKeepsCards(t *testing.T) {
	s := newTestService(t)
	enterIntermissionByDefeat(t, s)
	apply(t, s, domain.ActionEnterShop, nil)

	apply(t, s, domain.ActionShopUse, api.UsePayload{CardID: "COIN", Qty: 5})
	if s.State() != domain.StateQuiz {
		t.Fatalf("state = %v, want Quiz", s.State())
	}

	answer(t, s, false)
	// В лавке неверный ответ карты не трогает
	if got := s.inventory.Count(domain.CardCoin); got != 5 {
		t.Errorf("coins = %d, want 5 (kept)", got)
	}
	if s.player.Money != 100 {
		t.Errorf("money = %d, want 100", s.player.Money)
	}
	if s.State() != domain.StateShop {
		t.Errorf("state = %v, want Shop", s.State())
	}
}

func TestTrackedCardOpensUseModeOutOfBattle(t *testing.T) {
	s := newTestService(t)
	enterIntermissionByDefeat(t, s)

	trackCard(t, s, "COIN")
	if s.banner != "Moeda x1" {
		t.Errorf("banner = %q, want Moeda x1", s.banner)
	}
	card, qty, active := s.shop.UsePending()
	if !active || card != domain.CardCoin || qty != 1 {
		t.Fatalf("use pending = (%v,%d,%v), want (Coin,1,true)", card, qty, active)
	}

	// Количество крутится кнопками витрины
	apply(t, s, domain.ActionShopAdjust, api.AdjustPayload{Delta: 1})
	_, qty, _ = s.shop.UsePending()
	if qty != 2 {
		t.Errorf("qty = %d, want 2", qty)
	}

	// Пропажа маркера закрывает режим
	apply(t, s, domain.ActionCardLost, nil)
	if _, _, active := s.shop.UsePending(); active {
		t.Error("card lost must cancel use mode")
	}

	// Подтверждение уходит в вопрос
	trackCard(t, s, "COIN")
	apply(t, s, domain.ActionShopBuy, nil)
	if s.State() != domain.StateQuiz {
		t.Errorf("state = %v, want Quiz", s.State())
	}
	answer(t, s, true)
	if s.player.Money != 101 {
		t.Errorf("money = %d, want 101", s.player.Money)
	}
}

func TestBattleCardsRejectedOutOfBattle(t *testing.T) {
	s := newTestService(t)
	enterIntermissionByDefeat(t, s)

	trackCard(t, s, "FIRE")
	if s.banner != "Inválido" {
		t.Errorf("banner = %q, want Inválido", s.banner)
	}
	if _, _, active := s.shop.UsePending(); active {
		t.Error("attack card must not open use mode")
	}
}
