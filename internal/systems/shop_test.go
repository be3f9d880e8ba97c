package systems

import (
	"testing"

	"github.com/WendellNunes/RogueLibras/internal/domain"
)

// Тестовые цены и остатки витрины.
func testShop(money int) (*Shop, *domain.PlayerStats) {
	player := &domain.PlayerStats{HP: 100, MaxHP: 100, Money: money}
	prices := map[domain.CardID]int{
		domain.CardEscape: 100,
		domain.CardFire:   50,
		domain.CardBread:  15,
	}
	stock := map[domain.CardID]int{
		domain.CardEscape: 5,
		domain.CardFire:   5,
		domain.CardBread:  2,
	}
	return NewShop(prices, stock, player), player
}

func TestShopSelectReservesMoney(t *testing.T) {
	shop, player := testShop(100)

	if msg := shop.Select(domain.CardEscape); msg != "Fuga x1" {
		t.Errorf("select msg = %q", msg)
	}
	if player.Money != 0 {
		t.Errorf("money = %d, want 0 (reserved)", player.Money)
	}
	if shop.Reserved() != 100 {
		t.Errorf("reserved = %d, want 100", shop.Reserved())
	}

	// Денег больше нет - вторая позиция не открывается
	if msg := shop.Select(domain.CardFire); msg != "Sem $" {
		t.Errorf("broke select msg = %q, want Sem $", msg)
	}
}

func TestShopAdjustBounds(t *testing.T) {
	shop, player := testShop(100)

	shop.Select(domain.CardBread) // 15
	if msg := shop.Adjust(+1); msg != "Pão x2" {
		t.Errorf("adjust msg = %q", msg)
	}
	// Остаток витрины 2 - третью штуку взять нельзя
	if msg := shop.Adjust(+1); msg != "0x" {
		t.Errorf("over-stock msg = %q, want 0x", msg)
	}
	if player.Money != 70 {
		t.Errorf("money = %d, want 70", player.Money)
	}

	// Снижение до нуля убирает позицию и возвращает деньги
	shop.Adjust(-1)
	if msg := shop.Adjust(-1); msg != "Cancelado" {
		t.Errorf("zero msg = %q, want Cancelado", msg)
	}
	if player.Money != 100 {
		t.Errorf("money = %d, want full refund 100", player.Money)
	}
	if shop.Reserved() != 0 {
		t.Errorf("reserved = %d, want 0", shop.Reserved())
	}
}

func TestShopPurchaseMovesStock(t *testing.T) {
	shop, player := testShop(100)
	inv := NewInventory()

	shop.Select(domain.CardBread)
	shop.Adjust(+1)
	if msg := shop.ConfirmPurchase(inv); msg != "$$$" {
		t.Errorf("purchase msg = %q, want $$$", msg)
	}

	if inv.Count(domain.CardBread) != 2 {
		t.Errorf("inventory bread = %d, want 2", inv.Count(domain.CardBread))
	}
	if shop.StockSnapshot()[domain.CardBread] != 0 {
		t.Errorf("stock bread = %d, want 0", shop.StockSnapshot()[domain.CardBread])
	}
	if player.Money != 70 {
		t.Errorf("money = %d, want 70", player.Money)
	}
	if shop.Reserved() != 0 {
		t.Error("purchase must clear the reservation")
	}

	// Витрина опустела
	if msg := shop.Select(domain.CardBread); msg != "0x" {
		t.Errorf("empty stock msg = %q, want 0x", msg)
	}
}

func TestShopPurchaseRejectedWhenStockDrained(t *testing.T) {
	shop, player := testShop(100)
	inv := NewInventory()

	shop.Select(domain.CardBread)
	shop.Adjust(+1)

	// Остатки просели после наполнения корзины: покупка отклоняется
	// целиком, без частичной выдачи.
	shop.stock[domain.CardBread] = 1
	if msg := shop.ConfirmPurchase(inv); msg != "0x" {
		t.Errorf("purchase msg = %q, want 0x", msg)
	}
	if inv.Count(domain.CardBread) != 0 {
		t.Errorf("inventory bread = %d, want 0", inv.Count(domain.CardBread))
	}
	if shop.stock[domain.CardBread] != 1 {
		t.Errorf("stock bread = %d, want 1 (untouched)", shop.stock[domain.CardBread])
	}
	if shop.Reserved() != 30 || player.Money != 70 {
		t.Errorf("reserve must stay held: reserved=%d money=%d", shop.Reserved(), player.Money)
	}
	if shop.CartSnapshot()[domain.CardBread] != 2 {
		t.Error("cart must survive the rejected purchase")
	}
}

func TestShopCancelRefundsEverything(t *testing.T) {
	shop, player := testShop(200)

	shop.Select(domain.CardEscape)
	shop.Select(domain.CardFire)
	if player.Money != 50 {
		t.Fatalf("money = %d, want 50", player.Money)
	}

	refund := shop.CancelCart()
	if refund != 150 {
		t.Errorf("refund = %d, want 150", refund)
	}
	if player.Money != 200 {
		t.Errorf("money = %d, want 200", player.Money)
	}
	if len(shop.CartSnapshot()) != 0 {
		t.Error("cancel must empty the cart")
	}
}

func TestShopUseMode(t *testing.T) {
	shop, _ := testShop(100)

	// Пока корзина открыта, режим использования недоступен
	shop.Select(domain.CardBread)
	if shop.CanAcceptUseTracking() {
		t.Error("use tracking must be blocked while cart is open")
	}
	shop.CancelCart()

	shop.BeginUse(domain.CardBread, 3)
	if msg := shop.AdjustUse(+1); msg != "Pão x2" {
		t.Errorf("use adjust msg = %q", msg)
	}
	shop.AdjustUse(+1)
	// Больше, чем в сумке, не выбрать
	if msg := shop.AdjustUse(+1); msg != "0x" {
		t.Errorf("use over-have msg = %q, want 0x", msg)
	}

	card, qty, active := shop.UsePending()
	if !active || card != domain.CardBread || qty != 3 {
		t.Errorf("pending = %v x%d active=%v", card, qty, active)
	}

	shop.CancelUse()
	if _, _, active := shop.UsePending(); active {
		t.Error("cancel must close use mode")
	}
}
