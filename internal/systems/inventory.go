package systems

import (
	"github.com/WendellNunes/RogueLibras/internal/domain"
)

// Inventory - сумка игрока: счетчики физических карт по идентификаторам.
// Не потокобезопасна, вся работа идет из горутины движка.
type Inventory struct {
	counts map[domain.CardID]int
}

// NewInventory создает пустую сумку.
func NewInventory() *Inventory {
	return &Inventory{counts: make(map[domain.CardID]int)}
}

// Add начисляет qty карт. Отрицательные и нулевые qty игнорируются.
func (inv *Inventory) Add(card domain.CardID, qty int) {
	if qty <= 0 || card == domain.CardNone {
		return
	}
	inv.counts[card] += qty
}

// Consume списывает qty карт. Возвращает false и ничего не меняет,
// если карт не хватает. Нулевое или отрицательное qty - тривиальный успех.
func (inv *Inventory) Consume(card domain.CardID, qty int) bool {
	if qty <= 0 {
		return true
	}
	if inv.counts[card] < qty {
		return false
	}
	inv.counts[card] -= qty
	return true
}

// Count возвращает количество карт данного вида.
func (inv *Inventory) Count(card domain.CardID) int {
	return inv.counts[card]
}

// Reset очищает сумку и заполняет ее стартовым набором.
func (inv *Inventory) Reset(starting map[domain.CardID]int) {
	inv.counts = make(map[domain.CardID]int)
	for card, qty := range starting {
		inv.Add(card, qty)
	}
}

// Snapshot возвращает копию счетчиков для снимка состояния.
func (inv *Inventory) Snapshot() map[domain.CardID]int {
	out := make(map[domain.CardID]int, len(inv.counts))
	for card, qty := range inv.counts {
		out[card] = qty
	}
	return out
}
