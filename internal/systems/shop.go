package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

// Wallet - источник денег для резервирования корзины.
type Wallet interface {
	TrySpend(amount int) bool
	AddMoney(amount int)
}

// Shop - витрина магазина с корзиной-резервом.
// Деньги списываются в момент добавления в корзину, отмена возвращает их.
// Остатки витрины уменьшаются только при подтверждении покупки.
type Shop struct {
	prices map[domain.CardID]int
	stock  map[domain.CardID]int
	wallet Wallet

	cart     map[domain.CardID]int
	reserved int
	selected domain.CardID

	// Режим "использовать карту из сумки" внутри магазина.
	useActive bool
	useCard   domain.CardID
	useQty    int
	useMax    int
}

// NewShop создает витрину с данными ценами и начальными остатками.
func NewShop(prices, stock map[domain.CardID]int, wallet Wallet) *Shop {
	s := &Shop{
		prices: prices,
		wallet: wallet,
		cart:   make(map[domain.CardID]int),
	}
	s.stock = make(map[domain.CardID]int, len(stock))
	for card, qty := range stock {
		s.stock[card] = qty
	}
	return s
}

// Reset возвращает витрину к начальным остаткам и очищает корзину без возврата
// денег (используется только при полном сбросе забега).
func (s *Shop) Reset(stock map[domain.CardID]int) {
	s.stock = make(map[domain.CardID]int, len(stock))
	for card, qty := range stock {
		s.stock[card] = qty
	}
	s.cart = make(map[domain.CardID]int)
	s.reserved = 0
	s.selected = domain.CardNone
	s.CancelUse()
}

func (s *Shop) available(card domain.CardID) int {
	return s.stock[card] - s.cart[card]
}

// Select выбирает позицию витрины. Первая отметка кладет одну штуку в корзину,
// списывая ее цену. Повторный выбор уже лежащей позиции только переводит фокус.
func (s *Shop) Select(card domain.CardID) string {
	price, ok := s.prices[card]
	if !ok {
		return "Inválido"
	}
	if s.cart[card] > 0 {
		s.selected = card
		return fmt.Sprintf("%s x%d", card.Name(), s.cart[card])
	}
	if s.available(card) <= 0 {
		return "0x"
	}
	if !s.wallet.TrySpend(price) {
		return "Sem $"
	}
	s.cart[card] = 1
	s.reserved += price
	s.selected = card

	logger.Log.WithFields(logrus.Fields{
		"component": "shop",
		"card":      card.String(),
		"reserved":  s.reserved,
	}).Debug("Cart position opened.")

	return fmt.Sprintf("%s x1", card.Name())
}

// Adjust меняет количество сфокусированной позиции на +1/-1.
// Увеличение резервирует деньги, уменьшение возвращает. Снижение до нуля
// убирает позицию из корзины.
func (s *Shop) Adjust(delta int) string {
	if s.selected == domain.CardNone || s.cart[s.selected] == 0 {
		return "Selecione"
	}
	card := s.selected
	price := s.prices[card]

	if delta > 0 {
		if s.available(card) <= 0 {
			return "0x"
		}
		if !s.wallet.TrySpend(price) {
			return "Sem $"
		}
		s.cart[card]++
		s.reserved += price
	} else {
		s.cart[card]--
		s.reserved -= price
		s.wallet.AddMoney(price)
		if s.cart[card] == 0 {
			delete(s.cart, card)
			s.selected = domain.CardNone
			return "Cancelado"
		}
	}
	return fmt.Sprintf("%s x%d", card.Name(), s.cart[card])
}

// ConfirmPurchase переводит корзину в сумку и списывает остатки витрины.
// Деньги уже зарезервированы, поэтому здесь только передача товара.
func (s *Shop) ConfirmPurchase(inv *Inventory) string {
	if len(s.cart) == 0 {
		return "Selecione"
	}
	// Повторная проверка остатков перед списанием: вся корзина целиком,
	// частичных покупок не бывает.
	for card, qty := range s.cart {
		if s.stock[card] < qty {
			return "0x"
		}
	}
	for card, qty := range s.cart {
		s.stock[card] -= qty
		inv.Add(card, qty)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "shop",
		"spent":     s.reserved,
		"positions": len(s.cart),
	}).Info("Purchase confirmed.")

	s.cart = make(map[domain.CardID]int)
	s.reserved = 0
	s.selected = domain.CardNone
	return "$$$"
}

// CancelCart возвращает весь резерв в кошелек и очищает корзину.
// Возвращает сумму возврата.
func (s *Shop) CancelCart() int {
	refund := s.reserved
	if refund > 0 {
		s.wallet.AddMoney(refund)
	}
	s.cart = make(map[domain.CardID]int)
	s.reserved = 0
	s.selected = domain.CardNone
	return refund
}

// Reserved возвращает сумму, удерживаемую под корзину.
func (s *Shop) Reserved() int {
	return s.reserved
}

// Selected возвращает сфокусированную позицию корзины.
func (s *Shop) Selected() domain.CardID {
	return s.selected
}

// CartSnapshot возвращает копию корзины.
func (s *Shop) CartSnapshot() map[domain.CardID]int {
	out := make(map[domain.CardID]int, len(s.cart))
	for card, qty := range s.cart {
		out[card] = qty
	}
	return out
}

// StockSnapshot возвращает копию остатков витрины.
func (s *Shop) StockSnapshot() map[domain.CardID]int {
	out := make(map[domain.CardID]int, len(s.stock))
	for card, qty := range s.stock {
		out[card] = qty
	}
	return out
}

// CanAcceptUseTracking сообщает, можно ли сейчас заходить в режим
// использования карты из сумки. Пока открыта корзина - нельзя.
func (s *Shop) CanAcceptUseTracking() bool {
	return len(s.cart) == 0
}

// BeginUse открывает режим использования карты из сумки.
// have - сколько таких карт у игрока.
func (s *Shop) BeginUse(card domain.CardID, have int) {
	s.useActive = true
	s.useCard = card
	s.useQty = 1
	s.useMax = have
}

// AdjustUse меняет количество в режиме использования, в пределах [1, have].
func (s *Shop) AdjustUse(delta int) string {
	if !s.useActive {
		return "Selecione"
	}
	q := s.useQty + delta
	if q < 1 {
		q = 1
	}
	if q > s.useMax {
		return "0x"
	}
	s.useQty = q
	return fmt.Sprintf("%s x%d", s.useCard.Name(), s.useQty)
}

// CancelUse закрывает режим использования. Повторные вызовы безопасны.
func (s *Shop) CancelUse() {
	s.useActive = false
	s.useCard = domain.CardNone
	s.useQty = 0
	s.useMax = 0
}

// UsePending возвращает карту и количество открытого режима использования.
func (s *Shop) UsePending() (domain.CardID, int, bool) {
	return s.useCard, s.useQty, s.useActive
}
