package engine

import (
	"fmt"

	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/pkg/api"
)

// handleEnterShop открывает витрину. Доступно только в передышке.
func (s *GameService) handleEnterShop() error {
	if s.state != domain.StateIntermission && s.state != domain.StateShop {
		return nil
	}
	s.enterState(domain.StateShop)
	return nil
}

// handleShopSelect выбирает позицию витрины.
func (s *GameService) handleShopSelect(p api.CardPayload) error {
	if !s.state.OutOfBattle() {
		return nil
	}
	card := domain.ParseCard(p.CardID)
	if card == domain.CardNone {
		return fmt.Errorf("unknown card %q", p.CardID)
	}
	s.banner = s.shop.Select(card)
	return nil
}

// handleShopAdjust меняет количество: корзины или открытого режима
// использования, смотря что сейчас активно.
func (s *GameService) handleShopAdjust(p api.AdjustPayload) error {
	if !s.state.OutOfBattle() {
		return nil
	}
	if _, _, active := s.shop.UsePending(); active {
		s.banner = s.shop.AdjustUse(p.Delta)
		return nil
	}
	s.banner = s.shop.Adjust(p.Delta)
	return nil
}

// handleShopBuy подтверждает корзину, либо, если открыт режим
// использования, отправляет карту в вопрос.
func (s *GameService) handleShopBuy() error {
	if !s.state.OutOfBattle() {
		return nil
	}
	if card, qty, active := s.shop.UsePending(); active {
		s.shop.CancelUse()
		return s.beginUseQuiz(card, qty)
	}
	s.banner = s.shop.ConfirmPurchase(s.inventory)
	return nil
}

// handleShopCancel отменяет корзину или режим использования.
func (s *GameService) handleShopCancel() error {
	if !s.state.OutOfBattle() {
		return nil
	}
	if _, _, active := s.shop.UsePending(); active {
		s.shop.CancelUse()
		s.banner = "Cancelado"
		return nil
	}
	s.shop.CancelCart()
	s.banner = "Cancelado"
	return nil
}

// handleShopUse запускает использование карты без трекинга (кнопка сумки
// на витрине).
func (s *GameService) handleShopUse(p api.UsePayload) error {
	if !s.state.OutOfBattle() {
		return nil
	}
	card := domain.ParseCard(p.CardID)
	if card == domain.CardNone {
		return fmt.Errorf("unknown card %q", p.CardID)
	}
	qty := p.Qty
	if qty == 0 {
		qty = 1
	}
	return s.beginUseQuiz(card, qty)
}

// handleBagUse использует карту из сумки в передышке, через вопрос.
// Здесь неверный ответ сжигает карты.
func (s *GameService) handleBagUse(p api.UsePayload) error {
	if s.state != domain.StateIntermission {
		return nil
	}
	card := domain.ParseCard(p.CardID)
	if card == domain.CardNone {
		return fmt.Errorf("unknown card %q", p.CardID)
	}
	qty := p.Qty
	if qty == 0 {
		qty = 1
	}
	if !card.IsIntermissionUsable() {
		s.banner = "Inválido"
		return nil
	}
	if s.cfg.EnforceInventory() && s.inventory.Count(card) < qty {
		s.banner = fmt.Sprintf("Sem %s", card.Name())
		return nil
	}
	s.startQuiz(card, quizIntermissionUse, qty, domain.StateIntermission)
	return nil
}

// beginUseQuiz маршрутизирует использование карты по ее виду:
// валюта уходит в обмен, еда применяется на месте.
func (s *GameService) beginUseQuiz(card domain.CardID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("qty must be positive")
	}
	if s.cfg.EnforceInventory() && s.inventory.Count(card) < qty {
		s.banner = fmt.Sprintf("Sem %s", card.Name())
		return nil
	}

	switch {
	case card.IsCurrency():
		s.startQuiz(card, quizShopCurrency, qty, s.state)
	case card.IsHeal():
		s.startQuiz(card, quizShopItem, qty, s.state)
	default:
		s.banner = "Inválido"
	}
	return nil
}
