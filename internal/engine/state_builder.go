package engine

import (
	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/pkg/api"
)

// buildState собирает полный снимок забега для клиентов.
// Клиент ничего не вычисляет сам: какие кнопки активны и какие панели
// видимы, решает только движок.
func (s *GameService) buildState() *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:   "UPDATE",
		State:  s.state.String(),
		Banner: s.banner,
		Player: api.PlayerView{
			HP:    s.player.HP,
			MaxHP: s.player.MaxHP,
			Money: s.player.Money,
		},
		Inventory: cardCounts(s.inventory.Snapshot()),
		Score:     s.session.Score(),
		Elapsed:   s.session.FormattedTime(),
		Cues:      append([]string(nil), s.pendingCues...),
		Scene:     s.pendingScene,
	}

	for _, id := range s.progress.Snapshot() {
		resp.Defeated = append(resp.Defeated, id.String())
	}

	if s.enemyTracked && s.enemy != nil {
		resp.Enemy = &api.EnemyView{
			ID:    s.enemy.ID.String(),
			Name:  s.enemy.ID.Name(),
			HP:    s.enemy.HP,
			MaxHP: s.enemy.MaxHP,
		}
	}

	resp.Buttons = api.ButtonsView{
		Attack:    s.state == domain.StateBattleReady,
		Pass:      s.state == domain.StateBattleReady || s.state == domain.StateAwaitActionTracking || s.state == domain.StateCardReady,
		Use:       s.state == domain.StateCardReady,
		Challenge: s.state.OutOfBattle(),
	}
	resp.Panels = api.PanelsView{
		Quiz: s.state == domain.StateQuiz,
		Shop: s.state.OutOfBattle(),
	}

	if resp.Panels.Shop {
		view := &api.ShopView{
			Stock:    cardCounts(s.shop.StockSnapshot()),
			Cart:     cardCounts(s.shop.CartSnapshot()),
			Reserved: s.shop.Reserved(),
		}
		if sel := s.shop.Selected(); sel != domain.CardNone {
			view.Selected = sel.String()
		}
		if card, qty, active := s.shop.UsePending(); active {
			view.Use = &api.ShopUseView{Card: card.String(), Qty: qty}
		}
		resp.Shop = view
	}

	if s.state == domain.StateQuiz {
		a, b := s.gate.Options()
		resp.Quiz = &api.QuizView{
			Card:    s.gate.Card().String(),
			OptionA: a,
			OptionB: b,
		}
	}

	return resp
}

func cardCounts(in map[domain.CardID]int) map[string]int {
	out := make(map[string]int, len(in))
	for card, qty := range in {
		out[card.String()] = qty
	}
	return out
}
