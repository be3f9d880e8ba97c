package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionTrackEnemy
	ActionEnemyLost
	ActionTrackCard
	ActionCardLost
	ActionAttack
	ActionPass
	ActionUse
	ActionChallenge
	ActionAnswer
	ActionEnterShop
	ActionShopSelect
	ActionShopAdjust
	ActionShopBuy
	ActionShopCancel
	ActionShopUse
	ActionBagUse
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":        ActionInit,
	"TRACK_ENEMY": ActionTrackEnemy,
	"ENEMY_LOST":  ActionEnemyLost,
	"TRACK_CARD":  ActionTrackCard,
	"CARD_LOST":   ActionCardLost,
	"ATTACK":      ActionAttack,
	"PASS":        ActionPass,
	"USE":         ActionUse,
	"CHALLENGE":   ActionChallenge,
	"ANSWER":      ActionAnswer,
	"ENTER_SHOP":  ActionEnterShop,
	"SHOP_SELECT": ActionShopSelect,
	"SHOP_ADJUST": ActionShopAdjust,
	"SHOP_BUY":    ActionShopBuy,
	"SHOP_CANCEL": ActionShopCancel,
	"SHOP_USE":    ActionShopUse,
	"BAG_USE":     ActionBagUse,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:       "INIT",
	ActionTrackEnemy: "TRACK_ENEMY",
	ActionEnemyLost:  "ENEMY_LOST",
	ActionTrackCard:  "TRACK_CARD",
	ActionCardLost:   "CARD_LOST",
	ActionAttack:     "ATTACK",
	ActionPass:       "PASS",
	ActionUse:        "USE",
	ActionChallenge:  "CHALLENGE",
	ActionAnswer:     "ANSWER",
	ActionEnterShop:  "ENTER_SHOP",
	ActionShopSelect: "SHOP_SELECT",
	ActionShopAdjust: "SHOP_ADJUST",
	ActionShopBuy:    "SHOP_BUY",
	ActionShopCancel: "SHOP_CANCEL",
	ActionShopUse:    "SHOP_USE",
	ActionBagUse:     "BAG_USE",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
