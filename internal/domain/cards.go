package domain

import "strings"

// CardID - Внутренний числовой идентификатор физической карты.
type CardID uint8

const (
	CardNone CardID = iota
	CardWater
	CardFire
	CardRock
	CardThunder
	CardApple
	CardBread
	CardEscape
	CardCoin
	CardCoins
	CardMultiCoins
)

var cardStringToID = map[string]CardID{
	"WATER":       CardWater,
	"FIRE":        CardFire,
	"ROCK":        CardRock,
	"THUNDER":     CardThunder,
	"APPLE":       CardApple,
	"BREAD":       CardBread,
	"ESCAPE":      CardEscape,
	"COIN":        CardCoin,
	"COINS":       CardCoins,
	"MULTI_COINS": CardMultiCoins,
}

var cardIDToString = map[CardID]string{
	CardWater:      "WATER",
	CardFire:       "FIRE",
	CardRock:       "ROCK",
	CardThunder:    "THUNDER",
	CardApple:      "APPLE",
	CardBread:      "BREAD",
	CardEscape:     "ESCAPE",
	CardCoin:       "COIN",
	CardCoins:      "COINS",
	CardMultiCoins: "MULTI_COINS",
}

// ParseCard конвертирует строку из JSON в CardID
func ParseCard(s string) CardID {
	upper := strings.ToUpper(s)
	if val, ok := cardStringToID[upper]; ok {
		return val
	}
	return CardNone
}

// String реализует интерфейс Stringer
func (c CardID) String() string {
	if val, ok := cardIDToString[c]; ok {
		return val
	}
	return "NONE"
}

// AllCards - полный список известных карт. Порядок фиксирован для снапшотов и логов.
var AllCards = []CardID{
	CardWater, CardFire, CardRock, CardThunder,
	CardApple, CardBread, CardEscape,
	CardCoin, CardCoins, CardMultiCoins,
}

// --- Статические таблицы правил ---
// Значения перечислены здесь как дефолты, конфиг может их переопределить.

// AttackDamage - урон атакующих карт.
var AttackDamage = map[CardID]int{
	CardWater:   7,
	CardFire:    10,
	CardRock:    6,
	CardThunder: 8,
}

// HealAmount - лечение карт еды.
var HealAmount = map[CardID]int{
	CardApple: 10,
	CardBread: 5,
}

// ExchangeRate - номинал валютных карт при обмене на деньги.
var ExchangeRate = map[CardID]int{
	CardCoin:       1,
	CardCoins:      10,
	CardMultiCoins: 100,
}

// DisplayName - отображаемые имена карт для баннеров (pt-BR).
var DisplayName = map[CardID]string{
	CardWater:      "Água",
	CardFire:       "Fogo",
	CardRock:       "Pedra",
	CardThunder:    "Raio",
	CardApple:      "Maçã",
	CardBread:      "Pão",
	CardEscape:     "Fuga",
	CardCoin:       "Moeda",
	CardCoins:      "Moedas",
	CardMultiCoins: "Multi Moedas",
}

// IsAttack сообщает, является ли карта атакующей.
func (c CardID) IsAttack() bool {
	_, ok := AttackDamage[c]
	return ok
}

// IsHeal сообщает, является ли карта едой.
func (c CardID) IsHeal() bool {
	_, ok := HealAmount[c]
	return ok
}

// IsCurrency сообщает, является ли карта валютной.
func (c CardID) IsCurrency() bool {
	_, ok := ExchangeRate[c]
	return ok
}

// IsBattleUsable - карты, применимые в бою (атака, еда, побег).
// Валютные карты в бою отклоняются.
func (c CardID) IsBattleUsable() bool {
	return c.IsAttack() || c.IsHeal() || c == CardEscape
}

// IsIntermissionUsable - карты, применимые вне боя (еда и валюта).
func (c CardID) IsIntermissionUsable() bool {
	return c.IsHeal() || c.IsCurrency()
}

// Name возвращает отображаемое имя или техническую строку, если его нет.
func (c CardID) Name() string {
	if n, ok := DisplayName[c]; ok {
		return n
	}
	return c.String()
}
