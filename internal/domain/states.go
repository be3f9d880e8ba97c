package domain

// GameState - состояние конечного автомата забега.
type GameState uint8

const (
	StateAwaitEnemyTracking GameState = iota
	StateBattleReady
	StateAwaitActionTracking
	StateCardReady
	StateQuiz
	StateQuizResolving
	StateEnemyTurn
	StateIntermission
	StateShop
	StateVictory
	StateGameOver
)

var stateToString = map[GameState]string{
	StateAwaitEnemyTracking:  "AWAIT_ENEMY_TRACKING",
	StateBattleReady:         "BATTLE_READY",
	StateAwaitActionTracking: "AWAIT_ACTION_TRACKING",
	StateCardReady:           "CARD_READY",
	StateQuiz:                "QUIZ",
	StateQuizResolving:       "QUIZ_RESOLVING",
	StateEnemyTurn:           "ENEMY_TURN",
	StateIntermission:        "INTERMISSION",
	StateShop:                "SHOP",
	StateVictory:             "VICTORY",
	StateGameOver:            "GAME_OVER",
}

// String реализует интерфейс Stringer
func (s GameState) String() string {
	if val, ok := stateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// Terminal сообщает, завершен ли забег.
func (s GameState) Terminal() bool {
	return s == StateVictory || s == StateGameOver
}

// InBattle сообщает, идет ли сейчас бой (враг захвачен, ход игрока или врага).
func (s GameState) InBattle() bool {
	switch s {
	case StateBattleReady, StateAwaitActionTracking, StateCardReady, StateEnemyTurn:
		return true
	}
	return false
}

// OutOfBattle сообщает, находится ли игрок в передышке или магазине.
func (s GameState) OutOfBattle() bool {
	return s == StateIntermission || s == StateShop
}
