package domain

import "encoding/json"

// ReplayAction - это запись одного действия извне (от игрока)
type ReplayAction struct {
	Tick    int             `json:"tick"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// InternalCommand конвертирует запись обратно в команду движка.
func (a ReplayAction) InternalCommand() InternalCommand {
	return InternalCommand{Action: a.Action, Payload: a.Payload}
}

// ReplaySession - полная запись забега. Зерна рандома достаточно,
// чтобы воспроизвести вопросы и промахи врага детерминированно.
type ReplaySession struct {
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}
