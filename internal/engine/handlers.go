package engine

import (
	"encoding/json"
	"fmt"

	"github.com/WendellNunes/RogueLibras/pkg/api"
)

// handlerFunc - единый вид обработчика команды внутри движка.
type handlerFunc func(raw json.RawMessage) error

// withPayload берет "чистый" хендлер и превращает его в handlerFunc.
// Берет на себя Unmarshal и Validate.
func withPayload[T any](handler func(payload T) error) handlerFunc {
	return func(raw json.RawMessage) error {
		var payload T

		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("invalid payload format: %w", err)
			}
		}

		// Автоматическая валидация, если T реализует api.Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
		}

		return handler(payload)
	}
}

// withEmptyPayload - обертка для команд без данных (INIT, ATTACK, PASS...)
func withEmptyPayload(handler func() error) handlerFunc {
	return func(_ json.RawMessage) error {
		return handler()
	}
}
