package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" текущего забега: состояние конечного
// автомата, баннер, видимые панели и кнопки. Клиент ничего не хранит сам и
// просто отрисовывает последний снимок.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// State текущее состояние игрового автомата (e.g. "BATTLE_READY").
	State string `json:"state"`

	// Banner текст верхней плашки, уже локализованный.
	Banner string `json:"banner,omitempty"`

	// Enemy текущий противник. Отсутствует, если маркер врага не отслеживается.
	Enemy *EnemyView `json:"enemy,omitempty"`

	// Player ресурсы игрока.
	Player PlayerView `json:"player"`

	// Inventory количество карт в сумке по идентификаторам карт.
	Inventory map[string]int `json:"inventory"`

	// Defeated идентификаторы уже побежденных уникальных врагов.
	Defeated []string `json:"defeated,omitempty"`

	// Shop состояние витрины. Присутствует, только когда панель магазина открыта.
	Shop *ShopView `json:"shop,omitempty"`

	// Quiz активный вопрос по жесту. Присутствует только в состоянии QUIZ.
	Quiz *QuizView `json:"quiz,omitempty"`

	// Buttons какие кнопки сейчас активны.
	Buttons ButtonsView `json:"buttons"`

	// Panels какие панели сейчас видимы.
	Panels PanelsView `json:"panels"`

	// Cues звуковые события, накопленные с прошлого снимка.
	Cues []string `json:"cues,omitempty"`

	// Scene индекс сцены, на которую клиенту следует перейти (финальные экраны).
	Scene *int `json:"scene,omitempty"`

	// Score текущий счет забега.
	Score int `json:"score"`

	// Elapsed время забега в формате MM:SS.
	Elapsed string `json:"elapsed"`
}

// EnemyView это DTO текущего противника.
type EnemyView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
}

// PlayerView это DTO ресурсов игрока.
type PlayerView struct {
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	Money int `json:"money"`
}

// ShopView это DTO витрины магазина.
type ShopView struct {
	// Stock остатки на витрине по идентификаторам карт.
	Stock map[string]int `json:"stock"`

	// Cart зарезервированные позиции корзины.
	Cart map[string]int `json:"cart,omitempty"`

	// Reserved сумма, уже списанная под корзину.
	Reserved int `json:"reserved"`

	// Selected последняя выбранная позиция корзины.
	Selected string `json:"selected,omitempty"`

	// Use активный режим использования карты из сумки (may be nil).
	Use *ShopUseView `json:"use,omitempty"`
}

// ShopUseView это DTO режима "использовать из сумки" внутри магазина.
type ShopUseView struct {
	Card string `json:"card"`
	Qty  int    `json:"qty"`
}

// QuizView это DTO активного вопроса. Правильная сторона клиенту не сообщается.
type QuizView struct {
	// Card карта, чей жест нужно распознать.
	Card string `json:"card"`

	// OptionA и OptionB ссылки на видеоролики вариантов ответа.
	// Пустые, если контент для карты не сконфигурирован.
	OptionA string `json:"optionA,omitempty"`
	OptionB string `json:"optionB,omitempty"`
}

// ButtonsView перечисляет активные кнопки нижней панели.
type ButtonsView struct {
	Attack    bool `json:"attack"`
	Pass      bool `json:"pass"`
	Use       bool `json:"use"`
	Challenge bool `json:"challenge"`
}

// PanelsView перечисляет видимые панели.
type PanelsView struct {
	Quiz bool `json:"quiz"`
	Shop bool `json:"shop"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// EnemyPayload используется для событий трекинга маркера врага (TRACK_ENEMY).
type EnemyPayload struct {
	EnemyID string `json:"enemyId"`
}

// CardPayload используется для событий трекинга карты и выбора позиции
// магазина (TRACK_CARD, SHOP_SELECT).
type CardPayload struct {
	CardID string `json:"cardId"`
}

// AnswerPayload используется для ответа на вопрос (ANSWER).
type AnswerPayload struct {
	// Option выбранный вариант: "A" или "B".
	Option string `json:"option"`
}

// AdjustPayload используется для изменения количества (SHOP_ADJUST).
type AdjustPayload struct {
	// Delta шаг изменения: +1 или -1.
	Delta int `json:"delta"`
}

// UsePayload используется для запуска использования карты (SHOP_USE, BAG_USE).
type UsePayload struct {
	CardID string `json:"cardId"`
	Qty    int    `json:"qty,omitempty"`
}
