package domain

import "strings"

// EnemyID - Внутренний числовой идентификатор вида врага.
type EnemyID uint8

const (
	EnemyNone EnemyID = iota
	EnemyGoblin
	EnemyOrc
	EnemyMinotaur
	EnemyDragon
)

var enemyStringToID = map[string]EnemyID{
	"GOBLIN":   EnemyGoblin,
	"ORC":      EnemyOrc,
	"MINOTAUR": EnemyMinotaur,
	"DRAGON":   EnemyDragon,
}

var enemyIDToString = map[EnemyID]string{
	EnemyGoblin:   "GOBLIN",
	EnemyOrc:      "ORC",
	EnemyMinotaur: "MINOTAUR",
	EnemyDragon:   "DRAGON",
}

// ParseEnemy конвертирует строку из JSON в EnemyID
func ParseEnemy(s string) EnemyID {
	upper := strings.ToUpper(s)
	if val, ok := enemyStringToID[upper]; ok {
		return val
	}
	return EnemyNone
}

// String реализует интерфейс Stringer
func (e EnemyID) String() string {
	if val, ok := enemyIDToString[e]; ok {
		return val
	}
	return "NONE"
}

// Roster - полный список уникальных врагов забега.
// Победа засчитывается, когда побежден каждый из них.
var Roster = []EnemyID{EnemyGoblin, EnemyOrc, EnemyMinotaur, EnemyDragon}

// EnemyStats - шаблон характеристик вида врага.
type EnemyStats struct {
	MaxHP  int
	Attack int
	Score  int
}

// EnemyTable - дефолтные характеристики врагов, конфиг может переопределить.
var EnemyTable = map[EnemyID]EnemyStats{
	EnemyGoblin:   {MaxHP: 30, Attack: 5, Score: 30},
	EnemyOrc:      {MaxHP: 70, Attack: 8, Score: 70},
	EnemyMinotaur: {MaxHP: 100, Attack: 10, Score: 100},
	EnemyDragon:   {MaxHP: 200, Attack: 30, Score: 200},
}

// DisplayEnemyName - отображаемые имена врагов (pt-BR).
var DisplayEnemyName = map[EnemyID]string{
	EnemyGoblin:   "Goblin",
	EnemyOrc:      "Orc",
	EnemyMinotaur: "Minotauro",
	EnemyDragon:   "Dragão",
}

// Drop - одна позиция добычи с побежденного врага.
type Drop struct {
	Card CardID
	Qty  int
}

// DropTable - дефолтная добыча с каждого врага.
var DropTable = map[EnemyID][]Drop{
	EnemyGoblin:   {{CardCoin, 5}, {CardCoins, 3}},
	EnemyOrc:      {{CardCoin, 5}, {CardCoins, 7}},
	EnemyMinotaur: {{CardCoin, 5}, {CardCoins, 2}, {CardMultiCoins, 1}},
	EnemyDragon:   {{CardCoin, 10}, {CardCoins, 4}, {CardMultiCoins, 3}},
}

// IsBoss сообщает, нужна ли для врага особая звуковая заставка.
func (e EnemyID) IsBoss() bool {
	return e == EnemyDragon
}

// Name возвращает отображаемое имя или техническую строку.
func (e EnemyID) Name() string {
	if n, ok := DisplayEnemyName[e]; ok {
		return n
	}
	return e.String()
}

// Enemy - живой экземпляр врага в текущем бою.
type Enemy struct {
	ID     EnemyID
	HP     int
	MaxHP  int
	Attack int
	Score  int
}

// NewEnemy создает свежий экземпляр врага из шаблона характеристик.
// HP всегда полные: повторный трекинг того же маркера после побега
// начинает бой заново.
func NewEnemy(id EnemyID, stats EnemyStats) *Enemy {
	return &Enemy{
		ID:     id,
		HP:     stats.MaxHP,
		MaxHP:  stats.MaxHP,
		Attack: stats.Attack,
		Score:  stats.Score,
	}
}
