package systems

import (
	"github.com/WendellNunes/RogueLibras/internal/domain"
)

// ProgressTracker помнит, какие уникальные враги ростера уже побеждены.
// Повторная победа над тем же врагом прогресс не двигает.
type ProgressTracker struct {
	defeated map[domain.EnemyID]struct{}
	roster   []domain.EnemyID
}

// NewProgressTracker создает трекер для данного ростера.
func NewProgressTracker(roster []domain.EnemyID) *ProgressTracker {
	return &ProgressTracker{
		defeated: make(map[domain.EnemyID]struct{}),
		roster:   roster,
	}
}

// RegisterEnemyDefeated отмечает победу над врагом.
// Возвращает true ровно один раз: на вызове, которым ростер закрыт полностью.
func (t *ProgressTracker) RegisterEnemyDefeated(id domain.EnemyID) bool {
	before := len(t.defeated)
	t.defeated[id] = struct{}{}
	return before < len(t.roster) && len(t.defeated) == len(t.roster)
}

// Defeated сообщает, побежден ли данный враг.
func (t *ProgressTracker) Defeated(id domain.EnemyID) bool {
	_, ok := t.defeated[id]
	return ok
}

// UniqueDefeated возвращает число побежденных уникальных врагов.
func (t *ProgressTracker) UniqueDefeated() int {
	return len(t.defeated)
}

// Snapshot возвращает побежденных врагов в порядке ростера.
func (t *ProgressTracker) Snapshot() []domain.EnemyID {
	var out []domain.EnemyID
	for _, id := range t.roster {
		if t.Defeated(id) {
			out = append(out, id)
		}
	}
	return out
}

// Reset очищает прогресс для нового забега.
func (t *ProgressTracker) Reset() {
	t.defeated = make(map[domain.EnemyID]struct{})
}
