package systems

import (
	"testing"

	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

func init() {
	logger.Init()
}

func TestDealDamageClampsAtZero(t *testing.T) {
	enemy := domain.NewEnemy(domain.EnemyGoblin, domain.EnemyTable[domain.EnemyGoblin])
	enemy.HP = 5

	if !DealDamageToEnemy(enemy, 10) {
		t.Error("overkill damage must defeat the enemy")
	}
	if enemy.HP != 0 {
		t.Errorf("enemy hp = %d, want 0", enemy.HP)
	}
}

func TestDealDamagePartial(t *testing.T) {
	enemy := domain.NewEnemy(domain.EnemyOrc, domain.EnemyTable[domain.EnemyOrc])

	if DealDamageToEnemy(enemy, 10) {
		t.Error("partial damage must not defeat")
	}
	if enemy.HP != 60 {
		t.Errorf("enemy hp = %d, want 60", enemy.HP)
	}
}

func TestEnemyStrike(t *testing.T) {
	enemy := domain.NewEnemy(domain.EnemyDragon, domain.EnemyTable[domain.EnemyDragon])
	player := &domain.PlayerStats{HP: 25, MaxHP: 100}

	// Урон дракона 30 > 25 HP: смерть с прижимом к нулю
	if !EnemyStrike(enemy, player) {
		t.Error("strike must kill the player")
	}
	if player.HP != 0 {
		t.Errorf("player hp = %d, want 0", player.HP)
	}
}

func TestHealPlayerClamp(t *testing.T) {
	player := &domain.PlayerStats{HP: 95, MaxHP: 100}
	HealPlayer(player, 10)
	if player.HP != 100 {
		t.Errorf("player hp = %d, want 100", player.HP)
	}
}
