package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

// DealDamageToEnemy снимает HP врага с нижней границей в ноль.
// Возвращает true, если враг побежден этим ударом.
func DealDamageToEnemy(enemy *domain.Enemy, damage int) bool {
	hpBefore := enemy.HP
	enemy.HP -= damage
	if enemy.HP < 0 {
		enemy.HP = 0
	}
	defeated := enemy.HP == 0

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"enemy":     enemy.ID.String(),
		"damage":    damage,
		"hp_before": hpBefore,
		"hp_after":  enemy.HP,
		"defeated":  defeated,
	}).Info("Damage dealt to enemy.")

	return defeated
}

// EnemyStrike наносит удар врага по игроку.
// Возвращает true, если игрок погиб этим ударом.
func EnemyStrike(enemy *domain.Enemy, player *domain.PlayerStats) bool {
	hpBefore := player.HP
	died := player.TakeDamage(enemy.Attack)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"enemy":     enemy.ID.String(),
		"damage":    enemy.Attack,
		"hp_before": hpBefore,
		"hp_after":  player.HP,
		"died":      died,
	}).Info("Enemy strike resolved.")

	return died
}

// HealPlayer восстанавливает HP игрока.
func HealPlayer(player *domain.PlayerStats, amount int) {
	hpBefore := player.HP
	player.Heal(amount)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"amount":    amount,
		"hp_before": hpBefore,
		"hp_after":  player.HP,
	}).Info("Player healed.")
}
