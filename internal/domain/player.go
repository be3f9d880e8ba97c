package domain

// PlayerStats - ресурсы игрока в текущем забеге.
type PlayerStats struct {
	HP    int
	MaxHP int
	Money int
}

// TakeDamage снимает HP с нижней границей в ноль.
// Возвращает true, если игрок погиб этим ударом.
func (p *PlayerStats) TakeDamage(amount int) bool {
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	return p.HP == 0
}

// Heal восстанавливает HP с верхней границей MaxHP.
func (p *PlayerStats) Heal(amount int) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// TrySpend списывает деньги, если их достаточно.
func (p *PlayerStats) TrySpend(amount int) bool {
	if p.Money < amount {
		return false
	}
	p.Money -= amount
	return true
}

// AddMoney начисляет деньги.
func (p *PlayerStats) AddMoney(amount int) {
	p.Money += amount
}
