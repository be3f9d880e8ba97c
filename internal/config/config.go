package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/WendellNunes/RogueLibras/internal/domain"
)

// Config - полный набор параметров забега. Все значения имеют дефолты,
// YAML-файл переопределяет их частично.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Player struct {
		MaxHP      int `yaml:"maxHp"`
		StartHP    int `yaml:"startHp"`
		StartMoney int `yaml:"startMoney"`
	} `yaml:"player"`

	Tracking struct {
		// DebounceSeconds - минимальный интервал между событиями трекинга
		// одного рода. Дребезг AR-маркеров иначе дублирует команды.
		DebounceSeconds float64 `yaml:"debounceSeconds"`

		// LockEnemy - удерживать ли врага до конца боя, даже если
		// маркер пропал из кадра.
		LockEnemy *bool `yaml:"lockEnemy"`
	} `yaml:"tracking"`

	Battle struct {
		EnemyAttackDelaySeconds float64 `yaml:"enemyAttackDelaySeconds"`
		FastAnswerSeconds       float64 `yaml:"fastAnswerSeconds"`
		MissChanceIfFast        float64 `yaml:"missChanceIfFast"`
	} `yaml:"battle"`

	Inventory struct {
		// Enforce - требовать наличие карты в сумке перед использованием.
		Enforce *bool `yaml:"enforce"`

		// Starting - стартовая сумка по идентификаторам карт.
		Starting map[string]int `yaml:"starting"`
	} `yaml:"inventory"`

	UI struct {
		ButtonDelaySeconds float64 `yaml:"buttonDelaySeconds"`
	} `yaml:"ui"`

	// Enemies переопределяет характеристики врагов по именам.
	Enemies map[string]EnemyConfig `yaml:"enemies"`

	// Drops переопределяет добычу: имя врага -> карта -> количество.
	Drops map[string]map[string]int `yaml:"drops"`

	Shop struct {
		Prices map[string]int `yaml:"prices"`
		Stock  map[string]int `yaml:"stock"`
	} `yaml:"shop"`

	// Exchange переопределяет номиналы валютных карт.
	Exchange map[string]int `yaml:"exchange"`

	Quiz struct {
		// Videos - контент вопросов: карта -> ролик жеста и пул неверных.
		Videos map[string]QuizVideoConfig `yaml:"videos"`
	} `yaml:"quiz"`

	Scenes struct {
		Victory  int `yaml:"victory"`
		GameOver int `yaml:"gameOver"`
	} `yaml:"scenes"`

	Replay struct {
		Dir string `yaml:"dir"`
	} `yaml:"replay"`
}

// EnemyConfig переопределяет характеристики одного врага.
type EnemyConfig struct {
	MaxHP  int `yaml:"maxHp"`
	Attack int `yaml:"attack"`
	Score  int `yaml:"score"`
}

// QuizVideoConfig - контент вопроса для одной карты.
type QuizVideoConfig struct {
	Correct string   `yaml:"correct"`
	Wrong   []string `yaml:"wrong"`
}

// Default возвращает конфиг с дефолтами забега.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Player.MaxHP = 100
	cfg.Player.StartHP = 100
	cfg.Player.StartMoney = 100
	cfg.Tracking.DebounceSeconds = 0.3
	cfg.Battle.EnemyAttackDelaySeconds = 0.5
	cfg.Battle.FastAnswerSeconds = 2.0
	cfg.Battle.MissChanceIfFast = 0.35
	cfg.UI.ButtonDelaySeconds = 0.2
	cfg.Scenes.Victory = 2
	cfg.Scenes.GameOver = 2
	cfg.Replay.Dir = "replays"
	cfg.Inventory.Starting = map[string]int{
		"APPLE": 5, "BREAD": 5, "ESCAPE": 5,
		"FIRE": 5, "WATER": 5, "ROCK": 5, "THUNDER": 5,
	}
	cfg.Shop.Prices = map[string]int{
		"ESCAPE": 100,
		"WATER":  50, "FIRE": 50, "ROCK": 50, "THUNDER": 50,
		"APPLE": 30, "BREAD": 15,
	}
	cfg.Shop.Stock = map[string]int{
		"ESCAPE": 5,
		"WATER":  5, "FIRE": 5, "ROCK": 5, "THUNDER": 5,
		"APPLE": 5, "BREAD": 5,
	}
	return cfg
}

// Load читает YAML поверх дефолтов. Пустой путь означает чистые дефолты.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// LockEnemy - см. Tracking.LockEnemy, по умолчанию true.
func (c *Config) LockEnemy() bool { return boolOr(c.Tracking.LockEnemy, true) }

// EnforceInventory - см. Inventory.Enforce, по умолчанию true.
func (c *Config) EnforceInventory() bool { return boolOr(c.Inventory.Enforce, true) }

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// TrackDebounce - окно дебаунса трекинга.
func (c *Config) TrackDebounce() time.Duration { return seconds(c.Tracking.DebounceSeconds) }

// EnemyAttackDelay - пауза перед ответной атакой врага.
func (c *Config) EnemyAttackDelay() time.Duration { return seconds(c.Battle.EnemyAttackDelaySeconds) }

// FastAnswerWindow - окно быстрого ответа, дающее шанс промаха врага.
func (c *Config) FastAnswerWindow() time.Duration { return seconds(c.Battle.FastAnswerSeconds) }

// ButtonDelay - задержка срабатывания кнопок интерфейса.
func (c *Config) ButtonDelay() time.Duration { return seconds(c.UI.ButtonDelaySeconds) }

// Tables - разрешенные типизированные таблицы правил:
// дефолты домена, поверх которых применены переопределения из YAML.
type Tables struct {
	Enemies  map[domain.EnemyID]domain.EnemyStats
	Drops    map[domain.EnemyID][]domain.Drop
	Damage   map[domain.CardID]int
	Heal     map[domain.CardID]int
	Exchange map[domain.CardID]int
	Prices   map[domain.CardID]int
	Stock    map[domain.CardID]int
	Starting map[domain.CardID]int
}

// Resolve собирает таблицы правил и проверяет их полноту.
// Любая дыра в таблицах - ошибка старта, а не паника посреди боя.
func (c *Config) Resolve() (*Tables, error) {
	t := &Tables{
		Enemies:  make(map[domain.EnemyID]domain.EnemyStats),
		Drops:    make(map[domain.EnemyID][]domain.Drop),
		Damage:   make(map[domain.CardID]int),
		Heal:     make(map[domain.CardID]int),
		Exchange: make(map[domain.CardID]int),
		Prices:   make(map[domain.CardID]int),
		Stock:    make(map[domain.CardID]int),
		Starting: make(map[domain.CardID]int),
	}

	for id, stats := range domain.EnemyTable {
		t.Enemies[id] = stats
	}
	for name, over := range c.Enemies {
		id := domain.ParseEnemy(name)
		if id == domain.EnemyNone {
			return nil, fmt.Errorf("config: unknown enemy %q", name)
		}
		stats := t.Enemies[id]
		if over.MaxHP > 0 {
			stats.MaxHP = over.MaxHP
		}
		if over.Attack > 0 {
			stats.Attack = over.Attack
		}
		if over.Score > 0 {
			stats.Score = over.Score
		}
		t.Enemies[id] = stats
	}

	for id, drops := range domain.DropTable {
		t.Drops[id] = append([]domain.Drop(nil), drops...)
	}
	for name, table := range c.Drops {
		id := domain.ParseEnemy(name)
		if id == domain.EnemyNone {
			return nil, fmt.Errorf("config: unknown enemy %q in drops", name)
		}
		var drops []domain.Drop
		for cardName, qty := range table {
			card := domain.ParseCard(cardName)
			if card == domain.CardNone {
				return nil, fmt.Errorf("config: unknown card %q in drops for %s", cardName, name)
			}
			drops = append(drops, domain.Drop{Card: card, Qty: qty})
		}
		t.Drops[id] = drops
	}

	for card, v := range domain.AttackDamage {
		t.Damage[card] = v
	}
	for card, v := range domain.HealAmount {
		t.Heal[card] = v
	}
	for card, v := range domain.ExchangeRate {
		t.Exchange[card] = v
	}
	for name, v := range c.Exchange {
		card := domain.ParseCard(name)
		if card == domain.CardNone || !card.IsCurrency() {
			return nil, fmt.Errorf("config: %q is not a currency card", name)
		}
		t.Exchange[card] = v
	}

	for name, price := range c.Shop.Prices {
		card := domain.ParseCard(name)
		if card == domain.CardNone {
			return nil, fmt.Errorf("config: unknown card %q in shop prices", name)
		}
		t.Prices[card] = price
	}
	for name, qty := range c.Shop.Stock {
		card := domain.ParseCard(name)
		if card == domain.CardNone {
			return nil, fmt.Errorf("config: unknown card %q in shop stock", name)
		}
		t.Stock[card] = qty
	}
	for name, qty := range c.Inventory.Starting {
		card := domain.ParseCard(name)
		if card == domain.CardNone {
			return nil, fmt.Errorf("config: unknown card %q in starting inventory", name)
		}
		t.Starting[card] = qty
	}

	// Полнота: каждый враг ростера имеет характеристики и добычу,
	// каждая позиция витрины имеет цену.
	for _, id := range domain.Roster {
		stats, ok := t.Enemies[id]
		if !ok || stats.MaxHP <= 0 || stats.Attack < 0 {
			return nil, fmt.Errorf("config: incomplete stats for enemy %s", id)
		}
		if _, ok := t.Drops[id]; !ok {
			return nil, fmt.Errorf("config: no drop table for enemy %s", id)
		}
	}
	for card := range t.Stock {
		if _, ok := t.Prices[card]; !ok {
			return nil, fmt.Errorf("config: card %s is stocked but has no price", card)
		}
	}
	if c.Player.MaxHP <= 0 || c.Player.StartHP <= 0 || c.Player.StartHP > c.Player.MaxHP {
		return nil, fmt.Errorf("config: invalid player hp bounds")
	}
	if c.Battle.MissChanceIfFast < 0 || c.Battle.MissChanceIfFast > 1 {
		return nil, fmt.Errorf("config: missChanceIfFast must be within [0,1]")
	}

	return t, nil
}
