package engine

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/WendellNunes/RogueLibras/internal/config"
	"github.com/WendellNunes/RogueLibras/internal/domain"
	"github.com/WendellNunes/RogueLibras/internal/network"
	"github.com/WendellNunes/RogueLibras/internal/systems"
	"github.com/WendellNunes/RogueLibras/pkg/api"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

// quizMode - откуда был запущен вопрос. От режима зависит, что происходит
// с картами при верном и неверном ответе.
type quizMode uint8

const (
	quizNone quizMode = iota
	quizBattle
	quizShopCurrency
	quizShopItem
	quizIntermissionUse
)

// GameService - движок одного забега. Все состояние принадлежит одной
// горутине игрового цикла: команды извне приходят через CommandChan,
// отложенные колбэки - через планировщик.
type GameService struct {
	cfg    *config.Config
	tables *config.Tables

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	handlers map[domain.ActionType]handlerFunc
	sched    *Scheduler
	now      func() time.Time
	rng      *rand.Rand
	audio    AudioSink
	scenes   SceneRouter

	player    domain.PlayerStats
	inventory *systems.Inventory
	progress  *systems.ProgressTracker
	session   *systems.RunSession
	shop      *systems.Shop
	gate      *systems.QuizGate

	state  domain.GameState
	banner string

	// Бой.
	enemy        *domain.Enemy
	enemyTracked bool
	enemyLocked  bool

	attackPressed bool
	armedCard     domain.CardID
	cardTracked   bool

	// Транзиент открытого вопроса.
	quizMode    quizMode
	quizCard    domain.CardID
	quizQty     int
	quizReturn  domain.GameState
	quizStarted time.Time
	correctIsA  bool

	// Следующая атака врага может промахнуться (быстрый ответ).
	missArmed bool

	// Защелка кнопок: пока идет задержка срабатывания, повторные
	// нажатия игнорируются.
	uiBusy bool

	attackTimer *TimerHandle

	lastEnemyTrack time.Time
	lastCardTrack  time.Time

	pendingCues  []string
	pendingScene *int

	// Запись реплея. В режиме воспроизведения выключена.
	seed      int64
	recording bool
	replay    *domain.ReplaySession
	tick      int

	quit chan struct{}
}

// NewService создает движок забега. Таблицы правил разрешаются и
// проверяются здесь: кривой конфиг убивает процесс на старте.
func NewService(cfg *config.Config, seed int64) (*GameService, error) {
	tables, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	s := &GameService{
		cfg:         cfg,
		tables:      tables,
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.ActionType]handlerFunc),
		sched:       NewScheduler(),
		now:         time.Now,
		rng:         rand.New(rand.NewSource(seed)),
		seed:        seed,
		recording:   true,
		quit:        make(chan struct{}),
	}
	s.audio = snapshotAudio{s}
	s.scenes = snapshotScenes{s}

	s.inventory = systems.NewInventory()
	s.progress = systems.NewProgressTracker(domain.Roster)
	s.session = systems.NewRunSession(func() time.Time { return s.now() })
	s.shop = systems.NewShop(tables.Prices, tables.Stock, &s.player)
	s.gate = systems.NewQuizGate(s.rng, quizContent(cfg))

	s.registerHandlers()
	s.resetRun()
	return s, nil
}

func quizContent(cfg *config.Config) map[domain.CardID]systems.QuizContent {
	out := make(map[domain.CardID]systems.QuizContent)
	for name, v := range cfg.Quiz.Videos {
		card := domain.ParseCard(name)
		if card == domain.CardNone {
			continue
		}
		out[card] = systems.QuizContent{Correct: v.Correct, Wrong: v.Wrong}
	}
	return out
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = withEmptyPayload(s.handleInit)
	s.handlers[domain.ActionTrackEnemy] = withPayload(s.handleTrackEnemy)
	s.handlers[domain.ActionEnemyLost] = withEmptyPayload(s.handleEnemyLost)
	s.handlers[domain.ActionTrackCard] = withPayload(s.handleTrackCard)
	s.handlers[domain.ActionCardLost] = withEmptyPayload(s.handleCardLost)
	s.handlers[domain.ActionAttack] = withEmptyPayload(s.handleAttack)
	s.handlers[domain.ActionPass] = withEmptyPayload(s.handlePass)
	s.handlers[domain.ActionUse] = withEmptyPayload(s.handleUse)
	s.handlers[domain.ActionChallenge] = withEmptyPayload(s.handleChallenge)
	s.handlers[domain.ActionAnswer] = withPayload(s.handleAnswer)
	s.handlers[domain.ActionEnterShop] = withEmptyPayload(s.handleEnterShop)
	s.handlers[domain.ActionShopSelect] = withPayload(s.handleShopSelect)
	s.handlers[domain.ActionShopAdjust] = withPayload(s.handleShopAdjust)
	s.handlers[domain.ActionShopBuy] = withEmptyPayload(s.handleShopBuy)
	s.handlers[domain.ActionShopCancel] = withEmptyPayload(s.handleShopCancel)
	s.handlers[domain.ActionShopUse] = withPayload(s.handleShopUse)
	s.handlers[domain.ActionBagUse] = withPayload(s.handleBagUse)
}

// Start запускает игровой цикл в отдельной горутине.
func (s *GameService) Start() {
	go s.Run()
}

// Run - игровой цикл. Единственное место, где мутируется состояние забега.
func (s *GameService) Run() {
	logger.Log.WithField("component", "engine").Info("Game loop started.")
	for {
		select {
		case cmd := <-s.CommandChan:
			s.dispatch(cmd)
		case fn := <-s.sched.C():
			fn()
			s.publishUpdate()
		case <-s.quit:
			logger.Log.WithField("component", "engine").Info("Game loop stopped.")
			return
		}
	}
}

// Stop останавливает игровой цикл.
func (s *GameService) Stop() {
	close(s.quit)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket, агент).
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown action.")
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Payload: externalCmd.Payload,
	}
}

// Apply выполняет команду синхронно. Используется воспроизведением реплея
// и тестами: вызывать можно только до Start или из горутины цикла.
func (s *GameService) Apply(cmd domain.InternalCommand) {
	s.dispatch(cmd)
}

// dispatch выполняет хендлер команды и рассылает свежий снимок.
func (s *GameService) dispatch(cmd domain.InternalCommand) {
	s.tick++
	if s.recording {
		s.replay.Actions = append(s.replay.Actions, domain.ReplayAction{
			Tick:    s.tick,
			Action:  cmd.Action,
			Payload: cmd.Payload,
		})
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}
	if err := handler(cmd.Payload); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"action":    cmd.Action.String(),
		}).WithError(err).Warn("Command rejected.")
	}

	s.publishUpdate()
}

// publishUpdate рассылает снимок состояния всем подписчикам.
func (s *GameService) publishUpdate() {
	s.Hub.Broadcast(*s.buildState())
	s.pendingCues = nil
	s.pendingScene = nil
}

// resetRun возвращает забег к исходному состоянию: полные HP, стартовые
// деньги и сумка, чистый прогресс, свежая витрина, нулевой счет и время.
func (s *GameService) resetRun() {
	s.player = domain.PlayerStats{
		HP:    s.cfg.Player.StartHP,
		MaxHP: s.cfg.Player.MaxHP,
		Money: s.cfg.Player.StartMoney,
	}
	s.inventory.Reset(s.tables.Starting)
	s.progress.Reset()
	s.shop.Reset(s.tables.Stock)
	s.session.StartRun()

	s.enemy = nil
	s.enemyTracked = false
	s.enemyLocked = false
	s.clearTurnTransients()
	s.missArmed = false
	s.uiBusy = false
	s.attackTimer.Cancel()
	s.attackTimer = nil
	s.gate.StopQuestion()
	s.quizMode = quizNone

	s.tick = 0
	s.replay = &domain.ReplaySession{
		Seed:      s.seed,
		Timestamp: s.now().Unix(),
	}

	s.enterState(domain.StateAwaitEnemyTracking)

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      s.seed,
	}).Info("Run reset.")
}

func (s *GameService) clearTurnTransients() {
	s.attackPressed = false
	s.cardTracked = false
	s.armedCard = domain.CardNone
}

// handleInit: на подключении клиент получает текущий снимок (его рассылает
// dispatch). Из финальных состояний INIT начинает новый забег.
func (s *GameService) handleInit() error {
	if s.state.Terminal() {
		s.resetRun()
	}
	return nil
}

// enterState переводит автомат в новое состояние и выставляет
// дефолтный баннер. Хендлеры могут заменить баннер после перехода.
func (s *GameService) enterState(st domain.GameState) {
	prev := s.state
	s.state = st

	switch st {
	case domain.StateAwaitEnemyTracking, domain.StateAwaitActionTracking:
		s.banner = "Rastreando"
	case domain.StateBattleReady:
		s.banner = "Encontrado"
	case domain.StateQuiz:
		s.banner = "Responda"
	case domain.StateEnemyTurn:
		s.banner = "Inimigo"
	case domain.StateShop:
		s.banner = "Lojinha"
	case domain.StateIntermission:
		s.banner = ""
	case domain.StateVictory:
		s.banner = "Vitória!"
	case domain.StateGameOver:
		s.banner = "Game Over!"
	}

	if st.Terminal() {
		s.session.StopRun()
		if st == domain.StateVictory {
			s.scenes.RequestScene(s.cfg.Scenes.Victory)
		} else {
			s.scenes.RequestScene(s.cfg.Scenes.GameOver)
		}
	}

	if prev != st {
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"from":      prev.String(),
			"to":        st.String(),
		}).Debug("State transition.")
	}
}

// delayedButton реализует задержку срабатывания кнопок интерфейса.
// Пока задержка идет, повторные нажатия любых кнопок игнорируются.
func (s *GameService) delayedButton(fn func()) {
	if s.uiBusy {
		return
	}
	s.uiBusy = true
	s.sched.After(s.cfg.ButtonDelay(), func() {
		s.uiBusy = false
		fn()
	})
}

// ReplaySnapshot возвращает копию записанного реплея.
func (s *GameService) ReplaySnapshot() domain.ReplaySession {
	rs := domain.ReplaySession{
		Seed:      s.replay.Seed,
		Timestamp: s.replay.Timestamp,
	}
	rs.Actions = append(rs.Actions, s.replay.Actions...)
	return rs
}

// SetImmediate переводит движок в режим без пауз (реплей, автоигра).
// Вызывать до Start.
func (s *GameService) SetImmediate() {
	s.sched = NewImmediateScheduler()
}

// SetRecording включает или выключает запись реплея. Вызывать до Start.
func (s *GameService) SetRecording(on bool) {
	s.recording = on
}

// State возвращает текущее состояние автомата.
func (s *GameService) State() domain.GameState {
	return s.state
}
