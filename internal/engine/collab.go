package engine

// Звуковые события, которые движок отдает клиенту вместе со снимком.
const (
	CueCardAppear     = "card_appear"
	CueCardUse        = "card_use"
	CueEnemyAppear    = "enemy_appear"
	CueEnemyAttack    = "enemy_attack"
	CueEnemyDefeated  = "enemy_defeated"
	CuePlayerDefeated = "player_defeated"
	CueQuizCorrect    = "quiz_correct"
	CueQuizWrong      = "quiz_wrong"
	CueBossSequence   = "boss_sequence"
	CueIdleStop       = "idle_stop"
)

// AudioSink принимает звуковые события. Движок не знает, как они
// воспроизводятся: по умолчанию они накапливаются и уезжают в снимке.
type AudioSink interface {
	Cue(name string)
}

// SceneRouter принимает запросы перехода на финальные сцены.
type SceneRouter interface {
	RequestScene(index int)
}

// NopAudio глотает звуковые события.
type NopAudio struct{}

func (NopAudio) Cue(string) {}

// NopScenes глотает запросы сцен.
type NopScenes struct{}

func (NopScenes) RequestScene(int) {}

// snapshotAudio копит события для следующего снимка состояния.
type snapshotAudio struct {
	s *GameService
}

func (a snapshotAudio) Cue(name string) {
	a.s.pendingCues = append(a.s.pendingCues, name)
}

// snapshotScenes доставляет запрос сцены в следующий снимок.
type snapshotScenes struct {
	s *GameService
}

func (r snapshotScenes) RequestScene(index int) {
	idx := index
	r.s.pendingScene = &idx
}
