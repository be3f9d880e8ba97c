package engine

import (
	"sync/atomic"
	"time"
)

// Scheduler доставляет отложенные колбэки обратно в горутину движка.
// Таймер срабатывает в своей горутине, но сам колбэк кладется в канал,
// который вычитывает игровой цикл. Так вся мутация состояния остается
// однопоточной.
//
// В режиме immediate колбэки выполняются синхронно, без таймеров.
// Это нужно реплеям и тестам, где реальные паузы бессмысленны.
type Scheduler struct {
	fire      chan func()
	immediate bool
}

// NewScheduler создает планировщик реального времени.
func NewScheduler() *Scheduler {
	return &Scheduler{fire: make(chan func(), 16)}
}

// NewImmediateScheduler создает планировщик без пауз.
func NewImmediateScheduler() *Scheduler {
	return &Scheduler{fire: make(chan func(), 16), immediate: true}
}

// C возвращает канал колбэков для select игрового цикла.
func (s *Scheduler) C() <-chan func() {
	return s.fire
}

// TimerHandle позволяет отменить запланированный колбэк.
// Отмена после срабатывания таймера, но до выполнения колбэка,
// тоже подавляет его: колбэк проверяет флаг уже в горутине движка.
type TimerHandle struct {
	cancelled atomic.Bool
	timer     *time.Timer
}

// Cancel отменяет колбэк. Безопасен на nil и после срабатывания.
func (h *TimerHandle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled.Store(true)
	if h.timer != nil {
		h.timer.Stop()
	}
}

// After планирует fn через d. В режиме immediate fn выполняется сразу
// и возвращается nil (Cancel на nil безопасен).
func (s *Scheduler) After(d time.Duration, fn func()) *TimerHandle {
	if s.immediate {
		fn()
		return nil
	}
	h := &TimerHandle{}
	h.timer = time.AfterFunc(d, func() {
		s.fire <- func() {
			if h.cancelled.Load() {
				return
			}
			fn()
		}
	})
	return h
}
