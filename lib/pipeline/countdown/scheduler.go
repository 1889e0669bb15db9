package countdown

import (
	"context"
	"fmt"
	"hr-pipeline-backend/models"
	"runtime/debug"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Tick состояние обратного отсчета на момент At
type Tick struct {
	Phase     models.CountdownPhase
	Target    *time.Time
	Remaining time.Duration
	Text      string
	At        time.Time
}

type Option func(s *Scheduler)

func WithInterval(interval time.Duration) Option {
	return func(s *Scheduler) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Scheduler обратный отсчет для одного отображаемого окна оценки.
// Все вызовы onTick/onComplete выполняются последовательно из одной горутины
type Scheduler struct {
	window     models.AssessmentWindow
	onTick     func(Tick)
	onComplete func(Tick)
	interval   time.Duration
	now        func() time.Time
	logger     *log.Entry

	mu       sync.Mutex
	started  bool
	canceled bool
	cancelFn context.CancelFunc
	done     chan struct{}

	phase     models.CountdownPhase
	target    *time.Time
	completed bool
}

func New(window models.AssessmentWindow, onTick func(Tick), onComplete func(Tick), opts ...Option) *Scheduler {
	s := &Scheduler{
		window:     window,
		onTick:     onTick,
		onComplete: onComplete,
		interval:   time.Second,
		now:        time.Now,
		logger:     log.WithField("worker_name", "AssessmentCountdown"),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start запускает отсчет. Первое вычисление выполняется сразу, далее раз в интервал.
// Повторный запуск и запуск после Cancel ничего не делают
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.canceled {
		return
	}
	s.started = true
	ctx, s.cancelFn = context.WithCancel(ctx)
	go s.run(ctx)
}

// Cancel останавливает отсчет и освобождает таймер. Повторный вызов ничего не делает.
// Уже выполняющийся onTick не прерывается, его завершение ждать через Done
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.canceled {
		return
	}
	s.canceled = true
	if s.cancelFn != nil {
		s.cancelFn()
	} else {
		close(s.done)
	}
}

// Done закрывается, когда отсчет завершен или отменен
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)
	defer func() {
		if r := recover(); r != nil {
			s.logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.phase, s.target = PhaseOf(s.window, s.now())
	if s.evaluate(ctx) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Отсчет остановлен")
			return
		case <-ticker.C:
			if s.evaluate(ctx) {
				return
			}
		}
	}
}

// evaluate публикует текущее состояние, возвращает true когда отсчет закончен
func (s *Scheduler) evaluate(ctx context.Context) (finished bool) {
	if s.completed || ctx.Err() != nil {
		return true
	}
	now := s.now()
	tick := Tick{
		Phase:  s.phase,
		Target: s.target,
		At:     now,
	}
	if s.target == nil {
		tick.Text = FormatDuration(0)
		s.publish(tick)
		return true
	}
	tick.Remaining = s.target.Sub(now)
	if tick.Remaining <= 0 {
		tick.Remaining = 0
		tick.Text = FormatDuration(0)
		s.completed = true
		s.publish(tick)
		if s.onComplete != nil {
			s.onComplete(tick)
		}
		return true
	}
	tick.Text = FormatDuration(tick.Remaining)
	s.publish(tick)
	return false
}

func (s *Scheduler) publish(tick Tick) {
	if s.onTick != nil {
		s.onTick(tick)
	}
}

// PhaseOf до какого момента ведется отсчет: до начала окна, до его конца или ни до чего
func PhaseOf(window models.AssessmentWindow, now time.Time) (models.CountdownPhase, *time.Time) {
	if window.Start != nil && now.Before(*window.Start) {
		return models.CountdownPhaseToStart, window.Start
	}
	if window.End != nil && !now.After(*window.End) {
		return models.CountdownPhaseToEnd, window.End
	}
	return models.CountdownPhaseNone, nil
}

// FormatDuration длительность в крупнейших подходящих единицах
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	switch {
	case days >= 1:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours >= 1:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	default:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
}
