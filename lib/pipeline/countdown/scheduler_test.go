package countdown

import (
	"context"
	"hr-pipeline-backend/models"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// steppingClock на каждый вызов сдвигает время на step
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

type recorder struct {
	mu        sync.Mutex
	ticks     []Tick
	completed []Tick
}

func (r *recorder) onTick(t Tick) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, t)
}

func (r *recorder) onComplete(t Tick) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = append(r.completed, t)
}

func (r *recorder) snapshot() ([]Tick, []Tick) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Tick{}, r.ticks...), append([]Tick{}, r.completed...)
}

func waitDone(t *testing.T, s *Scheduler) {
	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("countdown did not stop")
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}

var base = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func TestScheduler(t *testing.T) {
	t.Run(`count down to end check`, func(t *testing.T) {
		clock := &steppingClock{now: base, step: time.Second}
		rec := &recorder{}
		window := models.AssessmentWindow{IsWithinWindow: true, End: ptr(base.Add(3 * time.Second))}
		s := New(window, rec.onTick, rec.onComplete, WithInterval(5*time.Millisecond), WithClock(clock.Now))
		s.Start(context.Background())
		waitDone(t, s)

		ticks, completed := rec.snapshot()
		require.Len(t, completed, 1)
		require.Len(t, ticks, 3)
		require.Equal(t, []time.Duration{2 * time.Second, time.Second, 0}, []time.Duration{ticks[0].Remaining, ticks[1].Remaining, ticks[2].Remaining})
		for idx, tick := range ticks {
			require.Equal(t, models.CountdownPhaseToEnd, tick.Phase)
			if idx > 0 {
				require.False(t, tick.At.Before(ticks[idx-1].At))
			}
		}
		require.Equal(t, "0m 0s", completed[0].Text)

		// тики после завершения и повторная отмена ничего не делают
		s.Cancel()
		s.Cancel()
		ticks, completed = rec.snapshot()
		require.Len(t, ticks, 3)
		require.Len(t, completed, 1)
	})

	t.Run(`count down to start check`, func(t *testing.T) {
		clock := &steppingClock{now: base, step: time.Minute}
		rec := &recorder{}
		window := models.AssessmentWindow{
			IsBeforeStart: true,
			Start:         ptr(base.Add(2 * time.Minute)),
			End:           ptr(base.Add(time.Hour)),
		}
		s := New(window, rec.onTick, rec.onComplete, WithInterval(5*time.Millisecond), WithClock(clock.Now))
		s.Start(context.Background())
		waitDone(t, s)

		ticks, completed := rec.snapshot()
		require.Len(t, completed, 1)
		require.Equal(t, models.CountdownPhaseToStart, completed[0].Phase)
		require.Equal(t, base.Add(2*time.Minute), *completed[0].Target)
		for _, tick := range ticks {
			require.Equal(t, models.CountdownPhaseToStart, tick.Phase)
		}
	})

	t.Run(`cancel check`, func(t *testing.T) {
		rec := &recorder{}
		window := models.AssessmentWindow{IsWithinWindow: true, End: ptr(time.Now().Add(time.Hour))}
		s := New(window, rec.onTick, rec.onComplete, WithInterval(time.Hour))
		s.Start(context.Background())
		s.Cancel()
		waitDone(t, s)
		s.Cancel()

		ticks, completed := rec.snapshot()
		require.LessOrEqual(t, len(ticks), 1)
		require.Empty(t, completed)
	})

	t.Run(`done waits for running tick check`, func(t *testing.T) {
		entered := make(chan struct{}, 1)
		release := make(chan struct{})
		var finished bool
		var mu sync.Mutex
		var once sync.Once
		onTick := func(Tick) {
			once.Do(func() {
				entered <- struct{}{}
				<-release
			})
			mu.Lock()
			finished = true
			mu.Unlock()
		}
		window := models.AssessmentWindow{IsWithinWindow: true, End: ptr(time.Now().Add(time.Hour))}
		s := New(window, onTick, nil, WithInterval(time.Hour))
		s.Start(context.Background())
		<-entered
		s.Cancel()

		select {
		case <-s.Done():
			require.Fail(t, "Done closed while onTick is still running")
		case <-time.After(20 * time.Millisecond):
		}
		close(release)
		waitDone(t, s)
		mu.Lock()
		defer mu.Unlock()
		require.True(t, finished)
	})

	t.Run(`context cancel check`, func(t *testing.T) {
		rec := &recorder{}
		ctx, cancel := context.WithCancel(context.Background())
		window := models.AssessmentWindow{IsWithinWindow: true, End: ptr(time.Now().Add(time.Hour))}
		s := New(window, rec.onTick, rec.onComplete, WithInterval(time.Hour))
		s.Start(ctx)
		cancel()
		waitDone(t, s)
		_, completed := rec.snapshot()
		require.Empty(t, completed)
	})

	t.Run(`cancel before start check`, func(t *testing.T) {
		rec := &recorder{}
		s := New(models.AssessmentWindow{End: ptr(time.Now().Add(time.Hour))}, rec.onTick, rec.onComplete)
		s.Cancel()
		s.Start(context.Background())
		waitDone(t, s)
		ticks, completed := rec.snapshot()
		require.Empty(t, ticks)
		require.Empty(t, completed)
	})

	t.Run(`nothing to count down check`, func(t *testing.T) {
		clock := &steppingClock{now: base, step: time.Second}
		rec := &recorder{}
		window := models.AssessmentWindow{IsAfterEnd: true, End: ptr(base.Add(-time.Hour))}
		s := New(window, rec.onTick, rec.onComplete, WithInterval(5*time.Millisecond), WithClock(clock.Now))
		s.Start(context.Background())
		waitDone(t, s)
		ticks, completed := rec.snapshot()
		require.Len(t, ticks, 1)
		require.Equal(t, models.CountdownPhaseNone, ticks[0].Phase)
		require.Empty(t, completed)
	})
}

func TestPhaseOf(t *testing.T) {
	t.Run(`phase check`, func(t *testing.T) {
		window := models.AssessmentWindow{Start: ptr(base), End: ptr(base.Add(time.Hour))}
		phase, target := PhaseOf(window, base.Add(-time.Second))
		require.Equal(t, models.CountdownPhaseToStart, phase)
		require.Equal(t, base, *target)

		phase, target = PhaseOf(window, base)
		require.Equal(t, models.CountdownPhaseToEnd, phase)
		require.Equal(t, base.Add(time.Hour), *target)

		phase, target = PhaseOf(window, base.Add(2*time.Hour))
		require.Equal(t, models.CountdownPhaseNone, phase)
		require.Nil(t, target)

		phase, _ = PhaseOf(models.AssessmentWindow{}, base)
		require.Equal(t, models.CountdownPhaseNone, phase)
	})
}

func TestFormatDuration(t *testing.T) {
	t.Run(`format check`, func(t *testing.T) {
		require.Equal(t, "2d 3h 4m", FormatDuration(2*24*time.Hour+3*time.Hour+4*time.Minute+5*time.Second))
		require.Equal(t, "1d 0h 0m", FormatDuration(24*time.Hour))
		require.Equal(t, "5h 6m 7s", FormatDuration(5*time.Hour+6*time.Minute+7*time.Second))
		require.Equal(t, "59m 59s", FormatDuration(time.Hour-time.Second))
		require.Equal(t, "0m 1s", FormatDuration(1500*time.Millisecond))
		require.Equal(t, "0m 0s", FormatDuration(-time.Minute))
	})
}
