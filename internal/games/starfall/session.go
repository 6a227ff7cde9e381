package starfall

import (
	"fmt"
	"time"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameOverMessage is shown while the session is in PhaseGameOver.
const GameOverMessage = "Game Over"

// Session owns everything one player's game needs: the ship, the clock,
// the three pools, the run records and the triggers driving them.
// It is not safe for concurrent use; a single loop calls Step.
type Session struct {
	cfg      config.StarfallConfig
	spawner  *Spawner
	detector Detector
	sched    *Scheduler
	diff     *config.DifficultyManager
	better   Comparator

	phase     Phase
	paused    bool
	ship      Ship
	clock     Clock
	asteroids *Pool
	bullets   *Pool
	energy    *Pool

	last    Record
	best    Record
	newBest bool
	runs    int

	status   string
	message  string
	cues     []core.Cue
	overlaps []Overlap
}

// NewSession creates a session on the title screen.
// A nil detector uses a BoxDetector sized from cfg.
func NewSession(cfg config.StarfallConfig, rng Random, detector Detector) *Session {
	if detector == nil {
		detector = NewBoxDetector(cfg)
	}
	s := &Session{
		cfg:       cfg,
		spawner:   NewSpawner(cfg, rng),
		detector:  detector,
		sched:     NewScheduler(),
		diff:      config.NewDifficultyManager(cfg.Difficulty),
		better:    ComparatorFor(cfg.Records.Compare),
		asteroids: NewPool(KindAsteroid, cfg.Asteroids.PoolSize),
		bullets:   NewPool(KindBullet, cfg.Bullets.PoolSize),
		energy:    NewPool(KindEnergy, cfg.Energy.PoolSize),
	}
	s.ship.reset(cfg)
	s.refreshStatus()
	return s
}

// Step runs one fixed simulation step of length dt and returns the cues
// raised during it. The returned slice is reused by the next call.
//
// Within a step: triggers fire, entities move and recycle, a fresh fire
// press launches a bullet, then overlaps are collected and resolved.
func (s *Session) Step(in core.InputFrame, dt time.Duration) []core.Cue {
	s.cues = s.cues[:0]

	if in.Has(core.ActionPause) && s.phase == PhasePlaying {
		s.paused = !s.paused
	}
	if s.paused {
		return s.cues
	}

	switch s.phase {
	case PhaseTitle:
		if in.Has(core.ActionConfirm) {
			s.startRun()
		}
	case PhasePlaying:
		s.sched.Advance(dt)
		if s.phase != PhasePlaying {
			break
		}
		s.move(in, dt)
		s.fire(in)
		s.collide()
	case PhaseGameOver:
		s.sched.Advance(dt)
	}
	return s.cues
}

func (s *Session) startRun() {
	s.sched.Disarm()

	s.clock.Reset()
	s.ship.reset(s.cfg)
	s.asteroids.Clear()
	s.bullets.Clear()
	s.energy.Clear()
	s.paused = false
	s.newBest = false
	s.message = ""
	s.runs++

	s.phase = PhasePlaying
	s.sched.Every(ms(s.cfg.Timing.SpawnIntervalMs), s.spawnWave)
	s.sched.Every(ms(s.cfg.Timing.ClockIntervalMs), s.tickClock)

	s.refreshStatus()
	s.emit(core.CueRunStart)
}

func (s *Session) gameOver() {
	if s.phase != PhasePlaying {
		return
	}
	s.sched.Disarm()
	s.phase = PhaseGameOver
	s.message = GameOverMessage

	s.last = s.clock.Record()
	if s.better(s.last, s.best) {
		s.best = s.last
		s.newBest = true
	}

	s.emit(core.CueGameOver)
	s.sched.After(ms(s.cfg.Timing.GameOverDelayMs), s.showTitle)
}

func (s *Session) showTitle() {
	s.sched.Disarm()
	s.phase = PhaseTitle
	s.message = ""
}

func (s *Session) spawnWave() {
	if s.phase != PhasePlaying {
		return
	}
	s.spawner.Wave(s.asteroids, s.energy, s.clock.TotalSeconds())
}

func (s *Session) tickClock() {
	if s.phase != PhasePlaying {
		return
	}
	s.clock.Tick()
	s.refreshStatus()
}

func (s *Session) move(in core.InputFrame, dt time.Duration) {
	secs := dt.Seconds()

	s.ship.Steer(in.IsDown(core.ActionLeft), in.IsDown(core.ActionRight), s.cfg.Ship.Speed)
	s.ship.move(secs, s.cfg.World.Width, s.cfg.Ship.Width)

	fall := s.diff.FallSpeed(s.cfg.Asteroids.FallSpeed, s.clock.TotalSeconds())
	bottom := float64(s.cfg.World.Height)
	s.asteroids.Each(func(h Handle, e *Entity) {
		e.Y += fall
		if e.Y > bottom {
			s.asteroids.Release(h)
		}
	})
	s.energy.Each(func(h Handle, e *Entity) {
		e.Y += fall
		if e.Y > bottom {
			s.energy.Release(h)
		}
	})

	top := -float64(s.cfg.Bullets.Height)
	rise := s.cfg.Bullets.Speed * secs
	s.bullets.Each(func(h Handle, e *Entity) {
		e.Y -= rise
		if e.Y < top {
			s.bullets.Release(h)
		}
	})
}

func (s *Session) fire(in core.InputFrame) {
	if !in.Has(core.ActionFire) || s.ship.Bullets <= 0 {
		return
	}
	h, ok := s.bullets.Acquire()
	if !ok {
		return
	}
	b := s.bullets.Get(h)
	b.X, b.Y = s.ship.X, s.ship.Y
	s.ship.Bullets--
	s.emit(core.CueFire)
	s.refreshStatus()
}

func (s *Session) collide() {
	s.overlaps = s.detector.Detect(s.Field(), s.overlaps[:0])
	for _, o := range s.overlaps {
		if s.phase != PhasePlaying {
			return
		}
		s.resolve(o)
	}
}

func (s *Session) emit(c core.Cue) {
	s.cues = append(s.cues, c)
}

func (s *Session) refreshStatus() {
	s.status = fmt.Sprintf("Life: %d\nBullets: %d\nTime: %s", s.ship.Life, s.ship.Bullets, s.clock)
}

// Field returns the view handed to the overlap detector.
func (s *Session) Field() Field {
	return Field{Ship: s.ship, Asteroids: s.asteroids, Bullets: s.bullets, Energy: s.energy}
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase { return s.phase }

// Paused reports whether a run is paused.
func (s *Session) Paused() bool { return s.paused }

// Ship returns a copy of the ship state.
func (s *Session) Ship() Ship { return s.ship }

// Clock returns the run clock.
func (s *Session) Clock() Clock { return s.clock }

// Status returns the composed life, bullets and time display.
func (s *Session) Status() string { return s.status }

// Message returns the banner text, empty unless the run just ended.
func (s *Session) Message() string { return s.message }

// Last returns the most recently finished run.
func (s *Session) Last() Record { return s.last }

// Best returns the best run so far.
func (s *Session) Best() Record { return s.best }

// NewBest reports whether the last run replaced the best record.
func (s *Session) NewBest() bool { return s.newBest }

// Runs returns how many runs have been started.
func (s *Session) Runs() int { return s.runs }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.StarfallConfig { return s.cfg }

// Pool returns the pool for an entity kind.
func (s *Session) Pool(k Kind) *Pool {
	switch k {
	case KindAsteroid:
		return s.asteroids
	case KindBullet:
		return s.bullets
	default:
		return s.energy
	}
}

// SetRecords restores last and best records, e.g. after the session is rebuilt.
func (s *Session) SetRecords(last, best Record) {
	s.last = last
	s.best = best
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
