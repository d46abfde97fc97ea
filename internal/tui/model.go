package tui

import (
	"bytes"
	"log"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/kusa-blocks/internal/game"
)

type Options struct {
	Seed  uint64
	Speed float64
}

// Result is what the game looked like when the program exited.
type Result struct {
	Seed     uint64
	Score    int
	Lines    int
	Level    int
	GameOver bool
}

type Model struct {
	seed  uint64
	speed float64

	session *game.Session
	err     error

	now      func() time.Time
	lastTick time.Time

	pending game.Intents
	input   inputGates

	rng           *rand.Rand
	confetti      []confettiParticle
	confettiSpawn float64
	confettiLeft  float64 // seconds of confetti spawning left

	banner     string
	bannerLeft float64

	ready  bool
	paused bool
	w      int
	h      int

	viewBuf bytes.Buffer
	canvas  wellCanvas
}

const (
	maxTickDelta   = 0.05
	bannerDuration = 1.2
	partyDuration  = 1.5
	minSpeed       = 0.25
	maxSpeed       = 5.0
)

func NewModel(opts Options) *Model {
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	log.Printf("new game: seed=%d speed=%.2f", opts.Seed, opts.Speed)
	return &Model{
		seed:    opts.Seed,
		speed:   opts.Speed,
		session: game.NewSession(game.NewRandomizer(opts.Seed)),
		now:     time.Now,
		input:   newInputGates(),
		rng:     rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x517cc1b727220a95)),
	}
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second / 60
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(time.Second / 60)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		m.ready = true
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if m.lastTick.IsZero() {
			m.lastTick = now
			return m, tickCmd(m.frameDuration())
		}

		// Clamp so a stalled terminal does not warp the piece down the well.
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		if dt < 0 {
			dt = 0
		}
		if dt > maxTickDelta {
			dt = maxTickDelta
		}

		m.updateBanner(dt)
		m.updateParty(dt)
		if m.ready && !m.paused {
			if err := m.advance(dt); err != nil {
				m.err = err
				log.Printf("step failed: %v", err)
				return m, tea.Quit
			}
		}
		return m, tickCmd(m.frameDuration())
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	default:
		return m, nil
	}
}

func (m *Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q", "Q":
		return m, tea.Quit
	case "r", "R":
		m.resetGame()
		return m, nil
	case "p", "P", " ":
		if !m.session.GameOver() {
			m.paused = !m.paused
			m.pending = 0
		}
		return m, nil
	case "+", "=":
		m.speed = min(m.speed+0.1, maxSpeed)
		return m, nil
	case "-", "_":
		m.speed = max(m.speed-0.1, minSpeed)
		return m, nil
	}

	if m.paused || m.session.GameOver() {
		return m, nil
	}
	if in, ok := intentForKey(key); ok {
		m.pending = m.input.queue(m.pending, in, m.now())
	}
	return m, nil
}

// advance runs one session step with the intents gathered since the last tick.
func (m *Model) advance(dt float64) error {
	in := m.pending
	m.pending = 0

	f, err := m.session.Step(dt*m.speed, in)
	if err != nil {
		return err
	}

	if f.Spawned {
		if p, ok := m.session.Active(); ok {
			log.Printf("spawn %s next=%s", p.Kind, m.session.Next())
		}
	}
	if f.Locked {
		log.Printf("lock: cleared=%v score=%d lines=%d level=%d",
			f.ClearedRows, m.session.Score(), m.session.Lines(), m.session.Level())
	}
	if f.LinesCleared > 0 {
		m.showBanner(clearBanner(f.LinesCleared))
		if f.LinesCleared >= 4 {
			m.confettiLeft = partyDuration
		}
	}
	if f.LevelUp {
		m.showBanner(clearBanner(f.LinesCleared) + "  LEVEL UP")
	}
	// Step keeps reporting GameOver while frozen; log only the step that ended the game.
	if enteredGameOver(f) {
		log.Printf("game over: score=%d lines=%d level=%d", m.session.Score(), m.session.Lines(), m.session.Level())
	}
	return nil
}

func enteredGameOver(f game.Facts) bool {
	return f.GameOver && (f.Locked || f.Spawned)
}

func clearBanner(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS!"
	}
}

func (m *Model) showBanner(s string) {
	m.banner = s
	m.bannerLeft = bannerDuration
}

func (m *Model) updateBanner(dt float64) {
	if m.bannerLeft <= 0 {
		return
	}
	m.bannerLeft -= dt
	if m.bannerLeft <= 0 {
		m.banner = ""
		m.bannerLeft = 0
	}
}

func (m *Model) frameDuration() time.Duration {
	if !m.ready || m.paused || m.session.GameOver() {
		if len(m.confetti) > 0 {
			return time.Second / 30
		}
		return time.Second / 15
	}
	return time.Second / 60
}

func (m *Model) resetGame() {
	log.Printf("reset: score=%d lines=%d level=%d", m.session.Score(), m.session.Lines(), m.session.Level())
	m.session.Reset()
	m.pending = 0
	m.paused = false
	m.input.reset()
	m.lastTick = time.Time{}
	m.banner = ""
	m.bannerLeft = 0
	m.confetti = nil
	m.confettiSpawn = 0
	m.confettiLeft = 0
}

// Result reports the current score line; call it after the program exits.
func (m *Model) Result() Result {
	return Result{
		Seed:     m.seed,
		Score:    m.session.Score(),
		Lines:    m.session.Lines(),
		Level:    m.session.Level(),
		GameOver: m.session.GameOver(),
	}
}

// Err is the step error that stopped the program, if any.
func (m *Model) Err() error { return m.err }

type confettiParticle struct {
	X    int
	Y    float64
	VY   float64
	Cell string
}

func (m *Model) updateParty(dt float64) {
	if !m.ready {
		return
	}
	w := fieldCols
	h := game.VisibleHeight

	out := m.confetti[:0]
	for i := range m.confetti {
		p := m.confetti[i]
		p.Y += p.VY * dt
		if p.Y < float64(h) {
			out = append(out, p)
		}
	}
	m.confetti = out

	if m.confettiLeft <= 0 {
		return
	}
	m.confettiLeft -= dt

	const rate = 45.0
	m.confettiSpawn += dt * rate
	for m.confettiSpawn >= 1.0 {
		m.confettiSpawn -= 1.0
		ci := m.rng.IntN(len(confettiChars))
		co := m.rng.IntN(len(confettiColors))
		m.confetti = append(m.confetti, confettiParticle{
			X:    m.rng.IntN(w),
			Y:    -1,
			VY:   10.0 + m.rng.Float64()*25.0,
			Cell: confettiCells[ci][co],
		})
	}
}
