package game

import "fmt"

// Intent is a discrete player request. Intents combine into an Intents set.
type Intent uint8

const (
	MoveLeft Intent = 1 << iota
	MoveRight
	SoftDrop
	RotateLeft
	RotateRight
)

// Intents is the set of intents issued for one step.
type Intents uint8

func (in Intents) Has(i Intent) bool { return uint8(in)&uint8(i) != 0 }

func (in Intents) With(i Intent) Intents { return in | Intents(i) }

func (in Intents) Without(i Intent) Intents { return in &^ Intents(i) }

// Phase is the session state.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseGameOver:
		return "game over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Facts describes what happened during one step.
type Facts struct {
	Spawned bool
	Moved   bool
	Rotated bool
	Kicked  bool
	Locked  bool

	// ClearedRows holds the removed row indices in scan order (top-down).
	ClearedRows  []int
	LinesCleared int
	LevelUp      bool
	GameOver     bool
}

// Changed reports whether the board or the active piece changed.
func (f Facts) Changed() bool {
	return f.Spawned || f.Moved || f.Rotated || f.Locked || f.GameOver
}

// PieceView is a read-only copy of the active piece for renderers.
type PieceView struct {
	Kind     Kind
	Rotation int
	Col      int
	Row      int
	Cells    []Cell
}

// Snapshot is the outbound state a renderer needs.
type Snapshot struct {
	Board  [Height][Width]bool
	Active *PieceView
	Next   Kind
	Level  int
	Score  int
	Lines  int
	Phase  Phase
}

func (s Snapshot) GameOver() bool { return s.Phase == PhaseGameOver }

// Session owns every piece of gameplay state and advances it one step at a
// time. It is not safe for concurrent use; a single driver calls Step.
type Session struct {
	board  Board
	score  ScoreKeeper
	drop   DropScheduler
	source PieceSource

	active    ActivePiece
	hasActive bool
	next      Kind
	phase     Phase
}

// NewSession prefetches the first kind so a preview is always available.
func NewSession(source PieceSource) *Session {
	s := &Session{source: source, phase: PhaseSpawning}
	s.next = s.draw()
	return s
}

func (s *Session) draw() Kind {
	k := s.source.Next()
	mustKind(k)
	return k
}

// Step advances the simulation by dt seconds with the given intents.
//
// Order within a step: spawn (if due), gravity timer, horizontal move
// (ignored when both directions are requested), soft drop, rotate left,
// rotate right, gravity. Once the game is over Step mutates nothing.
func (s *Session) Step(dt float64, in Intents) (Facts, error) {
	var f Facts
	if s.phase == PhaseGameOver {
		f.GameOver = true
		return f, nil
	}
	if dt < 0 {
		dt = 0
	}

	if s.phase == PhaseSpawning {
		s.spawn(&f)
		if s.phase == PhaseGameOver {
			return f, nil
		}
	}

	s.drop.Advance(dt, s.score.Level())
	s.applyIntents(in, &f)

	if !s.drop.TakeDropDue() {
		return f, nil
	}
	if CanMove(&s.board, s.active, Down) {
		s.active = s.active.Translate(Down.DX, Down.DY)
		f.Moved = true
		return f, nil
	}
	if err := s.lock(&f); err != nil {
		return f, err
	}
	return f, nil
}

// spawn places the prefetched kind. A spawn that overlaps the stack ends
// the game without locking.
func (s *Session) spawn(f *Facts) {
	s.active = Spawn(s.next)
	s.hasActive = true
	s.next = s.draw()
	f.Spawned = true
	if !Fits(&s.board, s.active) {
		s.phase = PhaseGameOver
		f.GameOver = true
		return
	}
	s.phase = PhaseFalling
}

func (s *Session) applyIntents(in Intents, f *Facts) {
	left, right := in.Has(MoveLeft), in.Has(MoveRight)
	switch {
	case left && !right:
		s.tryMove(Offset{DX: -1}, f)
	case right && !left:
		s.tryMove(Offset{DX: 1}, f)
	}

	if in.Has(SoftDrop) && s.tryMove(Down, f) {
		s.drop.ResetTimer()
	}
	if in.Has(RotateLeft) {
		s.tryRotate(Left, f)
	}
	if in.Has(RotateRight) {
		s.tryRotate(Right, f)
	}
}

func (s *Session) tryMove(delta Offset, f *Facts) bool {
	if !CanMove(&s.board, s.active, delta) {
		return false
	}
	s.active = s.active.Translate(delta.DX, delta.DY)
	f.Moved = true
	return true
}

func (s *Session) tryRotate(d Direction, f *Facts) bool {
	if CanRotate(&s.board, s.active, d) {
		s.active = s.active.Rotate(d)
		f.Rotated = true
		return true
	}
	off, ok := FindKickOffset(&s.board, s.active, d)
	if !ok {
		return false
	}
	s.active = s.active.Rotate(d).Translate(off.DX, off.DY)
	f.Rotated = true
	f.Kicked = true
	return true
}

// lock commits the active piece, clears lines, scores them and decides
// between the next spawn and game over. Cells above the stored grid are not
// written; having any counts as topping out.
func (s *Session) lock(f *Facts) error {
	cells := s.active.OccupiedCells()
	inGrid := make([]Cell, 0, len(cells))
	overflow := false
	for _, c := range cells {
		if c.Row >= Height {
			overflow = true
			continue
		}
		inGrid = append(inGrid, c)
	}
	if err := s.board.Lock(inGrid); err != nil {
		return fmt.Errorf("lock %s piece at (%d,%d): %w", s.active.Kind, s.active.Col, s.active.Row, err)
	}
	s.hasActive = false
	f.Locked = true

	rows := s.board.ClearFullLines()
	f.ClearedRows = rows
	f.LinesCleared = len(rows)
	f.LevelUp = s.score.RegisterLinesCleared(len(rows)) > 0
	s.drop.ResetTimer()

	if overflow || s.board.IsGameOver() {
		s.phase = PhaseGameOver
		f.GameOver = true
		return nil
	}
	s.phase = PhaseSpawning
	return nil
}

// Reset clears the board, score and timers and returns to Spawning. The
// randomizer and the previewed next kind are kept.
func (s *Session) Reset() {
	s.board.Reset()
	s.score.Reset()
	s.drop.ResetTimer()
	s.active = ActivePiece{}
	s.hasActive = false
	s.phase = PhaseSpawning
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) GameOver() bool { return s.phase == PhaseGameOver }

func (s *Session) Next() Kind { return s.next }

// Active returns the falling piece; ok is false between lock and spawn.
func (s *Session) Active() (p ActivePiece, ok bool) {
	return s.active, s.hasActive
}

func (s *Session) Level() int { return s.score.Level() }
func (s *Session) Score() int { return s.score.Score() }
func (s *Session) Lines() int { return s.score.Lines() }

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Board: s.board.Grid(),
		Next:  s.next,
		Level: s.score.Level(),
		Score: s.score.Score(),
		Lines: s.score.Lines(),
		Phase: s.phase,
	}
	if s.hasActive {
		snap.Active = &PieceView{
			Kind:     s.active.Kind,
			Rotation: s.active.Rotation,
			Col:      s.active.Col,
			Row:      s.active.Row,
			Cells:    s.active.OccupiedCells(),
		}
	}
	return snap
}
