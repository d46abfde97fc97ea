package game

const linesPerLevel = 10

// Points per simultaneous clear. Clears beyond four rows pay the four-row tier.
const (
	PointsSingle = 100
	PointsDouble = 300
	PointsTriple = 600
	PointsTetris = 1000
)

// ClearPoints returns the score for clearing n rows at once.
func ClearPoints(n int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return PointsSingle
	case n == 2:
		return PointsDouble
	case n == 3:
		return PointsTriple
	default:
		return PointsTetris
	}
}

// ScoreKeeper tracks score, lines and level. level == lines/10 always holds.
type ScoreKeeper struct {
	level int
	score int
	lines int
}

// RegisterLinesCleared adds n cleared rows and returns how many levels were gained.
func (s *ScoreKeeper) RegisterLinesCleared(n int) int {
	if n <= 0 {
		return 0
	}
	s.lines += n
	ups := 0
	for s.lines/linesPerLevel > s.level {
		s.level++
		ups++
	}
	s.score += ClearPoints(n)
	return ups
}

func (s *ScoreKeeper) Reset() {
	*s = ScoreKeeper{}
}

func (s *ScoreKeeper) Level() int { return s.level }
func (s *ScoreKeeper) Score() int { return s.score }
func (s *ScoreKeeper) Lines() int { return s.lines }
