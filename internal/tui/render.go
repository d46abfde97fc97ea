package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/fchimpan/kusa-blocks/internal/game"
	"github.com/fchimpan/kusa-blocks/internal/mapping"
)

// Each board cell is drawn two terminal columns wide so blocks look square.
const (
	cellW     = 2
	fieldCols = game.Width * cellW
)

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}

	snap := m.session.Snapshot()

	var overlay *fieldOverlay
	switch {
	case snap.GameOver():
		overlay = &fieldOverlay{
			Title:  "GAME OVER",
			Lines:  []string{"score " + humanize.Comma(int64(snap.Score))},
			Footer: "r retry  q quit",
		}
	case m.paused:
		overlay = &fieldOverlay{
			Title:  "PAUSED",
			Footer: "p resume",
		}
	}

	m.viewBuf.Reset()
	renderFieldTo(&m.viewBuf, mapping.BuildFieldGrid(snap), m.confetti, overlay, &m.canvas)
	field := styleWell.Render(strings.TrimSuffix(m.viewBuf.String(), "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, field, "  ", renderPanel(snap.Next))

	info := styleHudDim.Render("←/→ move  ↓ drop  z/x rotate  p pause  r retry  q quit")
	if m.banner != "" {
		info = styleBanner.Render(m.banner)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		renderHUD(snap.Level, snap.Score, snap.Lines, m.speed),
		info,
		body,
	)
	return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, content)
}

func renderHUD(level, score, lines int, speed float64) string {
	sep := styleHudDim.Render("  |  ")
	return strings.Join([]string{
		styleHudLabel.Render("level ") + styleHudValue.Render(fmt.Sprintf("%2d", level)),
		sep,
		styleHudLabel.Render("score ") + styleHudScore.Render(fmt.Sprintf("%9s", humanize.Comma(int64(score)))),
		sep,
		styleHudLabel.Render("lines ") + styleHudValue.Render(fmt.Sprintf("%4d", lines)),
		sep,
		styleHudLabel.Render("speed ") + styleHudValue.Render(fmt.Sprintf("%.2fx", speed)),
	}, "")
}

func renderPanel(next game.Kind) string {
	var b strings.Builder
	b.WriteString(styleHudLabel.Render("NEXT"))
	b.WriteString("\n\n")

	preview := mapping.BuildPreviewGrid(next)
	for _, row := range preview.Cells {
		for _, c := range row {
			if c.Filled {
				b.WriteString(pieceSpan[c.Kind])
			} else {
				b.WriteString(strings.Repeat(" ", cellW))
			}
		}
		b.WriteByte('\n')
	}
	return stylePanel.Render(strings.TrimSuffix(b.String(), "\n"))
}

// ===== Render helpers (cached styles) =====

var (
	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHudDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	styleBanner   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))

	styleWell = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d"))
	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d")).
			Padding(0, 1).
			Width(4*cellW + 2)

	// Locked blocks have no identity, so they all grow the same grass green.
	lockedCell = lipgloss.NewStyle().Background(lipgloss.Color("#40c463")).Render(" ")
	emptyLeft  = " "
	emptyRight = styleHudDim.Render("·")

	pieceCell = func() [game.NumKinds]string {
		var cells [game.NumKinds]string
		for _, k := range game.Kinds() {
			cells[k] = lipgloss.NewStyle().Background(lipgloss.Color(game.DisplayColor(k).Hex())).Render(" ")
		}
		return cells
	}()
	pieceSpan = func() [game.NumKinds]string {
		var spans [game.NumKinds]string
		for _, k := range game.Kinds() {
			spans[k] = lipgloss.NewStyle().Background(lipgloss.Color(game.DisplayColor(k).Hex())).Render(strings.Repeat(" ", cellW))
		}
		return spans
	}()
)

var (
	confettiChars  = []rune{'*', '+', 'x', 'o', '~', '^'}
	confettiColors = []lipgloss.Color{
		lipgloss.Color("#ff7b72"),
		lipgloss.Color("#ffd33d"),
		lipgloss.Color("#7ee787"),
		lipgloss.Color("#79c0ff"),
		lipgloss.Color("#d2a8ff"),
	}
	confettiCells = func() [][]string {
		cells := make([][]string, len(confettiChars))
		for i, ch := range confettiChars {
			row := make([]string, len(confettiColors))
			for j, col := range confettiColors {
				row[j] = lipgloss.NewStyle().Foreground(col).Render(string(ch))
			}
			cells[i] = row
		}
		return cells
	}()
)

type fieldOverlay struct {
	Title  string
	Lines  []string
	Footer string
}

// wellCanvas holds one styled string per terminal cell of the visible well.
type wellCanvas [game.VisibleHeight][fieldCols]string

func (c *wellCanvas) set(x, y int, cell string) {
	if x < 0 || y < 0 || x >= fieldCols || y >= game.VisibleHeight {
		return
	}
	c[y][x] = cell
}

func renderFieldTo(out interface{ WriteString(string) (int, error) }, grid mapping.FieldGrid, confetti []confettiParticle, overlay *fieldOverlay, canvas *wellCanvas) {
	for r, row := range grid.Cells {
		for c, cell := range row {
			x := c * cellW
			switch {
			case cell.Active:
				canvas.set(x, r, pieceCell[cell.Kind])
				canvas.set(x+1, r, pieceCell[cell.Kind])
			case cell.Filled:
				canvas.set(x, r, lockedCell)
				canvas.set(x+1, r, lockedCell)
			default:
				canvas.set(x, r, emptyLeft)
				canvas.set(x+1, r, emptyRight)
			}
		}
	}

	for i := range confetti {
		canvas.set(confetti[i].X, int(confetti[i].Y), confetti[i].Cell)
	}

	if overlay != nil {
		applyOverlay(canvas, overlay)
	}

	for y := range canvas {
		for _, cell := range canvas[y] {
			out.WriteString(cell)
		}
		out.WriteString("\n")
	}
}

func applyOverlay(canvas *wellCanvas, ov *fieldOverlay) {
	h := game.VisibleHeight
	w := fieldCols

	lines := make([]string, 0, 2+len(ov.Lines))
	if ov.Title != "" {
		lines = append(lines, ov.Title)
	}
	lines = append(lines, ov.Lines...)
	if ov.Footer != "" {
		lines = append(lines, ov.Footer)
	}

	innerW := 0
	for _, s := range lines {
		innerW = max(innerW, len(s))
	}
	innerH := len(lines)

	// 1 border + 1 padding on each side.
	boxW := min(innerW+4, w)
	boxH := min(innerH+4, h)
	innerW = min(innerW, boxW-4)

	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	borderStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#30363d"))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff7b72"))
	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	panelStyle := lipgloss.NewStyle().Background(lipgloss.Color("#161b22"))

	bgCell := panelStyle.Render(" ")
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			canvas.set(x, y, bgCell)
		}
	}

	hLine := borderStyle.Render("─")
	vLine := borderStyle.Render("│")
	for x := x0 + 1; x < x0+boxW-1; x++ {
		canvas.set(x, y0, hLine)
		canvas.set(x, y0+boxH-1, hLine)
	}
	for y := y0 + 1; y < y0+boxH-1; y++ {
		canvas.set(x0, y, vLine)
		canvas.set(x0+boxW-1, y, vLine)
	}
	canvas.set(x0, y0, borderStyle.Render("╭"))
	canvas.set(x0+boxW-1, y0, borderStyle.Render("╮"))
	canvas.set(x0, y0+boxH-1, borderStyle.Render("╰"))
	canvas.set(x0+boxW-1, y0+boxH-1, borderStyle.Render("╯"))

	tx0 := x0 + 2
	ty0 := y0 + 2
	for i, line := range lines {
		y := ty0 + i
		if y >= y0+boxH-2 {
			break
		}
		if len(line) > innerW {
			line = line[:innerW]
		}
		startX := tx0 + (innerW-len(line))/2

		var st lipgloss.Style
		switch {
		case i == 0 && ov.Title != "":
			st = titleStyle
		case strings.HasPrefix(line, "score"):
			st = scoreStyle
		case i == len(lines)-1 && ov.Footer != "":
			st = helpStyle
		default:
			st = textStyle
		}

		for j := 0; j < len(line); j++ {
			canvas.set(startX+j, y, panelStyle.Foreground(st.GetForeground()).Render(string(line[j])))
		}
	}
}
