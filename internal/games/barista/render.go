package barista

import (
	"fmt"
	"strconv"
	"strings"

	platformcore "github.com/vovakirdan/tui-barista/internal/core"
	"github.com/vovakirdan/tui-barista/internal/games/barista/core"
)

const (
	cupInner  = 4 // Liquid width inside the walls
	cupWidth  = cupInner + 2
	cupGap    = 2
	hudHeight = 3 // Title, status line, blank
	footerH   = 2 // Blank, feedback; the runner draws key help below
)

// liquidColor maps each liquid to its screen color.
func liquidColor(l core.Liquid) platformcore.Color {
	switch l {
	case core.LiquidRed:
		return platformcore.ColorBrightRed
	case core.LiquidGreen:
		return platformcore.ColorBrightGreen
	case core.LiquidBlue:
		return platformcore.ColorBlue
	case core.LiquidPink:
		return platformcore.ColorBrightMagenta
	case core.LiquidBabyBlue:
		return platformcore.ColorBrightCyan
	case core.LiquidYellow:
		return platformcore.ColorYellow
	default:
		return platformcore.ColorGray
	}
}

// cupKey returns the key that picks cup i.
func cupKey(i int) string {
	if i == 9 {
		return "0"
	}
	return strconv.Itoa(i + 1)
}

// cupLayout places cups in centered rows.
type cupLayout struct {
	perRow   int
	rows     int
	capacity int
	originY  int
	screenW  int
}

// blockHeight is the height of one cup row: marker, liquid, bottom, label.
func (l cupLayout) blockHeight() int {
	return l.capacity + 3
}

// cupRect returns the open box of cup i, liquid rows plus bottom edge.
func (l cupLayout) cupRect(i, total int) platformcore.Rect {
	row, col := i/l.perRow, i%l.perRow
	inRow := min(l.perRow, total-row*l.perRow)
	rowW := inRow*cupWidth + (inRow-1)*cupGap
	x := (l.screenW-rowW)/2 + col*(cupWidth+cupGap)
	y := l.originY + row*(l.blockHeight()+1) + 1
	return platformcore.NewRect(x, y, cupWidth, l.capacity+1)
}

func (l cupLayout) height() int {
	return l.rows*l.blockHeight() + l.rows - 1
}

// layoutFor fits n cups of the given capacity into w x h, or reports false.
func layoutFor(n, capacity, w, h int) (cupLayout, bool) {
	l := cupLayout{capacity: capacity, originY: hudHeight, screenW: w}
	if n == 0 {
		return l, true
	}
	maxPerRow := (w + cupGap) / (cupWidth + cupGap)
	if maxPerRow < 1 {
		return l, false
	}
	l.rows = (n + maxPerRow - 1) / maxPerRow
	l.perRow = (n + l.rows - 1) / l.rows
	return l, hudHeight+l.height()+footerH <= h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.round == nil {
		return
	}

	if g.round.Phase() == core.PhaseWelcome {
		g.renderWelcome(dst)
		return
	}

	cups := g.round.Cups()
	capacity := 0
	for _, c := range cups {
		capacity = max(capacity, c.Capacity())
	}
	layout, ok := layoutFor(len(cups), capacity, dst.Width(), dst.Height())
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderCups(dst, cups, layout)
	g.renderFooter(dst)

	if g.round.Phase() == core.PhaseFinished {
		g.renderWin(dst, layout)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCentered(0, "Terminal Barista", platformcore.ColorBrightWhite)

	status := fmt.Sprintf("Tier: %s   Moves: %d   Time: %s",
		g.round.Difficulty().Label(), g.round.Moves(), platformcore.FormatClock(g.Elapsed()))
	dst.DrawTextCentered(1, status, platformcore.ColorDefault)

	if g.cfgErr != nil {
		dst.DrawText(0, 2, "config error, using built-in tiers")
	}
}

func (g *Game) renderCups(dst *platformcore.Screen, cups core.Roster, layout cupLayout) {
	pending, hasPending := g.round.Pending()

	for i, cup := range cups {
		r := layout.cupRect(i, len(cups))
		selected := hasPending && pending == i

		border := platformcore.ColorWhite
		if selected {
			border = platformcore.ColorBrightYellow
			dst.SetWithColor(r.X+cupWidth/2, r.Y-1, '▼', border)
		}
		dst.DrawOpenBox(r, border)

		// Liquid, bottom unit just above the cup's bottom edge
		for j, l := range cup.Contents() {
			y := r.Y + cup.Capacity() - 1 - j
			dst.FillRect(platformcore.NewRect(r.X+1, y, cupInner, 1), '█', liquidColor(l))
		}

		label := "[" + cupKey(i) + "]"
		labelColor := platformcore.ColorGray
		if selected {
			labelColor = platformcore.ColorBrightYellow
		}
		dst.DrawTextWithColor(r.X+(cupWidth-len(label))/2, r.Bottom(), label, labelColor)
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	h := dst.Height()

	switch fb := g.round.Feedback(); {
	case g.round.Phase() == core.PhaseFinished:
		// the win box carries the message
	case fb != "":
		dst.DrawTextCentered(h-1, fb, platformcore.ColorBrightRed)
	default:
		if idx, ok := g.round.Pending(); ok {
			dst.DrawTextCentered(h-1, "Pour cup "+cupKey(idx)+" into...", platformcore.ColorGray)
		}
	}
}

func (g *Game) renderWin(dst *platformcore.Screen, layout cupLayout) {
	lines := []string{
		core.WinMessage,
		"",
		fmt.Sprintf("Moves: %d   Time: %s", g.round.Moves(), platformcore.FormatClock(g.Elapsed())),
		"",
		"New Game [Enter]",
	}
	centerY := layout.originY + layout.height()/2
	drawOverlay(dst, dst.Width()/2, centerY, platformcore.ColorBrightGreen, lines...)
}

func (g *Game) renderWelcome(dst *platformcore.Screen) {
	lines := []string{
		"Sort the liquids so each color sits in a cup of its own.",
		"Pick a cup by its number, then pick the cup to pour into.",
	}
	infos := g.cfg.TierInfos()

	top := max(0, (dst.Height()-(len(lines)+len(infos)+6))/2)
	dst.DrawTextCentered(top, "Terminal Barista", platformcore.ColorBrightWhite)
	for i, line := range lines {
		dst.DrawTextCentered(top+2+i, line, platformcore.ColorDefault)
	}

	y := top + 3 + len(lines)
	var def string
	for i, info := range infos {
		entry := fmt.Sprintf("[%d] %-7s %2d cups, %s", i+1, info.Difficulty.Label(), info.Cups(), strings.Join(info.Colors, " "))
		c := platformcore.ColorDefault
		if info.Default {
			c = platformcore.ColorBrightYellow
			def = info.Difficulty.Label()
		}
		dst.DrawTextCentered(y+i, entry, c)
	}

	if def != "" {
		dst.DrawTextCentered(y+len(infos)+1, "Enter: "+def, platformcore.ColorGray)
	}
	dst.DrawTextCentered(dst.Height()-1, "1-3: choose tier | Enter: default | Q: quit", platformcore.ColorGray)
}

// drawOverlay draws a centered, bordered text box.
func drawOverlay(dst *platformcore.Screen, centerX, centerY int, c platformcore.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, c)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextWithColor(x, box.Y+1+i, line, c)
	}
}
