package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestate"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors maps physical color names to terminal colors.
var stickerColors = map[string]lipgloss.Color{
	"white":  lipgloss.Color("255"),
	"yellow": lipgloss.Color("226"),
	"red":    lipgloss.Color("196"),
	"orange": lipgloss.Color("208"),
	"green":  lipgloss.Color("34"),
	"blue":   lipgloss.Color("27"),
}

// stickerStyle returns the block style for a facelet color under scheme.
func stickerStyle(scheme cubestate.Scheme, c cubestate.Color) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
	if bg, ok := stickerColors[scheme.Name(c)]; ok {
		return style.Background(bg)
	}
	return style.Background(lipgloss.Color("240"))
}

// renderNet draws the unfolded cube with colored stickers: U on top,
// L F R B across the middle, D below.
func renderNet(c *cubestate.Cube, scheme cubestate.Scheme) string {
	var b strings.Builder

	writeRow := func(face cubestate.Face, row int) {
		stickers := c.Face(face)
		for col := 0; col < 3; col++ {
			color := stickers[row*3+col]
			b.WriteString(stickerStyle(scheme, color).Render(" " + color.String() + " "))
		}
		b.WriteByte(' ')
	}
	pad := strings.Repeat(" ", 10)

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		writeRow(cubestate.FaceU, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cubestate.Face{cubestate.FaceL, cubestate.FaceF, cubestate.FaceR, cubestate.FaceB} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		writeRow(cubestate.FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}

// renderProgress lists each layer check with a mark.
func renderProgress(c *cubestate.Cube) string {
	p := c.Progress()
	steps := []struct {
		phase cubestate.Phase
		done  bool
	}{
		{cubestate.PhaseUpCross, p.UpCross},
		{cubestate.PhaseFirstLayer, p.FirstLayer},
		{cubestate.PhaseSecondLayer, p.SecondLayer},
		{cubestate.PhaseDownCross, p.DownCross},
		{cubestate.PhaseDownCorners, p.DownCorners},
		{cubestate.PhaseDownOriented, p.DownOriented},
		{cubestate.PhaseSolved, p.Solved},
	}

	var b strings.Builder
	for _, s := range steps {
		mark := statusStyle.Render("[ ]")
		if s.done {
			mark = moveStyle.Render("[x]")
		}
		b.WriteString(mark + " " + s.phase.DisplayName() + "\n")
	}
	return b.String()
}
