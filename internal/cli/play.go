package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
)

func newPlayCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Turn a virtual cube from the keyboard",
		Long: `Turn a virtual cube interactively.

Keys:
  u r f d l b   turn that face clockwise
  U R F D L B   turn that face counter-clockwise
  z             undo the last move
  s             scramble
  0             reset to solved
  q             quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := cubestate.Solved()
			if from != "" {
				var err error
				if start, err = decodeArg(from); err != nil {
					return err
				}
			}

			model := newPlayModel(start, a.scheme, nil, a.cfg.Scramble())
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("player error: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), model.session.Facelets())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Starting facelet string (default: solved)")
	return cmd
}

// playModel is the bubbletea model for the interactive player.
type playModel struct {
	session     *cubestate.Session
	scheme      cubestate.Scheme
	rng         *rand.Rand
	scrambleLen int
	scramble    []cubestate.Move
	status      string
	quitting    bool
}

func newPlayModel(start *cubestate.Cube, scheme cubestate.Scheme, rng *rand.Rand, scrambleLen int) *playModel {
	m := &playModel{
		scheme:      scheme,
		rng:         rng,
		scrambleLen: scrambleLen,
	}
	m.restart(start)
	return m
}

// restart begins a new session from start, keeping the phase callback.
func (m *playModel) restart(start *cubestate.Cube) {
	m.session = cubestate.NewSession(cubestate.WithStart(start))
	m.session.OnPhaseChange(func(phase cubestate.Phase) {
		m.status = "Completed: " + phase.DisplayName()
	})
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "z":
		if last, ok := m.session.Undo(); ok {
			m.status = "Undid " + last.Notation()
		} else {
			m.status = "Nothing to undo"
		}

	case "s":
		start, moves := cubestate.Scrambled(m.rng, m.scrambleLen)
		m.restart(start)
		m.scramble = moves
		m.status = "Scrambled"

	case "0":
		m.restart(cubestate.Solved())
		m.scramble = nil
		m.status = "Reset"

	default:
		if len(k) != 1 {
			break
		}
		face, ok := cubestate.ParseFace(strings.ToUpper(k)[0])
		if !ok {
			break
		}
		move := cubestate.Move{Face: face, Turn: cubestate.CW}
		if k == strings.ToUpper(k) {
			move.Turn = cubestate.CCW
		}
		m.status = ""
		m.session.ApplyMove(move)
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubestate player"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.session.Cube(), m.scheme))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.session.Facelets()))
	b.WriteString("\n\n")

	if m.session.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", phaseStyle.Render("SOLVED!")))
	} else {
		b.WriteString(fmt.Sprintf("Phase: %s\n", phaseStyle.Render(m.session.Phase().DisplayName())))
	}

	if len(m.scramble) > 0 {
		b.WriteString("Scramble: ")
		b.WriteString(moveStyle.Render(cubestate.FormatMoves(m.scramble)))
		b.WriteString("\n")
	}

	moves := m.session.Moves()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(moves)))
	if len(moves) > 0 {
		// Show last 20 moves
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
		}
		b.WriteString(moveStyle.Render(cubestate.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("urfdlb: clockwise | URFDLB: counter-clockwise | z: undo | s: scramble | 0: reset | q: quit"))
	b.WriteString("\n")

	return b.String()
}
