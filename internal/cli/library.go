package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

const reverseSolverName = "reverse"

func newSolveCmd(a *app) *cobra.Command {
	var scramble string
	var save bool
	var label string

	cmd := &cobra.Command{
		Use:   "solve <facelets>",
		Short: "Solve a cube state whose scramble is known",
		Long: `Solve a cube state by undoing its scramble. The facelet string must be
exactly the scramble applied to a solved cube. The solution is checked on a
copy of the cube before it is printed.`,
		Example: `  cubestate solve <facelets> --scramble "R U R' U'"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := decodeArg(args[0])
			if err != nil {
				return err
			}
			moves, err := cubestate.ParseMoves(scramble)
			if err != nil {
				return fmt.Errorf("invalid scramble: %w", err)
			}

			solution, err := cubestate.SolveCube(cmd.Context(), cubestate.ReverseSolver{Scramble: moves}, c)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(solution) == 0 {
				fmt.Fprintln(out, "already solved")
			} else {
				fmt.Fprintln(out, cubestate.FormatMoves(solution))
			}
			a.log.Debug("solved", "moves", len(solution))

			if !save {
				return nil
			}

			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			stateID, _, err := storage.NewStateRepository(db).CreateSolved(
				cmd.Context(), c.Encode(), label, scramble, reverseSolverName, solution)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "saved %s\n", stateID)
			return nil
		},
	}

	cmd.Flags().StringVar(&scramble, "scramble", "", "Scramble that produced the state")
	cmd.Flags().BoolVar(&save, "save", false, "Store the state and solution in the library")
	cmd.Flags().StringVar(&label, "label", "", "Label for --save")
	return cmd
}

func newSaveCmd(a *app) *cobra.Command {
	var label string
	var scramble string

	cmd := &cobra.Command{
		Use:   "save <facelets>",
		Short: "Store a cube state in the library",
		Long: `Store a facelet string in the library. When --scramble reproduces the
state from solved, the reversed scramble is stored as its solution.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := decodeArg(args[0])
			if err != nil {
				return err
			}

			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			states := storage.NewStateRepository(db)
			out := cmd.OutOrStdout()

			if scramble != "" {
				moves, err := cubestate.ParseMoves(scramble)
				if err != nil {
					return fmt.Errorf("invalid scramble: %w", err)
				}
				solution, err := cubestate.SolveCube(cmd.Context(), cubestate.ReverseSolver{Scramble: moves}, c)
				if err == nil {
					stateID, _, err := states.CreateSolved(cmd.Context(), c.Encode(), label, scramble, reverseSolverName, solution)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, stateID)
					return nil
				}
				a.log.Warn("scramble does not reproduce the state; storing without a solution", "err", err)
			}

			stateID, err := states.Create(cmd.Context(), c.Encode(), label, scramble)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, stateID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Label for the state")
	cmd.Flags().StringVar(&scramble, "scramble", "", "Scramble that produced the state")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored cube states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			states, err := storage.NewStateRepository(db).List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(states) == 0 {
				fmt.Fprintln(out, "No states stored. Add one with: cubestate save <facelets>")
				return nil
			}

			for _, s := range states {
				label := "-"
				if s.Label != nil {
					label = *s.Label
				}
				solved := ""
				if s.IsSolved {
					solved = " (solved)"
				}
				fmt.Fprintf(out, "%s  %-20s %s  %s%s\n",
					s.StateID, label, s.CreatedAt.Local().Format(time.DateTime), s.Facelets, solved)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of states (0 for all)")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored cube state and its solutions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			state, err := storage.NewStateRepository(db).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if state == nil {
				return fmt.Errorf("state not found: %s", args[0])
			}

			c, err := state.Cube()
			if err != nil {
				return fmt.Errorf("stored state %s is corrupt: %w", state.StateID, err)
			}

			out := cmd.OutOrStdout()
			var b strings.Builder
			b.WriteString(titleStyle.Render("State " + state.StateID))
			b.WriteString("\n")
			if state.Label != nil {
				fmt.Fprintf(&b, "Label:    %s\n", *state.Label)
			}
			fmt.Fprintf(&b, "Created:  %s\n", state.CreatedAt.Local().Format(time.DateTime))
			fmt.Fprintf(&b, "Facelets: %s\n", state.Facelets)
			if state.ScrambleText != nil {
				fmt.Fprintf(&b, "Scramble: %s\n", moveStyle.Render(*state.ScrambleText))
			}
			fmt.Fprintf(&b, "Phase:    %s\n\n", phaseStyle.Render(c.DetectPhase().DisplayName()))
			b.WriteString(renderNet(c, a.scheme))

			solutions, err := storage.NewSolutionRepository(db).ForState(cmd.Context(), state.StateID)
			if err != nil {
				return err
			}
			b.WriteString("\n")
			if len(solutions) == 0 {
				b.WriteString(statusStyle.Render("No solutions stored."))
				b.WriteString("\n")
			}
			for _, s := range solutions {
				fmt.Fprintf(&b, "Solution (%s, %d moves): %s\n", s.Solver, s.MoveCount, moveStyle.Render(s.MovesText))
			}

			fmt.Fprint(out, b.String())
			return nil
		},
	}
}
