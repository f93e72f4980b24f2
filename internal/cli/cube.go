package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
)

// decodeArg decodes a facelet string argument.
func decodeArg(s string) (*cubestate.Cube, error) {
	c, err := cubestate.Decode(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid facelet string: %w", err)
	}
	return c, nil
}

func newApplyCmd(a *app) *cobra.Command {
	var from string
	var net bool

	cmd := &cobra.Command{
		Use:   "apply <moves>",
		Short: "Apply moves and print the resulting facelet string",
		Long: `Apply a move sequence such as "R U R' U'" to a cube and print the
facelet string of the result. The cube starts solved unless --from is given.`,
		Example: `  cubestate apply "R U R' U'"
  cubestate apply R U2 F --net
  cubestate apply --from <facelets> "F' U'"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cubestate.Solved()
			if from != "" {
				var err error
				if c, err = decodeArg(from); err != nil {
					return err
				}
			}

			moves, err := cubestate.ParseMoves(strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.log.Debug("applying moves", "count", len(moves), "moves", cubestate.FormatMoves(moves))
			c.Apply(moves...)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.Encode())
			if net {
				fmt.Fprintln(out)
				fmt.Fprint(out, renderNet(c, a.scheme))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Starting facelet string (default: solved)")
	cmd.Flags().BoolVar(&net, "net", false, "Also print the colored net")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <facelets>",
		Short: "Check a facelet string and show it face by face",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := strings.TrimSpace(args[0])
			out := cmd.OutOrStdout()

			if len(s) == cubestate.NumFacelets {
				for i, face := range cubestate.Faces {
					stickers := s[i*cubestate.FaceletsPerFace : (i+1)*cubestate.FaceletsPerFace]
					fmt.Fprintf(out, "%s: %s %s %s  center %c\n",
						face, stickers[0:3], stickers[3:6], stickers[6:9], stickers[4])
				}
			}

			if err := cubestate.Validate(s); err != nil {
				fmt.Fprintln(out, errorStyle.Render("invalid"))
				return fmt.Errorf("invalid facelet string: %w", err)
			}

			c := cubestate.MustDecode(s)
			fmt.Fprintln(out, moveStyle.Render("valid"))
			fmt.Fprintln(out, reachability(c))
			a.log.Debug("validated", "solved", c.IsSolved(), "phase", c.DetectPhase().String())
			return nil
		},
	}
}

func newNetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "net [facelets]",
		Short: "Print the colored net of a facelet string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cubestate.Solved()
			if len(args) == 1 {
				var err error
				if c, err = decodeArg(args[0]); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), renderNet(c, a.scheme))
			return nil
		},
	}
}

func newInvertCmd(a *app) *cobra.Command {
	var simplify bool

	cmd := &cobra.Command{
		Use:   "invert <moves>",
		Short: "Print the inverse of a move sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := cubestate.ParseMoves(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if simplify {
				moves = cubestate.Simplify(moves)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cubestate.FormatMoves(cubestate.Invert(moves)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&simplify, "simplify", false, "Merge adjacent turns of the same face first")
	return cmd
}

func newScrambleCmd(a *app) *cobra.Command {
	var length int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Generate a random scramble",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = a.cfg.Scramble()
			}
			if length <= 0 {
				return fmt.Errorf("scramble length must be positive, got %d", length)
			}

			rng := cubestate.NewRand(seed)
			if !cmd.Flags().Changed("seed") {
				rng = nil
			}

			c, moves := cubestate.Scrambled(rng, length)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cubestate.FormatMoves(moves))
			fmt.Fprintln(out, c.Encode())
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", cubestate.DefaultScrambleLength, "Number of moves")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for a repeatable scramble")
	return cmd
}

func newColorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "colors <names...>",
		Short: "Convert sticker color names to a facelet string",
		Long: `Convert 54 sticker color names, read off a physical cube in facelet
order (U, R, F, D, L, B; each face row by row), into a facelet string.
Names may be separated by spaces or commas, so six comma-separated face
groups work too. The color scheme comes from the config file.`,
		Example: `  cubestate colors white,white,white,...  red,red,...  ...`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := strings.FieldsFunc(strings.Join(args, " "), func(r rune) bool {
				return r == ',' || unicode.IsSpace(r)
			})

			facelets, err := a.scheme.Facelets(names)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), facelets)
			return nil
		},
	}
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <facelets>",
		Short: "Show layer-by-layer progress of a cube state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := decodeArg(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderNet(c, a.scheme))
			fmt.Fprintln(out)
			fmt.Fprint(out, renderProgress(c))
			fmt.Fprintf(out, "\nPhase: %s\n", phaseStyle.Render(c.DetectPhase().DisplayName()))
			fmt.Fprintln(out, reachability(c))
			return nil
		},
	}
}

// reachability describes whether face turns can produce c. An
// unreachable state is still a valid facelet string, so this never fails
// the command.
func reachability(c *cubestate.Cube) string {
	if err := c.Reachable(); err != nil {
		return errorStyle.Render("unreachable") + ": " + err.Error()
	}
	return moveStyle.Render("reachable")
}
