// Package cli provides the command-line interface for rotmat.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/rotmat/matrix"
	"github.com/katalvlaran/rotmat/rotate"
	"github.com/spf13/cobra"
)

// Accepted --method and --engine values.
const (
	methodInPlace = "inplace"
	methodCopy    = "copy"

	engineGrid  = "grid"
	engineDense = "dense"
	engineGonum = "gonum"
)

// options holds the parsed flags of one invocation.
type options struct {
	turns   int
	method  string
	engine  string
	verbose bool
}

// newRootCmd builds the rotmat command with fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "rotmat [file]",
		Short: "Rotate a square JSON grid by quarter-turns.",
		Long: `Reads a square grid as a JSON array of arrays of numbers from [file] ` +
			`or stdin, rotates it clockwise by --turns quarter-turns (negative for ` +
			`counter-clockwise) and prints the result as JSON.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.turns, "turns", "k", 1, "quarter-turns to apply; negative turns counter-clockwise")
	cmd.Flags().StringVar(&opts.method, "method", methodInPlace, "rotation method: inplace or copy")
	cmd.Flags().StringVar(&opts.engine, "engine", engineGrid, "storage to rotate in: grid, dense or gonum")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	logger := log.New(io.Discard, "rotmat: ", 0)
	if opts.verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	if opts.method != methodInPlace && opts.method != methodCopy {
		return fmt.Errorf("unknown --method %q (want %s or %s)", opts.method, methodInPlace, methodCopy)
	}
	if opts.engine != engineGrid && opts.engine != engineDense && opts.engine != engineGonum {
		return fmt.Errorf("unknown --engine %q (want %s, %s or %s)", opts.engine, engineGrid, engineDense, engineGonum)
	}

	in := cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in, source = f, args[0]
	}

	var grid [][]float64
	if err := json.NewDecoder(in).Decode(&grid); err != nil {
		return fmt.Errorf("decode %s: %w", source, err)
	}
	if err := rotate.ValidateSquare(grid); err != nil {
		return err
	}
	q := rotate.QuarterTurns(opts.turns)
	logger.Printf("read %dx%d grid from %s; %d quarter-turn(s) via %s/%s", len(grid), len(grid), source, q, opts.engine, opts.method)

	var (
		out [][]float64
		err error
	)
	switch opts.engine {
	case engineGrid:
		out, err = rotateGrid(grid, q, opts.method)
	case engineDense:
		out, err = rotateDense(grid, q, opts.method)
	case engineGonum:
		out, err = rotateGonum(grid, q, opts.method)
	}
	if err != nil {
		return err
	}

	logger.Printf("writing %dx%d grid", len(out), len(out))

	return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
}

// rotateGrid applies q clockwise quarter-turns to g with the generic rotators.
func rotateGrid(g [][]float64, q int, method string) ([][]float64, error) {
	if method == methodInPlace {
		return rotate.Turn(g, q)
	}
	var err error
	for i := 0; i < q; i++ {
		if g, err = rotate.Copy(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// rotateDense runs the same rotation on the flat Dense kernels.
func rotateDense(g [][]float64, q int, method string) ([][]float64, error) {
	m, err := matrix.NewDenseFrom(g)
	if err != nil {
		return nil, err
	}
	if method == methodInPlace {
		if err = matrix.RotateTurns(m, q); err != nil {
			return nil, err
		}

		return m.RawRows(), nil
	}
	for i := 0; i < q; i++ {
		if m, err = matrix.Rotated(m); err != nil {
			return nil, err
		}
	}

	return m.RawRows(), nil
}

// rotateGonum round-trips the grid through gonum's *mat.Dense.
func rotateGonum(g [][]float64, q int, method string) ([][]float64, error) {
	d, err := matrix.NewDenseFrom(g)
	if err != nil {
		return nil, err
	}
	gm := d.ToMat()
	if method == methodInPlace {
		for i := 0; i < q; i++ {
			if err = matrix.RotateMat(gm); err != nil {
				return nil, err
			}
		}
	} else {
		for i := 0; i < q; i++ {
			r, err := matrix.Rotated(matrix.WrapMat(gm))
			if err != nil {
				return nil, err
			}
			gm = r.ToMat()
		}
	}

	res, err := matrix.FromMat(gm)
	if err != nil {
		return nil, err
	}

	return res.RawRows(), nil
}
