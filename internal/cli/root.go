package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/trilath/triangle"
)

const (
	msgTriangle    = "This is a triangle."
	msgNotTriangle = "This is not a triangle."
)

// ErrInvalidInput indicates a side that is missing or not a number.
var ErrInvalidInput = errors.New("invalid input")

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type reportOptions struct {
	explain  bool
	classify bool
}

func addReportFlags(fs *pflag.FlagSet, opts *reportOptions) {
	fs.BoolVar(&opts.explain, "explain", false, "print the rejection reason for invalid sides")
	fs.BoolVar(&opts.classify, "classify", false, "print the triangle kind")
}

func newRootCmd() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:          "trilath",
		Short:        "Check whether three side lengths form a triangle",
		Long:         "Reads three side lengths from standard input, one per line, and reports whether they form a triangle.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := readSides(cmd.InOrStdin())
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), s, opts)
			return nil
		},
	}

	addReportFlags(cmd.Flags(), &opts)

	cmd.AddCommand(checkCmd())
	cmd.AddCommand(batchCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// readSides scans the first three whitespace-separated numbers from r.
func readSides(r io.Reader) (triangle.Sides, error) {
	var s triangle.Sides
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n := 0
	for n < len(s) && sc.Scan() {
		v, err := parseSide(sc.Text())
		if err != nil {
			return s, err
		}
		s[n] = v
		n++
	}
	if err := sc.Err(); err != nil {
		return s, fmt.Errorf("read input: %w", err)
	}
	if n < len(s) {
		return s, fmt.Errorf("%w: expected 3 side lengths, got %d", ErrInvalidInput, n)
	}
	return s, nil
}

// parseSide accepts any well-formed number. Out-of-range values come back
// as ±Inf (or 0 on underflow) and are left to the predicate to reject.
func parseSide(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, tok)
	}
	return v, nil
}

func verdict(s triangle.Sides) string {
	if s.Valid() {
		return msgTriangle
	}
	return msgNotTriangle
}

func report(w io.Writer, s triangle.Sides, opts reportOptions) {
	fmt.Fprintln(w, verdict(s))
	details(w, s, opts)
}

// details prints the optional reason and kind lines.
func details(w io.Writer, s triangle.Sides, opts reportOptions) {
	if opts.explain {
		if err := triangle.Validate(s.A(), s.B(), s.C()); err != nil {
			fmt.Fprintf(w, "reason: %v\n", err)
		}
	}
	if opts.classify {
		fmt.Fprintf(w, "kind: %s\n", triangle.Classify(s.A(), s.B(), s.C()))
	}
}
