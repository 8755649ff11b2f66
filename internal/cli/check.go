package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trilath/triangle"
)

// checkCmd parses its own flags so that negative sides such as -1 are
// taken as arguments rather than shorthand flags.
func checkCmd() *cobra.Command {
	var opts reportOptions

	c := &cobra.Command{
		Use:                "check A B C",
		Short:              "Check three side lengths given as arguments",
		Example:            "  trilath check 3 4 5\n  trilath check --explain -1 5 5",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagArgs, sideArgs := splitArgs(args)
			fs := cmd.Flags()
			if err := fs.Parse(flagArgs); err != nil {
				return err
			}
			if help, _ := fs.GetBool("help"); help {
				return cmd.Help()
			}
			sideArgs = append(sideArgs, fs.Args()...)
			if len(sideArgs) != 3 {
				return fmt.Errorf("accepts 3 arg(s), received %d", len(sideArgs))
			}

			var s triangle.Sides
			for i, a := range sideArgs {
				v, err := parseSide(a)
				if err != nil {
					return err
				}
				s[i] = v
			}
			report(cmd.OutOrStdout(), s, opts)
			return nil
		},
	}

	addReportFlags(c.Flags(), &opts)
	return c
}

// splitArgs separates numeric tokens from flags. Everything after "--"
// is a side.
func splitArgs(args []string) (flagArgs, sideArgs []string) {
	for i, a := range args {
		if a == "--" {
			return flagArgs, append(sideArgs, args[i+1:]...)
		}
		if _, err := parseSide(a); err == nil {
			sideArgs = append(sideArgs, a)
			continue
		}
		flagArgs = append(flagArgs, a)
	}
	return flagArgs, sideArgs
}
