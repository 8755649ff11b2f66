package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trilath/internal/cases"
)

func batchCmd() *cobra.Command {
	var (
		file string
		opts reportOptions
	)

	c := &cobra.Command{
		Use:   "batch",
		Short: "Check every case in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := cases.LoadFile(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			valid := 0
			for _, c := range list {
				if c.Sides.Valid() {
					valid++
				}
				fmt.Fprintf(out, "%s: %s\n", c.Name, verdict(c.Sides))
				details(out, c.Sides, opts)
			}
			fmt.Fprintf(out, "valid=%d invalid=%d\n", valid, len(list)-valid)
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "YAML file with a top-level cases list (required)")
	addReportFlags(c.Flags(), &opts)
	_ = c.MarkFlagRequired("file")
	return c
}
