package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/meshforge/voxraster/planner"
)

func newPlanCmd() *cobra.Command {
	var (
		res      int
		twoLevel uint32
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the subdivision plan for a resolution",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				factors []uint32
				err     error
			)
			if twoLevel != 0 {
				factors, err = planner.PlanTwoLevel(res, twoLevel)
			} else {
				factors, err = planner.Plan(res)
			}
			if err != nil {
				return err
			}

			levels := lo.Map(factors, func(f uint32, _ int) string {
				return fmt.Sprintf("%d", f)
			})
			fmt.Fprintf(cmd.OutOrStdout(), "R=%d levels=[%s]\n", res, strings.Join(levels, ","))
			return nil
		},
	}

	cmd.Flags().IntVar(&res, "res", 64, "grid resolution")
	cmd.Flags().Uint32Var(&twoLevel, "two-level", 0, "use the two-level plan with this La (8 or 16); 0 = greedy plan")

	return cmd
}
