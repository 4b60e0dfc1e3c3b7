package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "voxraster",
		Short:         "Hierarchical triangle-mesh-to-voxel rasterizer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newRasterizeCmd())
	root.AddCommand(newPlanCmd())

	return root
}
