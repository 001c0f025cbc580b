package main

import (
	"fmt"

	"github.com/Neumenon/ttree/ttree"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newHashCmd())
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <name> [name...]",
		Short: "Print the 31-bit field/variant hash of one or more names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				h := ttree.HashName(name)
				fmt.Printf("%-32s %-12d %s\n", name, h, h)
			}
			return nil
		},
	}
}
