package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Neumenon/ttree/ttree"
	"github.com/spf13/cobra"
)

var inspectNames []string

func init() {
	cmd := newInspectCmd()
	cmd.Flags().StringSliceVar(&inspectNames, "name", nil, "Field/variant name to register for unhashing (repeatable)")
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Decode one top-level TTREE node and print it as debug text",
		Long: `inspect reads exactly one encoded TTREE node — from a file, or from
stdin if no file is given — and prints its Debug() form. Trailing bytes
after the node are not decoded, since a serialized TTREE node is
self-delimiting and does not consume more than its own body; with
--verbose, the number of bytes the node consumed out of the whole input
is printed to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			unhash, err := ttree.NewUnhash(inspectNames)
			if err != nil {
				return err
			}
			tree, err := ttree.Decode(data, unhash)
			if err != nil {
				return err
			}
			fmt.Println(tree.Debug())
			printVerbose("consumed %d of %d input bytes\n", encodedLen(tree), len(data))
			return nil
		},
	}
}

func encodedLen(t *ttree.Tree) int {
	b, err := ttree.Encode(t)
	if err != nil {
		return -1
	}
	return len(b)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
