package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Neumenon/ttree/frame"
	"github.com/spf13/cobra"
)

func init() {
	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "Inspect TF1-framed TTREE streams",
	}
	frameCmd.AddCommand(newFrameDecodeCmd())
	rootCmd.AddCommand(frameCmd)
}

func newFrameDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode TF1 frames and print a summary of each",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = os.Stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			reader := frame.NewReader(r)
			n := 0
			for {
				f, err := reader.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return fmt.Errorf("frame %d: %w", n, err)
				}
				n++
				printFrameSummary(n, f)
			}
			fmt.Fprintf(os.Stderr, "--- %d frames ---\n", n)
			return nil
		},
	}
}

func printFrameSummary(n int, f *frame.Frame) {
	fmt.Printf("--- frame %d ---\n", n)
	fmt.Printf("  sid=%d seq=%d kind=%s len=%d\n", f.SID, f.Seq, f.Kind, len(f.Payload))
	if f.CRC != nil {
		fmt.Printf("  crc=%08x\n", *f.CRC)
	}
	if f.Base != nil {
		fmt.Printf("  base=%s\n", frame.HashToHex(*f.Base))
	}
	if f.IsFinal() {
		fmt.Println("  final=true")
	}
	if f.Kind == frame.KindDoc && len(f.Payload) > 0 {
		if tree, err := f.Tree(nil); err == nil {
			fmt.Printf("  payload: %s\n", tree.Debug())
		} else {
			fmt.Printf("  payload: <undecodable: %v>\n", err)
		}
	}
}
