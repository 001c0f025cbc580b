// ttree is a small command-line front end for the ttree codec: it hashes
// field names the way HashName does, decodes and pretty-prints raw
// TTREE byte streams, and inspects TF1-framed streams of them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "ttree",
	Short:   "Inspect and hash TTREE binary trees",
	Long:    `ttree hashes field names, decodes raw TTREE byte streams, and inspects TF1-framed streams of them.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ttree: "+format+"\n", args...)
	os.Exit(1)
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
