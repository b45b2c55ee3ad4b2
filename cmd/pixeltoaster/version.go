package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/intuitionamiga/pixeltoaster"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version and compiled features",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printFeatures()
	},
}

func printFeatures() {
	banner("PixelToaster " + pixeltoaster.Version)
	fmt.Printf("  Go version: %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println()
	fmt.Println("Compiled features:")

	features := pixeltoaster.Features()
	for _, f := range features {
		fmt.Printf("  %s\n", f)
	}
	if len(features) == 0 {
		fmt.Println("  (none)")
	}
}
