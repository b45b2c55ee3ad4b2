package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/intuitionamiga/pixeltoaster"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "list pixel formats",
	Long:  "formats lists every pixel format with its size and channel layout.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(printFormats)
	},
}

func printFormats() error {
	banner("Pixel formats")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBITS\tBYTES\tKIND\tLAYOUT")
	for _, f := range pixeltoaster.Formats() {
		l := f.Layout()
		kind := "native"
		if f.Canonical() {
			kind = "canonical"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", l.Name, l.BitsPerPixel, l.BytesPerPixel, kind, l.Layout)
	}
	return tw.Flush()
}
