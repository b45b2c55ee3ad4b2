package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/intuitionamiga/pixeltoaster"
)

func init() {
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 200, "frames converted per format pair")
	benchCmd.Flags().IntVar(&benchWidth, "width", 640, "frame width")
	benchCmd.Flags().IntVar(&benchHeight, "height", 480, "frame height")
	rootCmd.AddCommand(benchCmd)
}

var (
	benchIterations int
	benchWidth      int
	benchHeight     int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "time every pixel converter",
	Long:  "bench converts a full frame through every canonical to native converter and reports the throughput.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(runBench)
	},
}

type benchResult struct {
	source, destination pixeltoaster.Format
	seconds             float64
}

func (r benchResult) perFrame(iterations int) float64 { return r.seconds / float64(iterations) }

func runBench() error {
	if benchIterations <= 0 || benchWidth <= 0 || benchHeight <= 0 {
		return errors.Errorf("iterations, width and height must be positive")
	}
	timer, err := pixeltoaster.NewTimer()
	if err != nil {
		return err
	}
	results, err := benchConverters(pixeltoaster.NewRegistry(), timer, benchWidth, benchHeight, benchIterations)
	if err != nil {
		return err
	}

	banner(fmt.Sprintf("Converter throughput, %dx%d, %d frames", benchWidth, benchHeight, benchIterations))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "SOURCE\tDESTINATION\tMS/FRAME\tMPIX/S\t")
	pixels := float64(benchWidth * benchHeight)
	for _, r := range results {
		per := r.perFrame(benchIterations)
		mpix := 0.0
		if per > 0 {
			mpix = pixels / per / 1e6
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.1f\t\n", r.source, r.destination, per*1e3, mpix)
	}
	return tw.Flush()
}

func benchConverters(reg *pixeltoaster.Registry, timer *pixeltoaster.Timer, w, h, iterations int) ([]benchResult, error) {
	fp := make([]pixeltoaster.FloatingPointPixel, w*h)
	tc := make([]pixeltoaster.TrueColorPixel, w*h)
	for i := range fp {
		v := float32(i%w) / float32(w)
		fp[i] = pixeltoaster.FloatingPointPixel{R: v, G: 1 - v, B: v * 0.5, A: 1}
		tc[i] = pixeltoaster.TrueColorPixel{R: uint8(i), G: uint8(i >> 3), B: uint8(i >> 6), A: 0xFF}
	}

	var results []benchResult
	for _, dst := range pixeltoaster.Formats() {
		buf := make([]byte, w*h*dst.BytesPerPixel())

		fc, err := reg.FloatingPoint(dst)
		if err != nil {
			return nil, err
		}
		timer.Reset()
		for range iterations {
			fc.ConvertFloatingPoint(buf, fp)
		}
		results = append(results, benchResult{pixeltoaster.FormatFloatRGBA, dst, timer.Time()})

		tcc, err := reg.TrueColor(dst)
		if err != nil {
			return nil, err
		}
		timer.Reset()
		for range iterations {
			tcc.ConvertTrueColor(buf, tc)
		}
		results = append(results, benchResult{pixeltoaster.FormatTrueColorRGBA, dst, timer.Time()})
	}
	return results, nil
}
