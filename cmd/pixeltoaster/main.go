package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:          "pixeltoaster",
	Short:        "pixeltoaster framebuffer demos and tools",
	Long:         "pixeltoaster opens a display, pushes true color or floating point frames at it and reports on the pixel converters.",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	backendFlag  string
	configFlag   string
	framesFlag   int
	fpsFlag      float64
	scaleFlag    int
	formatFlag   string
	snapshotFlag string
	verboseFlag  bool
	debugFlag    bool
)

func init() {
	cobra.EnablePrefixMatching = true
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&backendFlag, "backend", "b", "ebiten", "display backend: ebiten or headless")
	pf.StringVarP(&configFlag, "config", "c", "", "TOML config file")
	pf.IntVarP(&framesFlag, "frames", "n", 0, "stop after this many frames (0 runs until closed)")
	pf.Float64Var(&fpsFlag, "fps", 60, "frame rate cap (0 disables pacing)")
	pf.IntVar(&scaleFlag, "scale", 2, "integer window scale")
	pf.StringVar(&formatFlag, "format", "", "native format to request from the backend")
	pf.StringVar(&snapshotFlag, "snapshot", "", "write the last presented frame to this PNG (headless only)")
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&debugFlag, "debug", "d", false, "print error stacks")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// run reports the error of fn and exits non-zero on failure.
func run(fn func() error) {
	if err := fn(); err != nil {
		report(os.Stderr, err, debugFlag)
		os.Exit(1)
	}
}

// report prints err and, when debug is set, the stack of the first wrapped
// cause that carries one.
func report(w io.Writer, err error, debug bool) {
	fmt.Fprintf(w, "pixeltoaster: %v\n", err)
	var stacked *errors.Error
	if debug && errors.As(err, &stacked) {
		fmt.Fprint(w, string(stacked.Stack()))
	}
}

// banner prints a heading, in colour when stdout is a terminal.
func banner(s string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("\x1b[1;36m%s\x1b[0m\n", s)
		return
	}
	fmt.Println(s)
}
