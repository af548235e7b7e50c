// beam dims the screen around the pointer while a mouse button is held, to
// point an audience at part of a shared screen.
//
// Usage:
//
//	beam                     - overlay on $DISPLAY
//	beam --display :1        - overlay on another X display
//	beam --backend ebiten    - overlay in an ebiten window (no X server needed)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/beam/profile"
	"github.com/milk9111/beam/spotlight"
	"github.com/milk9111/beam/window"
)

var (
	flagBackend  string
	flagDisplay  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beam",
	Short: "Spotlight the pointer by dimming the rest of the screen",
	Long: `beam covers the screen with a transparent overlay. Hold any mouse
button to fade the screen dark except for a circle around the pointer;
release it to fade back.

Stop beam by killing the process.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBeam,
}

func init() {
	rootCmd.Flags().StringVar(&flagBackend, "backend", "x11", "Window system backend: x11, ebiten")
	rootCmd.Flags().StringVar(&flagDisplay, "display", "", "X display to attach to (default $DISPLAY)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

func runBeam(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "beam",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	p, err := profile.Load()
	if err != nil {
		logger.Fatal("load profile", "err", err)
	}
	curve, err := spotlight.NewCurve(p.CurveBytes())
	if err != nil {
		logger.Fatal("build curve", "err", err)
	}
	base, err := p.Color()
	if err != nil {
		logger.Fatal("resolve color", "err", err)
	}

	switch strings.ToLower(flagBackend) {
	case "x11":
		runX11(logger, p, curve, base)
	case "ebiten":
		err := window.Run(window.Options{
			Title:    p.Name,
			Curve:    curve,
			Color:    base,
			Diameter: p.Spotlight.Diameter,
			FPS:      p.Fade.FPS,
			Logger:   logger,
		})
		if err != nil {
			logger.Fatal("overlay window", "err", err)
		}
	default:
		return fmt.Errorf("unknown backend %q (want x11 or ebiten)", flagBackend)
	}
	return nil
}
