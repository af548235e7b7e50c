package main

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/milk9111/beam/profile"
	"github.com/milk9111/beam/spotlight"
	"github.com/milk9111/beam/x11"
)

// runX11 opens the overlay and runs the loop until the X connection fails.
// Every failure exits the process with status 1.
func runX11(logger *log.Logger, p *profile.Profile, curve spotlight.Curve, base color.RGBA) {
	display, err := x11.Open(x11.Options{
		Display: flagDisplay,
		Name:    p.Name,
		Class:   p.WindowClass(),
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal(err)
	}
	defer display.Close()

	loop := spotlight.NewLoop(spotlight.Config{
		Source:   display,
		Surface:  display,
		Pointer:  display,
		Flusher:  display,
		Curve:    curve,
		Color:    base,
		Diameter: p.Spotlight.Diameter,
		Interval: p.FrameInterval(),
		Logger:   logger,
	})
	if err := loop.Run(); err != nil {
		display.Close()
		logger.Fatal("overlay loop", "err", err)
	}
}
