// Package window runs the beam overlay in a transparent, undecorated,
// always-on-top ebiten window. It covers desktops without an X server.
package window

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/beam/spotlight"
)

// Options configures the overlay window.
type Options struct {
	Title    string
	Curve    spotlight.Curve
	Color    color.RGBA
	Diameter int
	FPS      int
	Logger   *log.Logger
}

// Game adapts the spotlight loop to ebiten's tick/draw cycle. Each tick
// takes at most one queued input event, then advances one frame; ebiten's
// fixed tick rate stands in for the frame sleep.
type Game struct {
	loop    *spotlight.Loop
	queue   spotlight.Queue
	tracker tracker
	surface *screenSurface
	read    func() inputState
	err     error
}

func newGame(opts Options, pointer spotlight.Pointer, read func() inputState) *Game {
	surface := &screenSurface{}
	return &Game{
		loop: spotlight.NewLoop(spotlight.Config{
			Surface:  surface,
			Pointer:  pointer,
			Curve:    opts.Curve,
			Color:    opts.Color,
			Diameter: opts.Diameter,
			Logger:   opts.Logger,
		}),
		surface: surface,
		read:    read,
	}
}

// NewGame returns a game reading the real mouse and keyboard.
func NewGame(opts Options) *Game {
	return newGame(opts, cursor{}, readInput)
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}

	g.tracker.events(g.read(), &g.queue)
	if ev, ok := g.queue.Pop(); ok {
		g.loop.Handle(ev)
	}
	g.loop.Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.img = screen
	if err := g.loop.Render(); err != nil && g.err == nil {
		g.err = err
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a borderless window over the primary monitor and blocks until
// it is closed or rendering fails.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}

	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(fps)
	logger.Debug("overlay window", "width", w, "height", h, "tps", fps)

	return ebiten.RunGameWithOptions(NewGame(opts), &ebiten.RunGameOptions{
		ScreenTransparent: true,
	})
}
