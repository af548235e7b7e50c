// Package x11 puts the beam overlay on an X server: a full-screen,
// override-redirect ARGB window kept above other windows.
package x11

import (
	"errors"
	"fmt"
	"os"

	"github.com/jezek/xgb"
)

var (
	ErrNoDisplay    = errors.New("x11: no display endpoint")
	ErrNoARGBVisual = errors.New("x11: no 32-bit TrueColor visual")
)

// ConnectError reports a display endpoint that could not be used.
type ConnectError struct {
	Display string
	Err     error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("x11: cannot connect to X server '%s': %v", e.Display, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// ResolveDisplay returns display, or $DISPLAY when display is empty.
func ResolveDisplay(display string) (string, error) {
	if display != "" {
		return display, nil
	}
	if env := os.Getenv("DISPLAY"); env != "" {
		return env, nil
	}
	return "", &ConnectError{Err: ErrNoDisplay}
}

func connect(display string) (*xgb.Conn, string, error) {
	name, err := ResolveDisplay(display)
	if err != nil {
		return nil, "", err
	}
	conn, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, name, &ConnectError{Display: name, Err: err}
	}
	return conn, name, nil
}
