package x11

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/milk9111/beam/spotlight"
)

var argb = xproto.VisualInfo{
	VisualId:  0x21,
	Class:     xproto.VisualClassTrueColor,
	RedMask:   0x00FF0000,
	GreenMask: 0x0000FF00,
	BlueMask:  0x000000FF,
}

func TestFindARGBVisual(t *testing.T) {
	rgb := xproto.VisualInfo{VisualId: 0x20, Class: xproto.VisualClassTrueColor, RedMask: 0xFF0000, GreenMask: 0xFF00, BlueMask: 0xFF}
	direct := xproto.VisualInfo{VisualId: 0x30, Class: xproto.VisualClassDirectColor}

	cases := []struct {
		name   string
		depths []xproto.DepthInfo
		want   xproto.Visualid
		ok     bool
	}{
		{"argb_present", []xproto.DepthInfo{{Depth: 24, Visuals: []xproto.VisualInfo{rgb}}, {Depth: 32, Visuals: []xproto.VisualInfo{direct, argb}}}, 0x21, true},
		{"only_24bit", []xproto.DepthInfo{{Depth: 24, Visuals: []xproto.VisualInfo{rgb}}}, 0, false},
		{"32bit_not_truecolor", []xproto.DepthInfo{{Depth: 32, Visuals: []xproto.VisualInfo{direct}}}, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, ok := findARGBVisual(&xproto.ScreenInfo{AllowedDepths: c.depths})
			if ok != c.ok || v.VisualId != c.want {
				t.Fatalf("got %#x/%v, want %#x/%v", v.VisualId, ok, c.want, c.ok)
			}
		})
	}
}

func TestPixel(t *testing.T) {
	cases := []struct {
		name string
		c    color.RGBA
		want uint32
	}{
		{"transparent", color.RGBA{}, 0},
		{"black_at_ceiling", color.RGBA{A: 0x99}, 0x99000000},
		{"opaque_white", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, 0xFFFFFFFF},
		{"channels", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, 0x78123456},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := pixel(c.c, argb); got != c.want {
				t.Fatalf("pixel(%v) = %#08x, want %#08x", c.c, got, c.want)
			}
		})
	}
}

func TestCircleArc(t *testing.T) {
	want := xproto.Arc{X: -200, Y: 50, Width: 600, Height: 600, Angle1: 0, Angle2: 360 * 64}
	if diff := cmp.Diff(want, circleArc(100, 350, 600)); diff != "" {
		t.Fatalf("arc (-want +got):\n%s", diff)
	}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		ev   xgb.Event
		want spotlight.Event
	}{
		{"press", xproto.ButtonPressEvent{EventX: 5, EventY: 6}, spotlight.Event{Kind: spotlight.EventButtonPress, X: 5, Y: 6}},
		{"release", xproto.ButtonReleaseEvent{EventX: 7, EventY: 8}, spotlight.Event{Kind: spotlight.EventButtonRelease, X: 7, Y: 8}},
		{"motion", xproto.MotionNotifyEvent{EventX: 100, EventY: 200}, spotlight.Event{Kind: spotlight.EventMotion, X: 100, Y: 200}},
		{"key_press", xproto.KeyPressEvent{Detail: 9}, spotlight.Event{Kind: spotlight.EventKeyPress}},
		{"key_release", xproto.KeyReleaseEvent{Detail: 9}, spotlight.Event{Kind: spotlight.EventKeyRelease}},
		{"expose", xproto.ExposeEvent{}, spotlight.Event{Kind: spotlight.EventOther}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := translate(c.ev); got != c.want {
				t.Fatalf("translate(%T) = %+v, want %+v", c.ev, got, c.want)
			}
		})
	}
}

func TestOpenWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")

	_, err := Open(Options{Name: "beam"})
	var cerr *ConnectError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConnectError, got %v", err)
	}
	if !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
}

func TestOpenUnreachableDisplay(t *testing.T) {
	const endpoint = ":4917"
	t.Setenv("DISPLAY", "")

	_, err := Open(Options{Display: endpoint, Name: "beam"})
	var cerr *ConnectError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConnectError, got %v", err)
	}
	if cerr.Display != endpoint || !strings.Contains(err.Error(), endpoint) {
		t.Fatalf("diagnostic should name %q: %v", endpoint, err)
	}
}

func TestResolveDisplay(t *testing.T) {
	t.Setenv("DISPLAY", ":3")
	if got, err := ResolveDisplay(""); err != nil || got != ":3" {
		t.Fatalf("ResolveDisplay(\"\") = %q, %v", got, err)
	}
	if got, err := ResolveDisplay(":7"); err != nil || got != ":7" {
		t.Fatalf("ResolveDisplay(\":7\") = %q, %v", got, err)
	}
}
