// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ui draws the keypad on a terminal and feeds mouse clicks and
// key presses to an exec.Context.
//
// The screen looks like this, with the history to the right:
//
//	┌───────────────────────┐
//	│                  12+30│  History
//	└───────────────────────┘  7x6 = 42
//	 [ C ] [ ⌫ ] [ % ] [ / ]
//	 [ 7 ] [ 8 ] [ 9 ] [ x ]
//	 ...
//
// All drawing and all changes to the session happen on the goroutine
// that calls Run.
package ui // import "robpike.io/keypad/ui"

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"robpike.io/keypad/config"
	"robpike.io/keypad/exec"
	"robpike.io/keypad/pad"
)

// button is a clickable label on the screen.
type button struct {
	label  string
	action pad.Action
	x, y   int // Top left.
	width  int
}

func (b *button) contains(x, y int) bool {
	return y == b.y && b.x <= x && x < b.x+b.width
}

// reload carries a reloaded configuration file into the event loop.
type reload struct {
	file *config.File
	err  error
}

// stop asks the event loop to return.
type stop struct{}

// UI is a keypad on a terminal screen.
type UI struct {
	screen  tcell.Screen
	context *exec.Context
	log     *slog.Logger
	buttons []button
	down    bool // Mouse button 1 is held.
	done    bool
}

// Open initializes the terminal and returns a UI for the session.
func Open(c *exec.Context, logger *slog.Logger) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(screen, c, logger)
}

// New returns a UI that draws on the screen, which it initializes.
func New(screen tcell.Screen, c *exec.Context, logger *slog.Logger) (*UI, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseButtonEvents)
	u := &UI{
		screen:  screen,
		context: c,
		log:     logger,
	}
	u.layout()
	return u, nil
}

// Close restores the terminal.
func (u *UI) Close() {
	u.screen.Fini()
}

// Reload delivers a reloaded configuration file to the UI. It may be
// called from any goroutine; its signature suits config.Watch.
func (u *UI) Reload(f *config.File, err error) {
	if perr := u.screen.PostEvent(tcell.NewEventInterrupt(reload{f, err})); perr != nil {
		u.log.Warn("dropped config reload", "err", perr)
	}
}

// Run draws the keypad and handles events until the user quits or ctx
// is done.
func (u *UI) Run(ctx context.Context) error {
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			u.screen.PostEvent(tcell.NewEventInterrupt(stop{}))
		case <-finished:
		}
	}()
	u.draw()
	for !u.done {
		ev := u.screen.PollEvent()
		if ev == nil { // Screen finalized.
			return nil
		}
		u.handle(ev)
		if !u.done {
			u.draw()
		}
	}
	return ctx.Err()
}

// handle applies a single event.
func (u *UI) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		u.key(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !u.down {
			u.click(x, y)
		}
		u.down = down
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case stop:
			u.done = true
		case reload:
			u.apply(data)
		}
	}
}

func (u *UI) key(ev *tcell.EventKey) {
	var k pad.Key
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		u.done = true
		return
	case tcell.KeyRune:
		k = pad.KeyRune
	case tcell.KeyEnter:
		k = pad.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k = pad.KeyBackspace
	default:
		return
	}
	if a, ok := pad.KeyAction(k, ev.Rune()); ok {
		u.context.HandleAction(a)
	}
}

func (u *UI) click(x, y int) {
	for i := range u.buttons {
		b := &u.buttons[i]
		if b.contains(x, y) {
			u.log.Debug("click", "label", b.label)
			u.context.HandleAction(b.action)
			return
		}
	}
}

func (u *UI) apply(r reload) {
	if r.err != nil {
		u.log.Error("config reload", "err", r.err)
		return
	}
	r.file.Apply(u.context.Config())
	u.context.Reconfigure()
	u.layout()
	u.log.Info("config reloaded")
}
