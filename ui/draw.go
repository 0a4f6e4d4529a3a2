// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"robpike.io/keypad/config"
	"robpike.io/keypad/pad"
)

const (
	gridTop    = 3 // First row of buttons.
	rowStep    = 2 // Rows between buttons.
	historyGap = 3
)

var (
	buttonStyle  = tcell.StyleDefault.Reverse(true)
	controlStyle = buttonStyle.Foreground(tcell.ColorMaroon)
	displayStyle = tcell.StyleDefault.Bold(true)
	errorStyle   = displayStyle.Foreground(tcell.ColorRed)
	titleStyle   = tcell.StyleDefault.Underline(true)
)

// labels returns the button labels, row by row.
func labels(keys config.Keys) [][]string {
	return [][]string{
		{keys.Clear, keys.Backspace, "%", "/"},
		{"7", "8", "9", "x"},
		{"4", "5", "6", "-"},
		{"1", "2", "3", "+"},
		{"0", ".", "^", keys.Evaluate},
	}
}

// layout places the buttons. Every button has the width of the widest
// label plus padding.
func (u *UI) layout() {
	keys := u.context.Config().Keys()
	rows := labels(keys)
	width := 1
	for _, row := range rows {
		for _, l := range row {
			width = max(width, uniseg.StringWidth(l))
		}
	}
	width += 4
	u.buttons = u.buttons[:0]
	for i, row := range rows {
		for j, l := range row {
			a, ok := pad.ParseAction(keys, l)
			if !ok {
				u.log.Warn("unusable button label", "label", l)
				continue
			}
			u.buttons = append(u.buttons, button{
				label:  l,
				action: a,
				x:      1 + j*(width+1),
				y:      gridTop + i*rowStep,
				width:  width,
			})
		}
	}
}

// gridWidth returns the width of the button grid.
func (u *UI) gridWidth() int {
	w := 0
	for _, b := range u.buttons {
		w = max(w, b.x+b.width)
	}
	return w
}

func (u *UI) draw() {
	s := u.screen
	s.Clear()
	w := u.gridWidth()

	// Display, right justified in a box, showing the tail if it is too long.
	box(s, 0, 0, w+1, 2)
	text := tail(u.context.Display(), w-1)
	style := displayStyle
	if u.context.IsError() {
		style = errorStyle
	}
	drawString(s, w-uniseg.StringWidth(text), 1, text, style)

	for _, b := range u.buttons {
		style := buttonStyle
		if b.action.Kind != pad.Append {
			style = controlStyle
		}
		for x := b.x; x < b.x+b.width; x++ {
			s.SetContent(x, b.y, ' ', nil, style)
		}
		lw := uniseg.StringWidth(b.label)
		drawString(s, b.x+(b.width-lw)/2, b.y, b.label, style)
	}

	x := w + historyGap
	drawString(s, x, 1, "History", titleStyle)
	for i, e := range u.context.History() {
		drawString(s, x, 2+i, e, tcell.StyleDefault)
	}
	s.Show()
}

// drawString draws s starting at x, y, one grapheme cluster per cell
// group, and returns the x after it.
func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	g := uniseg.NewGraphemes(str)
	for g.Next() {
		runes := g.Runes()
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += max(g.Width(), 1)
	}
	return x
}

// tail returns the longest suffix of str that fits in width cells.
func tail(str string, width int) string {
	for str != "" && uniseg.StringWidth(str) > width {
		_, rest, _, _ := uniseg.FirstGraphemeClusterInString(str, -1)
		str = rest
	}
	return str
}

// box draws a frame with corners at x0, y0 and x1, y1.
func box(s tcell.Screen, x0, y0, x1, y1 int) {
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, tcell.StyleDefault)
		s.SetContent(x, y1, tcell.RuneHLine, nil, tcell.StyleDefault)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, tcell.StyleDefault)
		s.SetContent(x1, y, tcell.RuneVLine, nil, tcell.StyleDefault)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, tcell.StyleDefault)
	s.SetContent(x1, y0, tcell.RuneURCorner, nil, tcell.StyleDefault)
	s.SetContent(x0, y1, tcell.RuneLLCorner, nil, tcell.StyleDefault)
	s.SetContent(x1, y1, tcell.RuneLRCorner, nil, tcell.StyleDefault)
}
