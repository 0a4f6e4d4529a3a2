// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Keypad is a pocket calculator for the terminal. It shows a display, a grid
of buttons that can be clicked with the mouse, and a history of results.

The buttons are

	C  ⌫  %  /
	7  8  9  x
	4  5  6  -
	1  2  3  +
	0  .  ^  =

C clears the display, ⌫ deletes the last character and = evaluates.
Both x and * multiply, ^ is power and n% is n/100. Power binds tighter
than the sign and groups from the right, so -2^2 is -4 and 2^3^2 is 512.

The keyboard works too: digits and + - * / . ^ % type themselves, Enter
evaluates, Backspace deletes, c clears and Escape quits.

The display refuses input that cannot make sense. An expression may not
start with an operator other than minus, and an operator other than minus
may not follow another operator; such presses are ignored. Minus is always
accepted, so 5--3 is 5 minus negative 3.

A failed evaluation (division by zero, a trailing operator, a result too
large to represent) shows Error. The next press clears it.

Each successful evaluation is recorded in the history as "expr = result",
newest first. The history holds at most one entry for each result and at
most 10 entries; when it is full the oldest is dropped.

Line mode

If standard input or output is not a terminal, or the -line flag is set,
keypad reads lines of button labels and presses them in order, printing
the display after each line. Spaces are ignored and lines starting with #
are comments. For example,

	$ echo '2^10=' | keypad
	1024

Lines starting with ) are special commands:

	) clear          Clear the display.
	) debug name 0|1 Toggle or set a debugging flag: parse, tokens, panic.
	) format "%.2f"  Set the fmt verb for printing results.
	) help           List the special commands.
	) history        Print the history.
	) json 0|1       Print a JSON snapshot of the session after each line.
	) keys           Print the control button labels.

With -json every line prints a snapshot instead of the display:

	{"display":"4","error":false,"history":["2+2 = 4"]}

The -e flag evaluates a single expression, which may use parentheses,
and the -demo flag steps through a short demonstration.

Configuration

Settings are read from the file named by -config, or by default from
keypad/config.toml in the user's configuration directory. The file may be
TOML or YAML, chosen by its extension:

	prompt = "> "
	format = ""
	history = 10
	debug = []

	[keys]
	clear = "AC"
	backspace = "DEL"
	evaluate = "="

Flags override the file. The terminal keypad reloads the file when it
changes.
*/
package main
