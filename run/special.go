// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"fmt"
	"strconv"
	"strings"

	"robpike.io/keypad/config"
	"robpike.io/keypad/exec"
	"robpike.io/keypad/pad"
)

const specialHelpMessage = `
) help
	Print this list of special commands.
) clear
	Clear the display. The history is kept.
) debug name 0|1
	Toggle or set the named debugging flag. With no argument,
	lists the settings.
) format ""
	Set the format for printing results. If empty, results are
	printed in the shortest form that reads back exactly.
	The format is in the style of golang.org/pkg/fmt.
) history
	Print the history of results, newest first.
) json 0|1
	Toggle or set printing of the session as JSON after each line.
) keys
	Print the labels of the control buttons.
`

// Help returns the list of special commands.
func Help() string {
	return specialHelpMessage[1:]
}

func truth(x bool) int {
	if x {
		return 1
	}
	return 0
}

// special runs a special command, the text after the ')'.
// It reports whether the command was understood.
func special(c *exec.Context, text string) bool {
	conf := c.Config()
	out := conf.Output()
	fields := strings.Fields(text)
	if len(fields) == 0 {
		fields = []string{"help"}
	}
	args := fields[1:]
	switch fields[0] {
	case "help":
		fmt.Fprint(out, Help())
	case "clear":
		c.HandleAction(pad.Action{Kind: pad.Clear})
	case "debug":
		if len(args) == 0 {
			for _, f := range conf.DebugFlags() {
				fmt.Fprintf(out, "%s\t%d\n", f, truth(conf.Debug(f)))
			}
			break
		}
		name := args[0]
		if len(args) == 1 {
			// Toggle the value.
			conf.SetDebug(name, !conf.Debug(name))
			fmt.Fprintln(out, truth(conf.Debug(name)))
			break
		}
		val, ok := boolArg(c, args[1])
		if !ok {
			return false
		}
		conf.SetDebug(name, val)
	case "format":
		if len(args) == 0 {
			fmt.Fprintf(out, "%q\n", conf.Format())
			break
		}
		// Quoted so the format can hold spaces.
		arg := strings.TrimSpace(text)
		arg = strings.TrimSpace(arg[len(fields[0]):])
		format, err := strconv.Unquote(arg)
		if err != nil {
			format = arg
		}
		if err := config.CheckFormat(format); err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			return false
		}
		conf.SetFormat(format)
	case "history":
		for _, e := range c.History() {
			fmt.Fprintln(out, e)
		}
	case "json":
		val := !conf.JSON()
		if len(args) > 0 {
			var ok bool
			val, ok = boolArg(c, args[0])
			if !ok {
				return false
			}
		}
		conf.SetJSON(val)
	case "keys":
		keys := conf.Keys()
		fmt.Fprintf(out, "clear\t%s\nbackspace\t%s\nevaluate\t%s\n", keys.Clear, keys.Backspace, keys.Evaluate)
	default:
		fmt.Fprintf(conf.ErrOutput(), "unknown special command %q\n", fields[0])
		return false
	}
	return true
}

func boolArg(c *exec.Context, s string) (bool, bool) {
	switch s {
	case "0":
		return false, true
	case "1":
		return true, true
	}
	fmt.Fprintf(c.Config().ErrOutput(), "illegal value %q; want 0 or 1\n", s)
	return false, false
}
