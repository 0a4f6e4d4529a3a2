// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"math"
	"strings"

	"robpike.io/keypad/config"
	"robpike.io/keypad/parse"
	"robpike.io/keypad/value"
)

// trailing lists the characters an expression may not end with.
const trailing = "+-*x/^."

// Eval parses and evaluates text, returning the result formatted for
// the display. Any failure is returned as a value.Error. If the debug
// flag "panic" is set, panics are not recovered.
func Eval(conf *config.Config, text string) (result string, err error) {
	if text != "" && strings.ContainsRune(trailing, rune(text[len(text)-1])) {
		return "", value.Error{Kind: value.Malformed, Msg: fmt.Sprintf("expression ends with %q", text[len(text)-1:])}
	}
	defer func() {
		if conf.Debug("panic") {
			return
		}
		r := recover()
		if r == nil {
			return
		}
		result = ""
		switch r := r.(type) {
		case value.Error:
			err = r
		case error:
			err = value.Error{Kind: value.Evaluation, Msg: r.Error()}
		default:
			err = value.Error{Kind: value.Evaluation, Msg: fmt.Sprint(r)}
		}
	}()
	x := parse.Parse(conf, text).Eval()
	if math.IsInf(x, 0) || math.IsNaN(x) {
		value.Errorf(value.NonFinite, "%s is %v", text, x)
	}
	return value.Format(x, conf.Format()), nil
}
