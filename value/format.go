// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format returns the text for a result. If format is empty the number
// is printed the way a browser prints a JavaScript number: the shortest
// decimal that round-trips, in positional notation between 1e-6 and 1e21
// and in exponent notation (1e+21, 1.5e-7) outside that range.
// Otherwise format is a fmt verb such as "%.2f".
func Format(x float64, format string) string {
	if format != "" {
		return fmt.Sprintf(format, x)
	}
	if x == 0 {
		return "0" // Also for -0.
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		// Never stored as a result, but )debug parse can show them.
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	abs := math.Abs(x)
	if 1e-6 <= abs && abs < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	e := strings.IndexByte(s, 'e')
	mant, sign, exp := s[:e], s[e+1], strings.TrimLeft(s[e+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + string(sign) + exp
}
