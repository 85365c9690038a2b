// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Literal returns the given value as a literal of the OpenSCAD language.
// Numbers use the shortest representation that round-trips, switching to
// exponent form outside of [1e-6, 1e21). NaN has no literal and renders as
// undef; infinities render as out-of-range exponents that parse as inf.
// Vectors render without spaces between elements.
func Literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "undef"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case string:
		return Quote(x)
	case Expr:
		return string(x)
	case Range:
		return "[" + Literal(x.Start) + " : " + Literal(x.End) + "]"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	if f, ok := Float(v); ok {
		return FormatNumber(f)
	}
	if el, ok := Elems(v); ok {
		parts := make([]string, len(el))
		for i, e := range el {
			parts[i] = Literal(e)
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return Quote(fmt.Sprint(v))
}

// FormatNumber formats the given number as a literal.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "undef"
	case math.IsInf(f, 1):
		return "1e1000"
	case math.IsInf(f, -1):
		return "-1e1000"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// clean up e-09 to e-9
		n := len(s)
		if n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Quote returns the given string as a double-quoted string literal.
// The escaping rules of JSON strings are a subset of those accepted
// by OpenSCAD, so the standard JSON encoder is used.
func Quote(s string) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
