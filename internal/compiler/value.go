package compiler

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

var unitSuffix = regexp.MustCompile(`\s*(dB|db|DB|%|cents|Cents|ms|s|Hz|hz)$`)

// ParseValue coerces a raw property value into a tagged value. The attempt
// order is fixed for output parity: strip a known unit suffix, then boolean,
// then numeric (fractional when a decimal point is present), then a
// surrounding literal-quote pair, else the text as-is.
func ParseValue(raw string) cty.Value {
	s := strings.TrimSpace(raw)
	s = unitSuffix.ReplaceAllString(s, "")

	switch strings.ToLower(s) {
	case "true":
		return cty.True
	case "false":
		return cty.False
	}

	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return cty.NumberFloatVal(f)
		}
	} else if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return cty.NumberIntVal(i)
	}

	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return cty.StringVal(s[1 : len(s)-1])
	}
	return cty.StringVal(s)
}

// goValue lowers a coerced value to the native representation plan steps
// carry. Whole numbers come back as int64, everything else keeps its type.
func goValue(v cty.Value) any {
	switch v.Type() {
	case cty.Bool:
		return v.True()
	case cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i
		}
		f, _ := bf.Float64()
		return f
	}
	return v.AsString()
}
