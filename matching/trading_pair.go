package matching

import (
	"fmt"
	"strings"
)

// TradingPair identifies a single market by its base and quote asset symbols.
// Two pairs are equal when both symbols are equal.
type TradingPair struct {
	base  string
	quote string
}

// NewTradingPair creates new trading pair with specified base and quote symbols.
func NewTradingPair(base string, quote string) TradingPair {
	return TradingPair{
		base:  base,
		quote: quote,
	}
}

// Base returns the base asset symbol.
func (tp TradingPair) Base() string {
	return tp.base
}

// Quote returns the quote asset symbol.
func (tp TradingPair) Quote() string {
	return tp.quote
}

// Valid returns true if both symbols are specified. Symbols must not contain
// the pair separator, otherwise distinct pairs would share one market name.
func (tp TradingPair) Valid() bool {
	return tp.base != "" && tp.quote != "" &&
		!strings.ContainsRune(tp.base, '/') && !strings.ContainsRune(tp.quote, '/')
}

func (tp TradingPair) String() string {
	return fmt.Sprintf("%s/%s", tp.base, tp.quote)
}
