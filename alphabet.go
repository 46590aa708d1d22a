package uniaz

import (
	"errors"
	"fmt"
)

// DefaultSymbols is the symbol set used by New: the 26 lowercase Latin
// letters, giving base-26 encodings.
const DefaultSymbols = "abcdefghijklmnopqrstuvwxyz"

var (
	// ErrInvalidAlphabet is returned when an alphabet has fewer than two
	// symbols or contains duplicates.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrUnknownSymbol is returned when a symbol is not a member of the
	// alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrIndexOutOfRange is returned when a symbol index is outside
	// [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Alphabet is an ordered set of distinct symbols. It defines both the output
// character set of an encoding and the numeral base used to represent scalar
// values. An Alphabet is immutable after construction and safe for concurrent
// use.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from the runes of symbols, in order.
// It returns ErrInvalidAlphabet if there are fewer than two runes or any
// rune appears twice.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidAlphabet, len(runes))
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, r)
		}
		index[r] = i
	}

	return &Alphabet{symbols: runes, index: index}, nil
}

// DefaultAlphabet returns the lowercase a-z alphabet.
func DefaultAlphabet() *Alphabet {
	a, err := NewAlphabet(DefaultSymbols)
	if err != nil {
		panic("uniaz: default alphabet construction failed: " + err.Error())
	}
	return a
}

// Size returns the number of symbols, i.e. the numeral base.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// SymbolAt returns the symbol at index i.
func (a *Alphabet) SymbolAt(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(a.symbols))
	}
	return a.symbols[i], nil
}

// IndexOf returns the index of symbol r.
func (a *Alphabet) IndexOf(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
	}
	return i, nil
}

// String returns the symbols in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}
