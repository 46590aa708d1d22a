// Package uniaz converts single Unicode characters into reversible strings
// drawn from a fixed small alphabet (by default the lowercase Latin letters),
// and back. CJK text, emoji and symbols get a pure a-z representation that
// survives transport and storage paths that mangle non-ASCII bytes, while
// staying readable and memorable.
//
// A character is encoded by taking its Unicode scalar value, rewriting it as
// a base-N digit sequence where N is the alphabet size, scrambling the digits
// with the invertible disorder cipher from the subtle package, and mapping
// each digit to its alphabet symbol. Decoding reverses every step. This is
// not cryptography: there is no key material beyond the alphabet, and no
// resistance to analysis is claimed.
//
// Example usage:
//
//	codec := uniaz.New()
//	encrypted := codec.Encrypt('你')
//	decrypted, err := codec.Decrypt(encrypted)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// decrypted == '你'
package uniaz

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/skikozou/uniaz/subtle"
)

// ErrInvalidScalarValue is returned by Decrypt when the decoded integer is
// not a valid Unicode scalar value: it exceeds 0x10FFFF, falls in the
// surrogate range, or the input has no canonical encoding at all.
var ErrInvalidScalarValue = errors.New("invalid Unicode scalar value")

// cipherIterations is the number of disorder passes applied per character.
const cipherIterations = 2

// Codec encrypts single Unicode characters into alphabet strings and
// decrypts them back. It holds no mutable state after construction and is
// safe for concurrent use from multiple goroutines.
type Codec struct {
	alphabet *Alphabet
	cipher   *subtle.Cipher
}

// New returns a Codec over the default lowercase a-z alphabet.
func New() *Codec {
	return NewWithAlphabet(DefaultAlphabet())
}

// NewWithAlphabet returns a Codec over a custom alphabet. The alphabet
// defines both the output symbols and the numeral base of the encoding, so
// codecs with different alphabets produce incompatible strings.
func NewWithAlphabet(alphabet *Alphabet) *Codec {
	cipher, err := subtle.NewCipher(alphabet.Size())
	if err != nil {
		// NewAlphabet enforces size >= 2, so the radix is always valid.
		panic("uniaz: " + err.Error())
	}
	return &Codec{alphabet: alphabet, cipher: cipher}
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *Alphabet {
	return c.alphabet
}

// Encrypt encodes a single character. The result contains only alphabet
// symbols and its length alone determines the digit count, so no delimiter
// is needed to decode it. Encrypt never fails for a valid Unicode scalar
// value; surrogate halves cannot occur as standalone runes obtained from a
// string. A rune outside the valid scalar range (a negative value or a
// surrogate half, reachable only through an integer cast) is outside the
// contract: the result is empty or fails Decrypt instead of round-tripping.
func (c *Codec) Encrypt(plain rune) string {
	digits := subtle.ToDigits(big.NewInt(int64(plain)), c.alphabet.Size())
	encrypted := c.cipher.Encrypt(digits, cipherIterations)

	var b strings.Builder
	for _, d := range encrypted {
		sym, err := c.alphabet.SymbolAt(int(d))
		if err != nil {
			// The cipher is a bijection over [0, Size()).
			panic("uniaz: " + err.Error())
		}
		b.WriteRune(sym)
	}
	return b.String()
}

// Decrypt decodes a string produced by Encrypt back to the original
// character. It returns ErrUnknownSymbol if the input contains a character
// outside the alphabet, and ErrInvalidScalarValue if the decoded integer is
// not an assignable Unicode scalar value. The latter is the primary
// defensive check for untrusted input: arbitrary alphabet strings decode to
// arbitrary integers.
func (c *Codec) Decrypt(cipherText string) (rune, error) {
	if cipherText == "" {
		return 0, fmt.Errorf("%w: empty cipher text", ErrInvalidScalarValue)
	}

	digits := make([]uint32, 0, len(cipherText))
	for _, sym := range cipherText {
		idx, err := c.alphabet.IndexOf(sym)
		if err != nil {
			return 0, err
		}
		digits = append(digits, uint32(idx))
	}

	decrypted := c.cipher.Decrypt(digits, cipherIterations)
	value, err := subtle.FromDigits(decrypted, c.alphabet.Size())
	if err != nil {
		return 0, err
	}

	if !value.IsInt64() || value.Int64() > int64(utf8.MaxRune) {
		return 0, fmt.Errorf("%w: %s exceeds the maximum code point", ErrInvalidScalarValue, value)
	}
	plain := rune(value.Int64())
	if !utf8.ValidRune(plain) {
		return 0, fmt.Errorf("%w: %#x is in the surrogate range", ErrInvalidScalarValue, plain)
	}
	return plain, nil
}

// EncryptString encodes every character of text and joins the encodings with
// a single space. The space acts as the segmentation rule for
// DecryptString; it can never collide with an encoding because encodings
// draw only from the alphabet. The string API therefore requires an alphabet
// without whitespace symbols; Encrypt and Decrypt carry no such restriction.
func (c *Codec) EncryptString(text string) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Encrypt(r))
	}
	return b.String()
}

// DecryptString decodes a string produced by EncryptString, splitting on
// whitespace. It fails with the first token's error if any token is invalid.
func (c *Codec) DecryptString(text string) (string, error) {
	var b strings.Builder
	for _, token := range strings.Fields(text) {
		r, err := c.Decrypt(token)
		if err != nil {
			return "", fmt.Errorf("token %q: %w", token, err)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
