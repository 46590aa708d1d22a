package uniaz

import (
	"math/big"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skikozou/uniaz/subtle"
)

func TestEncryptDecryptChar(t *testing.T) {
	codec := New()

	for _, ch := range []rune{'A', 'a', '0', ' ', '你', '好', '€', '😀', 0, utf8.MaxRune} {
		encrypted := codec.Encrypt(ch)
		require.NotEmpty(t, encrypted, "encrypt %q", ch)

		decrypted, err := codec.Decrypt(encrypted)
		require.NoError(t, err, "decrypt %q (from %q)", encrypted, ch)
		assert.Equal(t, ch, decrypted)
	}
}

func TestEncryptOutputStaysInAlphabet(t *testing.T) {
	codec := New()

	for _, ch := range []rune{'A', '你', '😀', 'ß', '中'} {
		encrypted := codec.Encrypt(ch)
		for _, sym := range encrypted {
			_, err := codec.Alphabet().IndexOf(sym)
			assert.NoError(t, err, "symbol %q in %q", sym, encrypted)
		}
	}
}

func TestEncryptIsInjective(t *testing.T) {
	codec := New()

	seen := make(map[string]rune)
	for ch := rune(0); ch < 0x3000; ch++ {
		if !utf8.ValidRune(ch) {
			continue
		}
		encrypted := codec.Encrypt(ch)
		if prev, dup := seen[encrypted]; dup {
			t.Fatalf("%q and %q both encrypt to %q", prev, ch, encrypted)
		}
		seen[encrypted] = ch
	}
}

func TestDecryptUnknownSymbol(t *testing.T) {
	codec := New()

	for _, s := range []string{"1", "ab12", "AB", "a b", "你"} {
		_, err := codec.Decrypt(s)
		assert.ErrorIs(t, err, ErrUnknownSymbol, "input %q", s)
	}
}

func TestDecryptEmpty(t *testing.T) {
	codec := New()

	_, err := codec.Decrypt("")
	assert.ErrorIs(t, err, ErrInvalidScalarValue)
}

func TestDecryptSurrogateRange(t *testing.T) {
	codec := New()

	// Craft cipher text that decodes to a surrogate by running the encode
	// pipeline on a value Encrypt would never be handed.
	for _, v := range []int64{0xD800, 0xDC00, 0xDFFF} {
		digits := subtle.ToDigits(big.NewInt(v), codec.Alphabet().Size())
		crafted := symbolsFor(t, codec, codec.cipher.Encrypt(digits, cipherIterations))

		_, err := codec.Decrypt(crafted)
		assert.ErrorIs(t, err, ErrInvalidScalarValue, "value %#x (cipher text %q)", v, crafted)
	}
}

func TestDecryptBeyondMaxCodePoint(t *testing.T) {
	codec := New()

	digits := subtle.ToDigits(big.NewInt(0x110000), codec.Alphabet().Size())
	crafted := symbolsFor(t, codec, codec.cipher.Encrypt(digits, cipherIterations))

	_, err := codec.Decrypt(crafted)
	assert.ErrorIs(t, err, ErrInvalidScalarValue)

	// Absurdly long input decodes to a huge integer; must fail, not wrap.
	_, err = codec.Decrypt(strings.Repeat("z", 64))
	assert.ErrorIs(t, err, ErrInvalidScalarValue)
}

func TestCustomAlphabets(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
	}{
		{"binary", "01"},
		{"hex", "0123456789abcdef"},
		{"greek", "αβγδεζ"},
		{"uppercase", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alphabet, err := NewAlphabet(tt.symbols)
			require.NoError(t, err)
			codec := NewWithAlphabet(alphabet)

			for _, ch := range []rune{'€', 'A', '你', '😀'} {
				encrypted := codec.Encrypt(ch)
				decrypted, err := codec.Decrypt(encrypted)
				require.NoError(t, err, "decrypt %q", encrypted)
				assert.Equal(t, ch, decrypted)
			}
		})
	}
}

func TestLargeAlphabetRoundTrip(t *testing.T) {
	// An alphabet indexed past 65535 exercises the full digit width; a
	// narrower digit type would truncate high indices and decode to the
	// wrong character without any error.
	const size = 70000
	symbols := make([]rune, size)
	for i := range symbols {
		symbols[i] = rune(0x20000 + i)
	}
	alphabet, err := NewAlphabet(string(symbols))
	require.NoError(t, err)
	require.Equal(t, size, alphabet.Size())
	codec := NewWithAlphabet(alphabet)

	// 0x10040 is the single base-70000 digit 65600; utf8.MaxRune carries
	// 64111 in its low digit. Both are above the uint16 range.
	for _, ch := range []rune{0x10040, 'A', '你', utf8.MaxRune} {
		encrypted := codec.Encrypt(ch)
		decrypted, err := codec.Decrypt(encrypted)
		require.NoError(t, err, "decrypt %q", encrypted)
		assert.Equal(t, ch, decrypted, "round trip %#x", ch)
	}
}

func TestEncryptInvalidRune(t *testing.T) {
	codec := New()

	// Outside the scalar-value contract: never round-trips, never corrupts.
	assert.Empty(t, codec.Encrypt(-1))

	_, err := codec.Decrypt(codec.Encrypt(0xD800))
	assert.ErrorIs(t, err, ErrInvalidScalarValue)
}

func TestEncryptDecryptString(t *testing.T) {
	codec := New()

	for _, text := range []string{
		"Hello, World!",
		"你好世界",
		"Mixed 混合 text 文本 123 😀",
		"😀😁😂🤣",
		"",
	} {
		encrypted := codec.EncryptString(text)
		decrypted, err := codec.DecryptString(encrypted)
		require.NoError(t, err, "text %q", text)
		assert.Equal(t, text, decrypted)
	}
}

func TestEncryptStringTokensSplitOnSpace(t *testing.T) {
	codec := New()

	encrypted := codec.EncryptString("你好")
	tokens := strings.Fields(encrypted)
	require.Len(t, tokens, 2)

	first, err := codec.Decrypt(tokens[0])
	require.NoError(t, err)
	assert.Equal(t, '你', first)
}

func TestDecryptStringInvalidToken(t *testing.T) {
	codec := New()

	_, err := codec.DecryptString(codec.Encrypt('你') + " 12!")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestAllCodePoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive scalar sweep in short mode")
	}

	codec := New()
	for ch := rune(0); ch <= utf8.MaxRune; ch++ {
		if !utf8.ValidRune(ch) {
			continue
		}
		encrypted := codec.Encrypt(ch)
		decrypted, err := codec.Decrypt(encrypted)
		if err != nil {
			t.Fatalf("decrypt %q (from %#x): %v", encrypted, ch, err)
		}
		if decrypted != ch {
			t.Fatalf("round trip %#x: got %#x via %q", ch, decrypted, encrypted)
		}
	}
}

// symbolsFor maps raw digit values to alphabet symbols, bypassing Encrypt.
func symbolsFor(t *testing.T, codec *Codec, digits []uint32) string {
	t.Helper()

	var b strings.Builder
	for _, d := range digits {
		sym, err := codec.Alphabet().SymbolAt(int(d))
		require.NoError(t, err)
		b.WriteRune(sym)
	}
	return b.String()
}
