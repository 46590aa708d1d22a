package subtle

import "fmt"

// Cipher scrambles a base-radix digit sequence with a self-keyed positional
// permutation. For each position i (taken in ascending order when
// encrypting), the digit is replaced as follows:
//
//  1. Let seed(m) be the base-radix value of every digit except position i,
//     reduced modulo m as it is accumulated.
//  2. Build a permutation of [0, radix) by Fisher-Yates over the identity
//     table, swapping index k with index seed(k+1) for k = radix-1 down to 1.
//  3. Locate the current digit in the table and replace it with the entry
//     offset slots later (wrapping), where offset = seed(radix) + i*i + 1.
//
// Decryption walks positions in descending order and applies the offset in
// the opposite direction. Because position i is excluded from its own seed,
// and all other positions hold identical values at the matching step of the
// two sweeps, every step is exactly invertible.
//
// A Cipher holds no key material and performs no mutation after
// construction, so a single instance is safe for concurrent use.
type Cipher struct {
	radix uint64
}

// NewCipher returns a Cipher over digit values [0, radix).
func NewCipher(radix int) (*Cipher, error) {
	if radix < 2 {
		return nil, fmt.Errorf("radix must be at least 2, got %d", radix)
	}
	return &Cipher{radix: uint64(radix)}, nil
}

// Radix returns the digit base the cipher operates on.
func (c *Cipher) Radix() int {
	return int(c.radix)
}

// Encrypt runs the forward transform over digits for the given number of
// iterations and returns a new slice; the input is not modified. Every digit
// must be below the radix; a digit out of range is a caller defect and
// panics.
func (c *Cipher) Encrypt(digits []uint32, iterations int) []uint32 {
	out := c.checkedCopy(digits)
	for it := 0; it < iterations; it++ {
		c.encryptOnce(out)
	}
	return out
}

// Decrypt is the exact inverse of Encrypt for the same iteration count.
func (c *Cipher) Decrypt(digits []uint32, iterations int) []uint32 {
	out := c.checkedCopy(digits)
	for it := 0; it < iterations; it++ {
		c.decryptOnce(out)
	}
	return out
}

func (c *Cipher) checkedCopy(digits []uint32) []uint32 {
	out := make([]uint32, len(digits))
	for i, d := range digits {
		if uint64(d) >= c.radix {
			panic(fmt.Sprintf("uniaz/subtle: digit %d at position %d out of range for radix %d", d, i, c.radix))
		}
		out[i] = d
	}
	return out
}

// seedMod accumulates the base-radix value of digits, skipping skipIdx,
// modulo modulus.
func (c *Cipher) seedMod(digits []uint32, skipIdx int, modulus uint64) uint64 {
	if modulus == 0 {
		return 0
	}
	var remainder uint64
	for i, d := range digits {
		if i == skipIdx {
			continue
		}
		remainder = (remainder*c.radix + uint64(d)) % modulus
	}
	return remainder
}

// disorder builds the permutation table for position skipIdx.
func (c *Cipher) disorder(digits []uint32, skipIdx int) []uint32 {
	perm := make([]uint32, c.radix)
	for i := range perm {
		perm[i] = uint32(i)
	}
	for i := int(c.radix) - 1; i >= 1; i-- {
		j := c.seedMod(digits, skipIdx, uint64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

func (c *Cipher) offset(digits []uint32, i int) uint64 {
	return (c.seedMod(digits, i, c.radix) + uint64(i*i) + 1) % c.radix
}

func (c *Cipher) encryptOnce(digits []uint32) {
	for i := range digits {
		perm := c.disorder(digits, i)
		pos := tableIndex(perm, digits[i])
		digits[i] = perm[(pos+c.offset(digits, i))%c.radix]
	}
}

func (c *Cipher) decryptOnce(digits []uint32) {
	for i := len(digits) - 1; i >= 0; i-- {
		perm := c.disorder(digits, i)
		pos := tableIndex(perm, digits[i])
		digits[i] = perm[(pos+c.radix-c.offset(digits, i))%c.radix]
	}
}

func tableIndex(perm []uint32, d uint32) uint64 {
	for p, v := range perm {
		if v == d {
			return uint64(p)
		}
	}
	// checkedCopy guarantees d is in the table.
	panic(fmt.Sprintf("uniaz/subtle: digit %d missing from permutation table", d))
}
