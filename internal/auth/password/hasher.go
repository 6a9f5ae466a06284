// Package password derives and verifies password digests with scrypt.
// Digests are stored as self-describing strings, scrypt$N$saltHex$hashHex,
// so verification always replays the cost the hash was created with and
// old hashes survive future cost bumps.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	DefaultN = 1 << 14

	// maxN caps the cost accepted from a stored digest. Memory per
	// derivation is 128*N*r bytes, so without a ceiling a crafted digest
	// could make a single verify allocate without bound.
	maxN = 1 << 17

	scryptR = 8
	scryptP = 1
	saltLen = 16
	keyLen  = 32
)

type Hasher struct {
	n int
}

// NewHasher returns a hasher using cost n, which must be a power of two
// within the supported range; zero selects DefaultN.
func NewHasher(n int) (*Hasher, error) {
	if n == 0 {
		n = DefaultN
	}
	if err := checkCost(n); err != nil {
		return nil, err
	}
	return &Hasher{n: n}, nil
}

func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, h.n, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return fmt.Sprintf("scrypt$%d$%s$%s", h.n, hex.EncodeToString(salt), hex.EncodeToString(key)), nil
}

// Verify re-derives the password with the salt and cost stored in the
// digest and compares in constant time. Malformed digests verify as false,
// never as an error: callers map everything to one credentials failure.
func Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != "scrypt" {
		return false
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil || checkCost(n) != nil {
		return false
	}

	salt, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	want, err := hex.DecodeString(parts[3])
	if err != nil || len(want) != keyLen {
		return false
	}

	key, err := scrypt.Key([]byte(password), salt, n, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(key, want) == 1
}

func checkCost(n int) error {
	if n < 2 || n > maxN || n&(n-1) != 0 {
		return fmt.Errorf("scrypt cost %d out of range", n)
	}
	return nil
}
