// internal/ciphersuite/ciphersuite.go
// Package ciphersuite provides timed CBC encrypt/decrypt operations over a
// fixed set of 128-bit block ciphers. Each call builds and discards its own
// cipher state, so calls never share mutable state.
package ciphersuite

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/aead/camellia"
	"github.com/emmansun/gmsm/sm4"
)

// Algorithm identifies one of the supported CBC cipher suites.
type Algorithm string

const (
	// AES128CBC is AES with a 128-bit key in CBC mode.
	AES128CBC Algorithm = "AES-128-CBC"
	// Camellia128CBC is Camellia with a 128-bit key in CBC mode.
	Camellia128CBC Algorithm = "CAMELLIA-128-CBC"
	// SM4CBC is SM4 (128-bit key by definition) in CBC mode.
	SM4CBC Algorithm = "SM4-CBC"
)

const (
	// KeySize is the key length in bytes shared by all supported suites.
	KeySize = 16
	// BlockSize is the cipher block length in bytes shared by all supported suites.
	BlockSize = 16
)

// Algorithms lists every supported suite in benchmark order.
var Algorithms = []Algorithm{AES128CBC, Camellia128CBC, SM4CBC}

var (
	// ErrUnsupportedAlgorithm is returned when a selector maps to no known cipher.
	ErrUnsupportedAlgorithm = errors.New("unsupported cipher algorithm")
	// ErrTransformInit is returned when the cipher rejects the key or IV.
	ErrTransformInit = errors.New("cipher transform init failed")
	// ErrTransformUpdate is returned when the block transform cannot process its input.
	ErrTransformUpdate = errors.New("cipher transform update failed")
	// ErrTransformFinalize is returned when finalization fails, including
	// invalid padding on decrypt. CBC mode carries no authentication, so the
	// padding check is the only integrity signal available.
	ErrTransformFinalize = errors.New("cipher transform finalize failed")
	// ErrRandom is returned when the system entropy source fails.
	ErrRandom = errors.New("random generation failed")
)

// IsValid reports whether a is one of the supported suites.
func (a Algorithm) IsValid() bool {
	switch a {
	case AES128CBC, Camellia128CBC, SM4CBC:
		return true
	default:
		return false
	}
}

// String returns the canonical suite name.
func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm maps a config value to a supported suite.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(name)
	if !a.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return a, nil
}

// TimedResult pairs one transform output with its elapsed transform time.
type TimedResult struct {
	Output    []byte
	ElapsedMs float64
}

// RandomBytes returns n bytes from the system CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandom, err)
	}
	return b, nil
}

// newBlock resolves the suite to a fresh block cipher with its key schedule
// expanded. The returned cipher is used for exactly one transform.
func newBlock(alg Algorithm, key []byte) (cipher.Block, error) {
	var (
		block cipher.Block
		err   error
	)
	switch alg {
	case AES128CBC:
		block, err = aes.NewCipher(key)
	case Camellia128CBC:
		block, err = camellia.NewCipher(key)
	case SM4CBC:
		block, err = sm4.NewCipher(key)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTransformInit, alg, err)
	}
	return block, nil
}

// checkKeyIV enforces the fixed 128-bit key/IV precondition. No length
// adaptation is performed.
func checkKeyIV(key, iv []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: key must be %d bytes, got %d", ErrTransformInit, KeySize, len(key))
	}
	if len(iv) != BlockSize {
		return fmt.Errorf("%w: iv must be %d bytes, got %d", ErrTransformInit, BlockSize, len(iv))
	}
	return nil
}

// TimedEncrypt encrypts plaintext with the selected suite in CBC mode and
// reports the elapsed transform time. The clock covers key-schedule setup,
// padding, and the block transform; the output buffer is allocated before the
// clock starts. The input is never mutated.
func TimedEncrypt(alg Algorithm, plaintext, key, iv []byte) (TimedResult, error) {
	if !alg.IsValid() {
		return TimedResult{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	if err := checkKeyIV(key, iv); err != nil {
		return TimedResult{}, err
	}

	// PKCS#7 always adds at least one byte, so block-aligned inputs grow by
	// a full padding block.
	buf := make([]byte, len(plaintext)+BlockSize-len(plaintext)%BlockSize)

	start := time.Now()
	block, err := newBlock(alg, key)
	if err != nil {
		return TimedResult{}, err
	}
	n := copy(buf, plaintext)
	pkcs7Fill(buf[n:])
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(buf, buf)
	elapsed := time.Since(start)

	return TimedResult{Output: buf, ElapsedMs: durationMs(elapsed)}, nil
}

// TimedDecrypt decrypts ciphertext with the selected suite in CBC mode,
// strips the PKCS#7 padding, and reports the elapsed transform time. Padding
// validation happens inside the timed window, mirroring a finalize step.
func TimedDecrypt(alg Algorithm, ciphertext, key, iv []byte) (TimedResult, error) {
	if !alg.IsValid() {
		return TimedResult{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	if err := checkKeyIV(key, iv); err != nil {
		return TimedResult{}, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return TimedResult{}, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d",
			ErrTransformUpdate, len(ciphertext), BlockSize)
	}

	buf := make([]byte, len(ciphertext))

	start := time.Now()
	block, err := newBlock(alg, key)
	if err != nil {
		return TimedResult{}, err
	}
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(buf, ciphertext)
	n, padErr := pkcs7Strip(buf)
	elapsed := time.Since(start)

	if padErr != nil {
		return TimedResult{}, fmt.Errorf("%s: %w", alg, padErr)
	}
	return TimedResult{Output: buf[:n], ElapsedMs: durationMs(elapsed)}, nil
}

// durationMs converts a monotonic duration to fractional milliseconds.
func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
