// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-light-wallet/models"
)

// ErrWrongPassphrase is returned by OpenSeed when authentication of the
// sealed seed fails.
var ErrWrongPassphrase = errors.New("wrong wallet passphrase")

const (
	seedSize = 32
	saltSize = 16
	// addressSize is the number of digest bytes rendered into an address.
	addressSize = 20
)

// address prefixes per network
var addressPrefixes = map[models.ChainType]string{
	models.Mainnet: "zs1",
	models.Testnet: "ztestsapling1",
	models.Regtest: "zregtestsapling1",
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSeed implements [KeyChainService].
func (k *keyChainService) GenerateSeed() ([]byte, error) {
	return randomBytes(seedSize)
}

// GenerateEncryptionSalt implements [KeyChainService].
func (k *keyChainService) GenerateEncryptionSalt() ([]byte, error) {
	return randomBytes(saltSize)
}

// DeriveKey implements [KeyChainService]. The result exists only in memory.
func (k *keyChainService) DeriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// SealSeed implements [KeyChainService]. A random 12-byte nonce is prepended
// to the ciphertext: blob = nonce || ciphertext.
func (k *keyChainService) SealSeed(seed, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, seed, nil)
	return append(nonce, sealed...), nil
}

// OpenSeed implements [KeyChainService].
func (k *keyChainService) OpenSeed(sealed, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	// An auth tag mismatch here almost always means a wrong passphrase.
	seed, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}

	return seed, nil
}

// DeriveAddress implements [KeyChainService]. The address is the network
// prefix followed by the hex of HMAC-SHA256(seed, index) truncated to
// addressSize bytes.
func (k *keyChainService) DeriveAddress(seed []byte, chain models.ChainType, index uint32) string {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)

	mac := hmac.New(sha256.New, seed)
	mac.Write([]byte(chain))
	mac.Write(idx[:])
	digest := mac.Sum(nil)

	prefix, ok := addressPrefixes[chain]
	if !ok {
		prefix = addressPrefixes[models.Mainnet]
	}

	return prefix + hex.EncodeToString(digest[:addressSize])
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
