// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"strings"
	"time"
)

// Wallet is the persisted wallet header. There is exactly one per wallet
// file. The seed is never stored in clear text: EncryptedSeed holds
// nonce || ciphertext sealed with a key derived from the wallet passphrase
// and EncryptionSalt.
type Wallet struct {
	Chain            ChainType `json:"chain"`
	EncryptedSeed    []byte    `json:"-"`
	EncryptionSalt   []byte    `json:"-"`
	Birthday         uint64    `json:"birthday"`
	LastSyncedHeight uint64    `json:"last_synced_height"`
	CreatedAt        time.Time `json:"created_at"`
}

// Address is a receiving address derived from the wallet seed.
type Address struct {
	Index   uint32 `json:"index"`
	Address string `json:"address"`
}

// ImportedKey is an externally supplied key (or watch-only address) whose
// transactions the wallet tracks in addition to its own addresses.
type ImportedKey struct {
	Key        string    `json:"key"`
	Birthday   uint64    `json:"birthday"`
	ImportedAt time.Time `json:"imported_at"`
}

// SeedPhrase is the human readable form of the wallet seed together with the
// height the wallet was born at.
type SeedPhrase struct {
	Words    []string `json:"-"`
	Birthday uint64   `json:"birthday"`
}

const seedWordSize = 4

// NewSeedPhrase renders entropy as groups of hex characters.
func NewSeedPhrase(entropy []byte, birthday uint64) SeedPhrase {
	encoded := hex.EncodeToString(entropy)
	words := make([]string, 0, len(encoded)/seedWordSize+1)
	for i := 0; i < len(encoded); i += seedWordSize {
		end := min(i+seedWordSize, len(encoded))
		words = append(words, encoded[i:end])
	}

	return SeedPhrase{Words: words, Birthday: birthday}
}

// String joins the words with single spaces.
func (s SeedPhrase) String() string {
	return strings.Join(s.Words, " ")
}

// Entropy decodes the phrase back into the raw seed bytes.
func (s SeedPhrase) Entropy() ([]byte, error) {
	return hex.DecodeString(strings.Join(s.Words, ""))
}

// Dump returns the JSON shape reported to callers by the seed command and
// by wallet creation.
func (s SeedPhrase) Dump() map[string]any {
	return map[string]any{
		"seed":     s.String(),
		"birthday": s.Birthday,
	}
}
