package crypto

import "github.com/MKhiriev/go-light-wallet/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns the wallet's key material. It knows nothing about
// the network or the database: it generates the seed, protects it at rest
// and derives receiving addresses from it.
//
// Flow for a new wallet:
//
//	Seed           = GenerateSeed()
//	Salt           = GenerateEncryptionSalt()
//	Key            = DeriveKey(passphrase, Salt)
//	EncryptedSeed  = SealSeed(Seed, Key)
//	Address[i]     = DeriveAddress(Seed, chain, i)
//
// Restoring reverses step 4 with OpenSeed.
type KeyChainService interface {
	// GenerateSeed returns 32 bytes of fresh wallet entropy.
	GenerateSeed() ([]byte, error)

	// GenerateEncryptionSalt returns a random 16-byte salt. The salt is not
	// secret and is stored next to the sealed seed.
	GenerateEncryptionSalt() ([]byte, error)

	// DeriveKey stretches the passphrase into a 256-bit key with Argon2id.
	DeriveKey(passphrase string, salt []byte) []byte

	// SealSeed encrypts seed with key using AES-GCM. The result is
	// nonce || ciphertext.
	SealSeed(seed, key []byte) ([]byte, error)

	// OpenSeed reverses SealSeed. A wrong key yields ErrWrongPassphrase.
	OpenSeed(sealed, key []byte) ([]byte, error)

	// DeriveAddress deterministically derives the receiving address with
	// the given index for chain.
	DeriveAddress(seed []byte, chain models.ChainType, index uint32) string
}
