package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters per the OWASP recommendation (2024):
// 1 iteration, 64 MiB memory, 4 threads, 256-bit key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
	argonKeyLen  = 32 // 256 bits
	saltLength   = 16
)

// HashPassword produces the opaque stored form of a plaintext password.
//
// The plaintext is first keyed with the server-side hashKey (HMAC-SHA256, so
// a database leak alone is not crackable without the key) and then stretched
// with Argon2id over a fresh 16-byte random salt. Two calls with an identical
// plaintext therefore produce different opaque hashes, yet both verify.
//
// The result is a PHC-style encoded string embedding the parameters and salt:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<b64(salt)>$<b64(key)>
//
// Returns [ErrHashingInternal] if the OS entropy source fails.
func HashPassword(plaintext, hashKey string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingInternal, err)
	}

	key := deriveKey(plaintext, hashKey, salt)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// VerifyPassword recomputes the hash of plaintext using the salt and
// parameters embedded in the stored encoded hash and compares the result in
// constant time. The comparison leaks no information about where a mismatch
// occurs.
//
// Returns (false, nil) on a clean mismatch and a non-nil error only when the
// stored hash is malformed ([ErrMalformedHash]) — callers must surface that
// as a generic server failure, never as a login outcome.
func VerifyPassword(encoded, plaintext, hashKey string) (bool, error) {
	salt, want, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	got := deriveKey(plaintext, hashKey, salt)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// deriveKey computes Argon2id over HMAC-SHA256(hashKey, plaintext) with the
// given salt. Keying before stretching binds every hash to the server secret.
func deriveKey(plaintext, hashKey string, salt []byte) []byte {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(plaintext))

	return argon2.IDKey(mac.Sum(nil), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// decodeHash parses the PHC-style encoded hash produced by [HashPassword]
// and returns the embedded salt and key.
func decodeHash(encoded string) (salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, ErrMalformedHash
	}

	var memory, time, threads int
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, ErrMalformedHash
	}
	if memory != argonMemory || time != argonTime || threads != argonThreads {
		return nil, nil, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, ErrMalformedHash
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) != argonKeyLen {
		return nil, nil, ErrMalformedHash
	}

	return salt, key, nil
}
