package wpkit

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1" //nolint:gosec // The legacy engine's KDF is PBKDF2-SHA1; kept for store compatibility.
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

// Legacy engine value encryption: PBKDF2-SHA1 key, AES-128-CBC with a fixed
// IV, PKCS7 padding, and a "v10" version prefix on the ciphertext.
const (
	legacyKDFSalt       = "saltysalt"
	legacyAESIV         = "                " // 16 spaces
	legacyKDFIterations = 1003
	legacyAESKeyLen     = 16

	legacyValuePrefix = "v10"
)

func deriveLegacyKey(password string) []byte {
	return pbkdf2.Key([]byte(password), []byte(legacyKDFSalt), legacyKDFIterations, legacyAESKeyLen, sha1.New)
}

func decryptLegacyValue(encrypted, key []byte) ([]byte, error) {
	if len(encrypted) <= len(legacyValuePrefix) {
		return nil, fmt.Errorf("encrypted value too short (%d bytes)", len(encrypted))
	}
	if string(encrypted[:len(legacyValuePrefix)]) != legacyValuePrefix {
		return nil, errors.New("missing version prefix")
	}

	ciphertext := encrypted[len(legacyValuePrefix):]
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, errors.New("cipher input not full blocks")
	}

	out := make([]byte, len(ciphertext))
	cbc := cipher.NewCBCDecrypter(block, []byte(legacyAESIV))
	cbc.CryptBlocks(out, ciphertext)

	return removePKCS7Padding(out)
}

func removePKCS7Padding(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return b, nil
	}
	paddingLen := int(b[len(b)-1])
	if paddingLen <= 0 || paddingLen > aes.BlockSize || paddingLen > len(b) {
		return nil, fmt.Errorf("invalid padding length: %d", paddingLen)
	}
	for _, p := range b[len(b)-paddingLen:] {
		if int(p) != paddingLen {
			return nil, errors.New("invalid padding bytes")
		}
	}
	return b[:len(b)-paddingLen], nil
}

func decodeCookieValue(b []byte) (string, bool) {
	b = stripLeadingControlBytes(b)
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

func stripLeadingControlBytes(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] < 0x20 {
		i++
	}
	return bytes.Clone(b[i:])
}
