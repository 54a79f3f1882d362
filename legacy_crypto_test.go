package wpkit

import (
	"bytes"
	"testing"
)

func TestDecryptLegacyValue_RoundTrip(t *testing.T) {
	key := deriveLegacyKey("store-password")
	encrypted := encryptLegacyForTest(t, key, []byte("maria%7Cabc123"))

	plain, err := decryptLegacyValue(encrypted, key)
	if err != nil {
		t.Fatal(err)
	}
	if string(plain) != "maria%7Cabc123" {
		t.Fatalf("got %q", plain)
	}
}

func TestDecryptLegacyValue_WrongKey(t *testing.T) {
	encrypted := encryptLegacyForTest(t, deriveLegacyKey("right"), []byte("secret"))

	plain, err := decryptLegacyValue(encrypted, deriveLegacyKey("wrong"))
	if err == nil && bytes.Equal(plain, []byte("secret")) {
		t.Fatalf("wrong key should not decrypt")
	}
}

func TestDecryptLegacyValue_BadInput(t *testing.T) {
	key := deriveLegacyKey("")

	if _, err := decryptLegacyValue(nil, key); err == nil {
		t.Fatalf("expected error for empty input")
	}
	if _, err := decryptLegacyValue([]byte("v1"), key); err == nil {
		t.Fatalf("expected error for short input")
	}
	if _, err := decryptLegacyValue([]byte("xx01234567890123456"), key); err == nil {
		t.Fatalf("expected error for missing prefix")
	}
	if _, err := decryptLegacyValue([]byte("v10short"), key); err == nil {
		t.Fatalf("expected error for partial block")
	}
}

func TestDeriveLegacyKey_Deterministic(t *testing.T) {
	a := deriveLegacyKey("pw")
	b := deriveLegacyKey("pw")
	if !bytes.Equal(a, b) {
		t.Fatalf("key derivation must be deterministic")
	}
	if len(a) != legacyAESKeyLen {
		t.Fatalf("key length = %d", len(a))
	}
	if bytes.Equal(a, deriveLegacyKey("other")) {
		t.Fatalf("different passwords must derive different keys")
	}
}

func TestDecodeCookieValue(t *testing.T) {
	if v, ok := decodeCookieValue([]byte("\x01\x02hello")); !ok || v != "hello" {
		t.Fatalf("got (%q, %v)", v, ok)
	}
	if _, ok := decodeCookieValue([]byte{0xff, 0xfe, 0xfd}); ok {
		t.Fatalf("invalid utf8 should not decode")
	}
}

func TestRemovePKCS7Padding(t *testing.T) {
	b, err := removePKCS7Padding([]byte{'a', 'b', 2, 2})
	if err != nil || string(b) != "ab" {
		t.Fatalf("got (%q, %v)", b, err)
	}
	if _, err := removePKCS7Padding([]byte{'a', 'b', 0}); err == nil {
		t.Fatalf("zero padding length must fail")
	}
	if _, err := removePKCS7Padding([]byte{'a', 3, 2}); err == nil {
		t.Fatalf("inconsistent padding bytes must fail")
	}
}
