package serialization

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestComputeChecksum(t *testing.T) {
	data := []byte("test data")
	if ComputeChecksum(data) != ComputeChecksum(data) {
		t.Error("Checksums should match for identical data")
	}
	if ComputeChecksum(data) == ComputeChecksum([]byte("different data")) {
		t.Error("Checksums should differ for different data")
	}

	// Known vector: SHA-256 of the empty string.
	sum := ComputeChecksum(nil)
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := hex.EncodeToString(sum[:]); got != want {
		t.Errorf("empty checksum = %s, want %s", got, want)
	}
}

func TestValidateChecksum(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	stored := ComputeChecksum(data)

	if err := ValidateChecksum(data, stored); err != nil {
		t.Errorf("Expected no error for matching checksums, got: %v", err)
	}

	data[0] ^= 0xFF
	if err := ValidateChecksum(data, stored); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("Expected ErrChecksumMismatch, got: %v", err)
	}
}
