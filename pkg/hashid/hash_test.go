package hashid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashEncodeAndDecode(t *testing.T) {
	asserts := assert.New(t)

	encoded, err := HashEncode([]int{42, FolderID})
	asserts.NoError(err)
	asserts.NotEmpty(encoded)

	decoded, err := HashDecode(encoded)
	asserts.NoError(err)
	asserts.Equal([]int{42, FolderID}, decoded)
}

func TestHashIDRoundTrip(t *testing.T) {
	asserts := assert.New(t)

	public := HashID(42, FileID)
	asserts.NotEmpty(public)

	raw, err := DecodeHashID(public, FileID)
	asserts.NoError(err)
	asserts.Equal(uint(42), raw)
}

func TestDecodeHashID_TypeGuard(t *testing.T) {
	asserts := assert.New(t)

	// A folder ID must not decode as a file ID
	public := HashID(42, FolderID)
	_, err := DecodeHashID(public, FileID)
	asserts.Equal(ErrTypeNotMatch, err)

	// Garbage input
	_, err = DecodeHashID("not-a-hashid", FolderID)
	asserts.Error(err)

	_, err = DecodeHashID("", FolderID)
	asserts.Error(err)
}
