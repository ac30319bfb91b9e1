package hashid

import (
	"errors"

	"github.com/nimbusdrive/nimbus/pkg/conf"

	"github.com/speps/go-hashids"
)

// ID types prevent an encoded ID of one entity from being replayed as
// another entity.
const (
	UserID = iota
	FileID
	FolderID
)

var (
	// ErrTypeNotMatch ID type mismatch
	ErrTypeNotMatch = errors.New("mismatched ID type")
)

// HashEncode computes the HashID of the given payload.
func HashEncode(v []int) (string, error) {
	hd := hashids.NewData()
	hd.Salt = conf.SystemConfig.HashIDSalt

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return "", err
	}

	id, err := h.Encode(v)
	if err != nil {
		return "", err
	}
	return id, nil
}

// HashDecode decodes a HashID back to its payload.
func HashDecode(raw string) ([]int, error) {
	hd := hashids.NewData()
	hd.Salt = conf.SystemConfig.HashIDSalt

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return []int{}, err
	}

	return h.DecodeWithError(raw)
}

// HashID encodes a database primary key into its public ID.
func HashID(id uint, t int) string {
	v, _ := HashEncode([]int{int(id), t})
	return v
}

// DecodeHashID decodes a public ID into the database primary key,
// enforcing the expected entity type.
func DecodeHashID(id string, t int) (uint, error) {
	v, _ := HashDecode(id)
	if len(v) != 2 || v[1] != t {
		return 0, ErrTypeNotMatch
	}
	return uint(v[0]), nil
}
