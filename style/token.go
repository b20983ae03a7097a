package style

import (
	"encoding/binary"
	"strconv"

	"github.com/google/uuid"
)

// TokenGenerator produces a fresh opaque digit string on each call. Tokens
// stand in for non-color theme variables, so they must stay syntactically
// valid as the magnitude of a length: decimal digits only, short enough to
// survive a float64 round trip unchanged.
type TokenGenerator interface {
	Next() string
}

// uuidTokens derives tokens from random UUIDs. Uniqueness of a single
// token is only probabilistic; the encoder adds a monotonic sequence
// suffix on top, so a rare repeat here cannot break injectivity.
type uuidTokens struct{}

func (uuidTokens) Next() string {
	u := uuid.New()
	return strconv.FormatUint(uint64(binary.BigEndian.Uint32(u[:4])), 10)
}

// NewTokenGenerator returns the default UUID-backed generator.
func NewTokenGenerator() TokenGenerator {
	return uuidTokens{}
}
