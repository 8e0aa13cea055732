// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-gausshare.
//
// go-gausshare is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package gausshare

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
)

// Share is a single point (x, y) on the sharing polynomial, with
// y = p(x) mod prime. Shares are unordered and independent; any threshold of
// them reconstructs the secret. The x-coordinate is a share index starting
// at 1 (x=0 would expose the secret directly, since p(0) is the secret).
type Share struct {
	// X is the share index (1..total), never 0.
	X *big.Int `json:"x"`

	// Y is the polynomial evaluated at X, reduced mod the prime.
	Y *big.Int `json:"y"`
}

// NewShare builds a share from an index and value.
func NewShare(x int64, y *big.Int) *Share {
	return &Share{X: big.NewInt(x), Y: new(big.Int).Set(y)}
}

// Validate checks the share coordinates.
func (s *Share) Validate() error {
	if s.X == nil || s.X.Sign() <= 0 {
		return ErrInvalidShareX
	}
	if s.Y == nil {
		return ErrInvalidShareY
	}
	return nil
}

// Clone returns a deep copy of the share.
func (s *Share) Clone() *Share {
	return &Share{
		X: new(big.Int).Set(s.X),
		Y: new(big.Int).Set(s.Y),
	}
}

// Equal reports whether two shares carry the same point.
func (s *Share) Equal(other *Share) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.X.Cmp(other.X) == 0 && s.Y.Cmp(other.Y) == 0
}

// String returns a short representation for logs and debugging. The y value
// is truncated; shares are secret material and should not be logged in full.
func (s *Share) String() string {
	y := s.Y.String()
	if len(y) > 16 {
		y = y[:16] + "..."
	}
	return fmt.Sprintf("Share{X: %s, Y: %s}", s.X, y)
}

// Binary share format:
// version(1) | xLen(2) | yLen(2) | x big-endian | y big-endian
const (
	shareVersion    = 1
	shareHeaderSize = 1 + 2 + 2
)

// Bytes serializes the share to its binary format.
func (s *Share) Bytes() []byte {
	xBytes := s.X.Bytes()
	yBytes := s.Y.Bytes()

	buf := make([]byte, shareHeaderSize+len(xBytes)+len(yBytes))
	buf[0] = shareVersion
	binary.BigEndian.PutUint16(buf[1:3], uint16(len(xBytes)))
	binary.BigEndian.PutUint16(buf[3:5], uint16(len(yBytes)))
	copy(buf[shareHeaderSize:], xBytes)
	copy(buf[shareHeaderSize+len(xBytes):], yBytes)
	return buf
}

// Encode returns the share as a base64 string of its binary format.
func (s *Share) Encode() string {
	return base64.StdEncoding.EncodeToString(s.Bytes())
}

// ParseShare deserializes a share from its binary format.
func ParseShare(data []byte) (*Share, error) {
	if len(data) < shareHeaderSize {
		return nil, ErrInvalidShareFormat
	}
	if data[0] != shareVersion {
		return nil, ErrUnsupportedShareVersion
	}

	xLen := int(binary.BigEndian.Uint16(data[1:3]))
	yLen := int(binary.BigEndian.Uint16(data[3:5]))
	if len(data) != shareHeaderSize+xLen+yLen {
		return nil, ErrInvalidShareFormat
	}

	x := new(big.Int).SetBytes(data[shareHeaderSize : shareHeaderSize+xLen])
	y := new(big.Int).SetBytes(data[shareHeaderSize+xLen:])
	if x.Sign() == 0 {
		return nil, ErrInvalidShareX
	}

	return &Share{X: x, Y: y}, nil
}

// ParseShareString deserializes a share from its base64 encoding.
func ParseShareString(encoded string) (*Share, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrInvalidShareFormat, err)
	}
	return ParseShare(data)
}
