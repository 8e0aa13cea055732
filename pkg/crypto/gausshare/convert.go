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

import "math/big"

// BytesToInteger interprets data as a big-endian unsigned integer, allowing
// arbitrary binary secrets to be shared as field elements. An empty slice
// yields zero.
func BytesToInteger(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// IntegerToBytes encodes value as big-endian bytes. A length <= 0 requests
// the minimal width, which is at least one byte so that zero round-trips.
// A fixed length left-pads with zeros; ErrValueTooLarge is returned when the
// value does not fit. Negative values fail with ErrNegativeInteger.
func IntegerToBytes(value *big.Int, length int) ([]byte, error) {
	if value.Sign() < 0 {
		return nil, ErrNegativeInteger
	}

	minimal := (value.BitLen() + 7) / 8
	if minimal == 0 {
		minimal = 1
	}
	if length <= 0 {
		length = minimal
	} else if minimal > length {
		return nil, ErrValueTooLarge
	}

	out := make([]byte, length)
	value.FillBytes(out)
	return out, nil
}
