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

import "errors"

// Parameter validation errors, surfaced at CreateShares entry.
var (
	// ErrInvalidThreshold indicates threshold/totalShares out of range.
	ErrInvalidThreshold = errors.New("gausshare: require 1 <= threshold <= total shares")

	// ErrNegativeSecret indicates a negative secret value.
	ErrNegativeSecret = errors.New("gausshare: secret must be non-negative")

	// ErrSecretTooLarge indicates the secret is not below the prime modulus.
	ErrSecretTooLarge = errors.New("gausshare: secret must be less than the prime modulus")

	// ErrModulusNotPrime indicates a caller-supplied modulus failed the
	// primality test.
	ErrModulusNotPrime = errors.New("gausshare: provided modulus is not prime")
)

// Arithmetic and linear-algebra errors. These never legitimately occur for
// well-formed inputs over a prime field; their appearance signals misuse
// (duplicate share indices, a composite modulus) and must propagate rather
// than be masked with a default value.
var (
	// ErrNoInverse indicates the value and modulus are not coprime.
	ErrNoInverse = errors.New("gausshare: no modular inverse")

	// ErrSingularMatrix indicates the linear system is singular modulo p.
	ErrSingularMatrix = errors.New("gausshare: singular matrix modulo p")

	// ErrNonSquareMatrix indicates the coefficient matrix is not square.
	ErrNonSquareMatrix = errors.New("gausshare: matrix must be square")

	// ErrDimensionMismatch indicates the matrix and vector sizes disagree.
	ErrDimensionMismatch = errors.New("gausshare: matrix and vector dimensions do not match")
)

// Reconstruction errors.
var (
	// ErrEmptyShares indicates reconstruction was attempted with no shares.
	ErrEmptyShares = errors.New("gausshare: at least one share required")

	// ErrShareCountMismatch indicates the share count does not equal the
	// expected threshold (strict reconstruction only).
	ErrShareCountMismatch = errors.New("gausshare: share count does not match threshold")

	// ErrDuplicateShare indicates two shares carry the same x-coordinate.
	ErrDuplicateShare = errors.New("gausshare: duplicate share x-coordinate")
)

// Share validation and serialization errors.
var (
	// ErrInvalidShareX indicates a share x-coordinate that is zero or
	// negative. x=0 is never issued since p(0) is the secret itself.
	ErrInvalidShareX = errors.New("gausshare: share x-coordinate must be positive")

	// ErrInvalidShareY indicates a missing share y-coordinate.
	ErrInvalidShareY = errors.New("gausshare: share y-coordinate is required")

	// ErrInvalidShareFormat indicates malformed serialized share data.
	ErrInvalidShareFormat = errors.New("gausshare: invalid share format")

	// ErrUnsupportedShareVersion indicates an unknown serialization version.
	ErrUnsupportedShareVersion = errors.New("gausshare: unsupported share version")
)

// Integer conversion errors.
var (
	// ErrNegativeInteger indicates an attempt to encode a negative integer.
	ErrNegativeInteger = errors.New("gausshare: negative integer cannot be encoded")

	// ErrValueTooLarge indicates the integer does not fit the requested
	// byte length.
	ErrValueTooLarge = errors.New("gausshare: integer does not fit requested length")
)
