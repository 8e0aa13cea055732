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
	"fmt"
	"math/big"
	"math/bits"
)

// CreateShares splits a secret into totalShares shares over GF(prime), any
// threshold of which reconstruct it.
//
// When prime is nil a modulus is auto-selected: the next prime at or above
// max(2^bitLen, secret+1), where bitLen is the larger of secret.BitLen()+1
// and the bit length of totalShares plus one. This guarantees the prime
// exceeds both the secret and every share index. A caller-supplied prime
// must itself be prime and strictly greater than the secret.
//
// The polynomial coefficients are drawn fresh from crypto/rand on every call
// and discarded before returning; only the shares and the (public) prime
// leave this function. Shares are evaluated at x = 1..totalShares.
//
// The returned prime must be kept alongside the shares: reconstruction is
// impossible without it.
func CreateShares(secret *big.Int, totalShares, threshold int, prime *big.Int) (*big.Int, []*Share, error) {
	if threshold < 1 || threshold > totalShares {
		return nil, nil, fmt.Errorf("%w: threshold=%d total=%d", ErrInvalidThreshold, threshold, totalShares)
	}
	if secret == nil || secret.Sign() < 0 {
		return nil, nil, ErrNegativeSecret
	}

	if prime == nil {
		bitLen := secret.BitLen() + 1
		if tl := bits.Len(uint(totalShares)) + 1; tl > bitLen {
			bitLen = tl
		}
		start := new(big.Int).Lsh(one, uint(bitLen))
		if bound := new(big.Int).Add(secret, one); bound.Cmp(start) > 0 {
			start = bound
		}
		prime = NextPrime(start)
	} else {
		if !IsProbablePrime(prime) {
			return nil, nil, ErrModulusNotPrime
		}
		if secret.Cmp(prime) >= 0 {
			return nil, nil, ErrSecretTooLarge
		}
	}

	coefficients, err := RandomCoefficients(threshold, secret, prime)
	if err != nil {
		return nil, nil, err
	}

	shares := make([]*Share, totalShares)
	for i := 0; i < totalShares; i++ {
		x := big.NewInt(int64(i + 1))
		shares[i] = &Share{X: x, Y: EvaluatePolynomial(coefficients, x, prime)}
	}
	return prime, shares, nil
}

// RecoverSecret reconstructs the secret from the provided shares and the
// prime modulus returned by CreateShares. It builds the r x r Vandermonde
// system for r = len(shares), with row i = [1, x_i, x_i^2, ...] mod p and
// right-hand side y_i mod p, solves it by Gauss-Jordan elimination, and
// returns the recovered constant term.
//
// The caller must supply exactly as many distinct shares as the threshold
// used at creation. This precondition is documented, not checked: fewer
// shares still form a square system and solve to an unrelated value, while
// a duplicate x-coordinate fails with ErrSingularMatrix. Callers that track
// the threshold out of band should prefer RecoverSecretStrict.
func RecoverSecret(shares []*Share, prime *big.Int) (*big.Int, error) {
	if len(shares) == 0 {
		return nil, ErrEmptyShares
	}

	r := len(shares)
	matrix := make([][]*big.Int, r)
	vector := make([]*big.Int, r)
	for i, share := range shares {
		if err := share.Validate(); err != nil {
			return nil, fmt.Errorf("gausshare: share %d: %w", i, err)
		}
		row := make([]*big.Int, r)
		x := new(big.Int).Mod(share.X, prime)
		power := big.NewInt(1)
		for j := 0; j < r; j++ {
			row[j] = new(big.Int).Set(power)
			power.Mul(power, x)
			power.Mod(power, prime)
		}
		matrix[i] = row
		vector[i] = new(big.Int).Mod(share.Y, prime)
	}

	coefficients, err := SolveModular(matrix, vector, prime)
	if err != nil {
		return nil, err
	}
	return coefficients[0].Mod(coefficients[0], prime), nil
}

// RecoverSecretStrict is RecoverSecret with the share count pinned to the
// expected threshold. It rejects a mismatched count with
// ErrShareCountMismatch and duplicate x-coordinates with ErrDuplicateShare
// before attempting elimination, closing the silent-wrong-answer path that
// under-supplying shares to RecoverSecret opens.
func RecoverSecretStrict(shares []*Share, threshold int, prime *big.Int) (*big.Int, error) {
	if len(shares) == 0 {
		return nil, ErrEmptyShares
	}
	if len(shares) != threshold {
		return nil, fmt.Errorf("%w: have %d shares, threshold %d", ErrShareCountMismatch, len(shares), threshold)
	}
	seen := make(map[string]struct{}, len(shares))
	for _, share := range shares {
		if err := share.Validate(); err != nil {
			return nil, err
		}
		key := share.X.String()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: x=%s", ErrDuplicateShare, key)
		}
		seen[key] = struct{}{}
	}
	return RecoverSecret(shares, prime)
}
