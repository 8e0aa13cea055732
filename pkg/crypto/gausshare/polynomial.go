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
	"crypto/rand"
	"fmt"
	"math/big"
)

// EvaluatePolynomial evaluates the polynomial with the given coefficients at
// x modulo prime using Horner's method. Coefficients are ordered
// lowest-degree first: coefficients[0] is the constant term. Intermediate
// results are reduced modulo prime at every step to bound their magnitude.
func EvaluatePolynomial(coefficients []*big.Int, x, prime *big.Int) *big.Int {
	result := new(big.Int)
	for i := len(coefficients) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, coefficients[i])
		result.Mod(result, prime)
	}
	return result
}

// RandomCoefficients builds the coefficient vector for a degree threshold-1
// sharing polynomial: index 0 is the secret reduced mod prime, the remaining
// threshold-1 entries are drawn independently and uniformly from [0, prime)
// using crypto/rand. The vector is ephemeral; callers of the public API
// never see it, and it must not be reused across sharings.
func RandomCoefficients(threshold int, secret, prime *big.Int) ([]*big.Int, error) {
	coefficients := make([]*big.Int, threshold)
	coefficients[0] = new(big.Int).Mod(secret, prime)
	for i := 1; i < threshold; i++ {
		r, err := rand.Int(rand.Reader, prime)
		if err != nil {
			return nil, fmt.Errorf("gausshare: failed to draw random coefficient: %w", err)
		}
		coefficients[i] = r
	}
	return coefficients, nil
}
