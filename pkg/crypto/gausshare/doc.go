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

// Package gausshare implements Shamir's Secret Sharing over a prime field
// GF(p), with reconstruction by Gaussian elimination.
//
// A secret is encoded as the constant term of a random polynomial of degree
// threshold-1 over GF(p):
//
//	p(x) = a0 + a1*x + a2*x^2 + ... + a(k-1)*x^(k-1)
//
// Shares are the points (x, p(x)) for x = 1..n. Any k shares determine the
// polynomial; fewer than k reveal no information about a0.
//
// Unlike most implementations, which interpolate p(0) with the Lagrange
// formula, this package recovers the full coefficient vector by solving the
// Vandermonde system
//
//	[1  x_1  x_1^2 ... x_1^(k-1)]   [a0    ]   [y_1]
//	[1  x_2  x_2^2 ... x_2^(k-1)] * [a1    ] = [y_2]
//	[   ...                     ]   [...   ]   [...]
//	[1  x_k  x_k^2 ... x_k^(k-1)]   [a(k-1)]   [y_k]
//
// with Gauss-Jordan elimination modulo p. The Vandermonde matrix is always
// invertible over a field when the x values are distinct, so elimination
// failures indicate malformed input (duplicate share indices) rather than an
// unlucky field choice.
//
// All arithmetic uses math/big integers, so secrets are limited only by the
// prime modulus, which is auto-selected to exceed the secret when not
// supplied. The prime is public information and must accompany the shares.
//
// # Usage Example
//
//	secret := new(big.Int).SetBytes([]byte("my secret key"))
//
//	// Split into 5 shares, any 3 of which reconstruct the secret.
//	prime, shares, err := gausshare.CreateShares(secret, 5, 3, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Later, with any 3 shares and the (public) prime:
//	recovered, err := gausshare.RecoverSecret(shares[:3], prime)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Constraints
//
//   - 1 <= threshold <= totalShares
//   - 0 <= secret < prime
//   - RecoverSecret must be given exactly as many shares as the threshold
//     used at creation; use RecoverSecretStrict to have the count enforced.
//
// # References
//
// - Shamir, Adi (1979). "How to Share a Secret"
// - Deterministic Miller-Rabin witness sets for 64-bit ranges (Sinclair bases)
package gausshare
