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

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// smallPrimes are the trial-division pre-check primes. A candidate divisible
// by any of them is prime only if it equals that prime.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

// millerRabinBases is a fixed witness set that makes Miller-Rabin
// deterministic for all candidates below 3,317,044,064,679,887,385,961,981
// (beyond the full 64-bit range). Bases with base mod n == 0 are skipped.
var millerRabinBases = []int64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

// IsProbablePrime reports whether n is prime using trial division against
// small primes followed by Miller-Rabin with fixed witness bases. The result
// is deterministic: the same n always yields the same answer. Returns false
// for n < 2.
func IsProbablePrime(n *big.Int) bool {
	if n == nil || n.Cmp(two) < 0 {
		return false
	}

	rem := new(big.Int)
	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		if rem.Mod(n, p).Sign() == 0 {
			return n.Cmp(p) == 0
		}
	}

	// Decompose n-1 = d * 2^s with d odd
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	for _, wb := range millerRabinBases {
		base := big.NewInt(wb)
		if rem.Mod(base, n).Sign() == 0 {
			continue
		}
		if !millerRabinWitness(base, d, s, n, nMinusOne) {
			return false
		}
	}
	return true
}

// millerRabinWitness runs a single Miller-Rabin round, reporting whether n
// passes for witness base a given n-1 = d * 2^s.
func millerRabinWitness(a, d *big.Int, s int, n, nMinusOne *big.Int) bool {
	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
	}
	return false
}

// NextPrime returns the smallest prime >= start. Values <= 2 yield 2; the
// search otherwise walks odd candidates only. Termination follows from prime
// density; there is no explicit bound.
func NextPrime(start *big.Int) *big.Int {
	if start == nil || start.Cmp(two) <= 0 {
		return big.NewInt(2)
	}
	candidate := new(big.Int).Set(start)
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, one)
	}
	for !IsProbablePrime(candidate) {
		candidate.Add(candidate, two)
	}
	return candidate
}

// ExtendedGCD computes the extended Euclidean algorithm, returning (g, x, y)
// such that a*x + b*y == g == gcd(a, b).
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0)
	}
	quot, rem := new(big.Int).QuoRem(a, b, new(big.Int))
	g, x1, y1 := ExtendedGCD(b, rem)
	x = y1
	y = new(big.Int).Sub(x1, quot.Mul(quot, y1))
	return g, x, y
}

// ModularInverse returns value^-1 mod modulus. It fails with ErrNoInverse
// when value and modulus are not coprime. Over a prime modulus this only
// happens for values congruent to zero, so an ErrNoInverse anywhere in the
// share pipeline indicates a composite modulus or a pivot-selection bug and
// must propagate to the caller.
func ModularInverse(value, modulus *big.Int) (*big.Int, error) {
	v := new(big.Int).Mod(value, modulus)
	g, inv, _ := ExtendedGCD(v, modulus)
	if g.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return inv.Mod(inv, modulus), nil
}
