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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, decimal string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(decimal, 10)
	require.True(t, ok, "bad decimal %q", decimal)
	return n
}

// TestCreateSharesRoundTrip splits and recovers across a range of valid
// parameter combinations.
func TestCreateSharesRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		total     int
		threshold int
	}{
		{"small secret 5 of 9", "42", 9, 5},
		{"threshold equals total", "987654321", 4, 4},
		{"threshold one", "1000", 3, 1},
		{"single share", "5", 1, 1},
		{"zero secret", "0", 5, 3},
		{"thirty digit secret", "123456789012345678901234567890", 6, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := mustBig(t, tt.secret)

			prime, shares, err := CreateShares(secret, tt.total, tt.threshold, nil)
			require.NoError(t, err)
			require.Len(t, shares, tt.total)
			assert.True(t, IsProbablePrime(prime), "modulus %s is not prime", prime)
			assert.True(t, secret.Cmp(prime) < 0, "secret not below modulus")

			for i, share := range shares {
				require.NoError(t, share.Validate())
				assert.EqualValues(t, i+1, share.X.Int64(), "share indices start at 1")
			}

			recovered, err := RecoverSecret(shares[:tt.threshold], prime)
			require.NoError(t, err)
			assert.Zero(t, secret.Cmp(recovered), "recovered %s, want %s", recovered, secret)
		})
	}
}

// TestRecoverSubsetIndependence verifies the embedded reference scenario:
// a 30-digit secret split 6 ways with threshold 3 recovers identically from
// the first three, the last three, and an arbitrary three shares.
func TestRecoverSubsetIndependence(t *testing.T) {
	secret := mustBig(t, "123456789012345678901234567890")

	prime, shares, err := CreateShares(secret, 6, 3, nil)
	require.NoError(t, err)

	first, err := RecoverSecret(shares[:3], prime)
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(first), "first three shares: got %s", first)

	last, err := RecoverSecret(shares[3:], prime)
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(last), "last three shares: got %s", last)

	scattered, err := RecoverSecret([]*Share{shares[0], shares[2], shares[5]}, prime)
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(scattered), "scattered shares: got %s", scattered)

	assert.Zero(t, first.Cmp(last))
	assert.Zero(t, first.Cmp(scattered))
}

// TestCreateSharesWithSuppliedPrime covers the caller-supplied modulus path.
func TestCreateSharesWithSuppliedPrime(t *testing.T) {
	prime := big.NewInt(7919)
	secret := big.NewInt(1234)

	returned, shares, err := CreateShares(secret, 5, 3, prime)
	require.NoError(t, err)
	assert.Zero(t, prime.Cmp(returned))

	recovered, err := RecoverSecret(shares[1:4], returned)
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(recovered))
}

// TestCreateSharesMaximumSecret covers secret == prime-1, the largest
// representable field element.
func TestCreateSharesMaximumSecret(t *testing.T) {
	prime := big.NewInt(7919)
	secret := big.NewInt(7918)

	_, shares, err := CreateShares(secret, 4, 2, prime)
	require.NoError(t, err)

	recovered, err := RecoverSecret(shares[2:4], prime)
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(recovered))
}

// TestCreateSharesValidation covers the parameter error taxonomy.
func TestCreateSharesValidation(t *testing.T) {
	tests := []struct {
		name      string
		secret    *big.Int
		total     int
		threshold int
		prime     *big.Int
		wantErr   error
	}{
		{"negative secret", big.NewInt(-1), 5, 3, nil, ErrNegativeSecret},
		{"threshold above total", big.NewInt(100), 5, 10, nil, ErrInvalidThreshold},
		{"zero threshold", big.NewInt(100), 5, 0, nil, ErrInvalidThreshold},
		{"zero total", big.NewInt(100), 0, 1, nil, ErrInvalidThreshold},
		{"composite modulus", big.NewInt(100), 5, 3, big.NewInt(1000), ErrModulusNotPrime},
		{"secret equals modulus", big.NewInt(7919), 5, 3, big.NewInt(7919), ErrSecretTooLarge},
		{"secret above modulus", big.NewInt(8000), 5, 3, big.NewInt(7919), ErrSecretTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CreateShares(tt.secret, tt.total, tt.threshold, tt.prime)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestAutoSelectedPrimeExceedsBounds verifies the auto-selected modulus
// clears both the secret and the share-index bound.
func TestAutoSelectedPrimeExceedsBounds(t *testing.T) {
	// A tiny secret with many shares forces the share-count bound to
	// drive the prime size.
	prime, _, err := CreateShares(big.NewInt(1), 200, 3, nil)
	require.NoError(t, err)
	assert.True(t, prime.Cmp(big.NewInt(200)) > 0, "prime %s not above share count", prime)

	// A large secret drives the bound the other way.
	secret := mustBig(t, "123456789012345678901234567890")
	prime, _, err = CreateShares(secret, 3, 2, nil)
	require.NoError(t, err)
	assert.True(t, prime.Cmp(secret) > 0, "prime %s not above secret", prime)
}

// TestRecoverSecretEmpty verifies the empty-input precondition.
func TestRecoverSecretEmpty(t *testing.T) {
	_, err := RecoverSecret(nil, big.NewInt(7919))
	assert.ErrorIs(t, err, ErrEmptyShares)

	_, err = RecoverSecretStrict(nil, 3, big.NewInt(7919))
	assert.ErrorIs(t, err, ErrEmptyShares)
}

// TestRecoverSecretDuplicateShares verifies duplicated x-values surface as
// a singular system rather than a silently wrong secret.
func TestRecoverSecretDuplicateShares(t *testing.T) {
	prime, shares, err := CreateShares(big.NewInt(424242), 5, 3, nil)
	require.NoError(t, err)

	_, err = RecoverSecret([]*Share{shares[0], shares[0], shares[1]}, prime)
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

// TestRecoverSecretUnderThreshold demonstrates the documented foot-gun:
// fewer shares than the creation threshold still solve a smaller square
// system, but the answer is unrelated to the secret.
func TestRecoverSecretUnderThreshold(t *testing.T) {
	secret := mustBig(t, "123456789012345678901234567890")

	prime, shares, err := CreateShares(secret, 6, 3, nil)
	require.NoError(t, err)

	// With two shares the solver fits a line through them; the odds of
	// that line passing through (0, secret) are 1/p.
	wrong, err := RecoverSecret(shares[:2], prime)
	require.NoError(t, err)
	assert.NotZero(t, secret.Cmp(wrong), "under-threshold recovery reproduced the secret")
}

// TestRecoverSecretStrict verifies the pinned-count variant rejects the
// mismatches RecoverSecret lets through.
func TestRecoverSecretStrict(t *testing.T) {
	secret := big.NewInt(987654321)

	prime, shares, err := CreateShares(secret, 6, 3, nil)
	require.NoError(t, err)

	recovered, err := RecoverSecretStrict(shares[:3], 3, prime)
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(recovered))

	_, err = RecoverSecretStrict(shares[:2], 3, prime)
	assert.ErrorIs(t, err, ErrShareCountMismatch)

	_, err = RecoverSecretStrict(shares[:4], 3, prime)
	assert.ErrorIs(t, err, ErrShareCountMismatch)

	_, err = RecoverSecretStrict([]*Share{shares[0], shares[0], shares[1]}, 3, prime)
	assert.ErrorIs(t, err, ErrDuplicateShare)
}

// TestSharesDifferAcrossCalls verifies fresh randomness per sharing: the
// same secret split twice must not produce the same shares (beyond x=1..n).
func TestSharesDifferAcrossCalls(t *testing.T) {
	secret := mustBig(t, "123456789012345678901234567890")
	prime := NextPrime(new(big.Int).Add(secret, big.NewInt(1)))

	_, a, err := CreateShares(secret, 4, 3, prime)
	require.NoError(t, err)
	_, b, err := CreateShares(secret, 4, 3, prime)
	require.NoError(t, err)

	same := true
	for i := range a {
		if !a[i].Equal(b[i]) {
			same = false
			break
		}
	}
	assert.False(t, same, "two sharings produced identical shares")
}
