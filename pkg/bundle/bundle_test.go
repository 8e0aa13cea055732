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

package bundle

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-gausshare/pkg/crypto/gausshare"
)

func newTestBundle(t *testing.T) (*Bundle, *big.Int) {
	t.Helper()
	secret, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	prime, shares, err := gausshare.CreateShares(secret, 6, 3, nil)
	require.NoError(t, err)

	b := New(prime, shares, 3)
	require.NoError(t, b.Validate())
	return b, secret
}

func TestNewBundle(t *testing.T) {
	b, _ := newTestBundle(t)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, 3, b.Threshold)
	assert.Equal(t, 6, b.Total)
	assert.Len(t, b.Shares, 6)
	assert.False(t, b.CreatedAt.IsZero())

	for i, entry := range b.Shares {
		assert.Equal(t, i+1, entry.Index)
	}
}

func TestBundleRecover(t *testing.T) {
	b, secret := newTestBundle(t)

	prime, err := b.PrimeInt()
	require.NoError(t, err)

	shares, err := b.Select(1, 3, 6)
	require.NoError(t, err)

	recovered, err := gausshare.RecoverSecretStrict(shares, b.Threshold, prime)
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(recovered))
}

func TestBundleSelectMissingIndex(t *testing.T) {
	b, _ := newTestBundle(t)

	_, err := b.Select(1, 2, 99)
	assert.Error(t, err)
}

func TestBundleSaveLoadJSON(t *testing.T) {
	b, secret := newTestBundle(t)
	path := filepath.Join(t.TempDir(), "shares.json")

	require.NoError(t, b.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, b.ID, loaded.ID)
	assert.Equal(t, b.Prime, loaded.Prime)
	assert.Equal(t, b.Shares, loaded.Shares)

	prime, err := loaded.PrimeInt()
	require.NoError(t, err)
	shares, err := loaded.Select(4, 5, 6)
	require.NoError(t, err)
	recovered, err := gausshare.RecoverSecret(shares, prime)
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(recovered))
}

func TestBundleSaveLoadYAML(t *testing.T) {
	b, secret := newTestBundle(t)
	path := filepath.Join(t.TempDir(), "shares.yaml")

	require.NoError(t, b.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, b.Prime, loaded.Prime)

	prime, err := loaded.PrimeInt()
	require.NoError(t, err)
	all, err := loaded.All()
	require.NoError(t, err)
	recovered, err := gausshare.RecoverSecret(all[:3], prime)
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(recovered))
}

func TestBundleValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Bundle)
	}{
		{"missing prime", func(b *Bundle) { b.Prime = "" }},
		{"malformed prime", func(b *Bundle) { b.Prime = "not-a-number" }},
		{"zero threshold", func(b *Bundle) { b.Threshold = 0 }},
		{"total below threshold", func(b *Bundle) { b.Total = 2 }},
		{"no shares", func(b *Bundle) { b.Shares = nil }},
		{"zero share index", func(b *Bundle) { b.Shares[0].Index = 0 }},
		{"duplicate share index", func(b *Bundle) { b.Shares[1].Index = b.Shares[0].Index }},
		{"malformed share value", func(b *Bundle) { b.Shares[0].Value = "xyz" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBundle(t)
			tt.mutate(b)
			assert.Error(t, b.Validate())
		})
	}
}

func TestLoadRejectsInvalidBundle(t *testing.T) {
	b, _ := newTestBundle(t)
	b.Threshold = 0
	path := filepath.Join(t.TempDir(), "bad.json")

	data, err := b.JSON()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	_, err = Load(path)
	assert.Error(t, err)
}
