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

package cli

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-gausshare/pkg/bundle"
	"github.com/jeremyhahn/go-gausshare/pkg/crypto/gausshare"
)

func TestParseIndices(t *testing.T) {
	indices, err := parseIndices("1,3, 5")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, indices)

	_, err = parseIndices("1,x,3")
	assert.Error(t, err)
}

func TestParseRawShare(t *testing.T) {
	share, err := parseRawShare("2:123456789012345678901234567890")
	require.NoError(t, err)
	assert.EqualValues(t, 2, share.X.Int64())
	assert.Equal(t, "123456789012345678901234567890", share.Y.String())

	tests := []string{
		"no-separator",
		"x:5",
		"2:y",
		"0:5", // x=0 never issued, would leak the secret directly
	}
	for _, raw := range tests {
		_, err := parseRawShare(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestPrinterBundleJSON(t *testing.T) {
	secret := big.NewInt(987654321)
	prime, shares, err := gausshare.CreateShares(secret, 3, 2, nil)
	require.NoError(t, err)
	b := bundle.New(prime, shares, 2)

	var buf bytes.Buffer
	printer := NewPrinter("json", &buf)
	require.NoError(t, printer.PrintBundle(b))

	var decoded bundle.Bundle
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, b.ID, decoded.ID)
	assert.Len(t, decoded.Shares, 3)
}

func TestPrinterSecretText(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("text", &buf)
	require.NoError(t, printer.PrintSecret("42"))
	assert.Equal(t, "42\n", buf.String())
}

func TestPrinterUnknownFormat(t *testing.T) {
	printer := NewPrinter("xml", &bytes.Buffer{})
	assert.Error(t, printer.PrintSecret("42"))
}
