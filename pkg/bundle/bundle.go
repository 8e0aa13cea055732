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

// Package bundle groups a share set with the public prime modulus it was
// created under. Reconstruction is impossible without the prime, so the
// bundle is the unit that gets persisted and transmitted; the secret itself
// and the polynomial coefficients never appear in one.
package bundle

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jeremyhahn/go-gausshare/pkg/crypto/gausshare"
)

// Entry is one share inside a bundle. Values are decimal strings so the
// bundle serializes identically to JSON and YAML without big-integer
// precision loss.
type Entry struct {
	// Index is the share x-coordinate (1..total).
	Index int `json:"index" yaml:"index"`

	// Value is the share y-coordinate in decimal.
	Value string `json:"value" yaml:"value"`
}

// Bundle is a serialized share set plus the public parameters needed to
// reconstruct the secret.
type Bundle struct {
	// ID uniquely identifies the share set.
	ID string `json:"id" yaml:"id"`

	// CreatedAt records when the share set was generated (UTC).
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Prime is the field modulus in decimal. It is public information.
	Prime string `json:"prime" yaml:"prime"`

	// Threshold is the number of shares required for reconstruction.
	Threshold int `json:"threshold" yaml:"threshold"`

	// Total is the number of shares issued.
	Total int `json:"total" yaml:"total"`

	// Shares holds the issued shares.
	Shares []Entry `json:"shares" yaml:"shares"`

	// Metadata carries optional caller-supplied labels.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New builds a bundle from the output of gausshare.CreateShares.
func New(prime *big.Int, shares []*gausshare.Share, threshold int) *Bundle {
	entries := make([]Entry, len(shares))
	for i, share := range shares {
		entries[i] = Entry{
			Index: int(share.X.Int64()),
			Value: share.Y.String(),
		}
	}
	return &Bundle{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Prime:     prime.String(),
		Threshold: threshold,
		Total:     len(shares),
		Shares:    entries,
		Metadata:  make(map[string]string),
	}
}

// Validate checks the bundle parameters and share entries.
func (b *Bundle) Validate() error {
	if b.Prime == "" {
		return fmt.Errorf("bundle: prime is required")
	}
	if _, err := b.PrimeInt(); err != nil {
		return err
	}
	if b.Threshold < 1 {
		return fmt.Errorf("bundle: invalid threshold %d (must be >= 1)", b.Threshold)
	}
	if b.Total < b.Threshold {
		return fmt.Errorf("bundle: total %d below threshold %d", b.Total, b.Threshold)
	}
	if len(b.Shares) == 0 {
		return fmt.Errorf("bundle: no shares")
	}
	seen := make(map[int]struct{}, len(b.Shares))
	for i, entry := range b.Shares {
		if entry.Index < 1 {
			return fmt.Errorf("bundle: share %d has invalid index %d", i, entry.Index)
		}
		if _, dup := seen[entry.Index]; dup {
			return fmt.Errorf("bundle: duplicate share index %d", entry.Index)
		}
		seen[entry.Index] = struct{}{}
		if _, ok := new(big.Int).SetString(entry.Value, 10); !ok {
			return fmt.Errorf("bundle: share %d has malformed value", i)
		}
	}
	return nil
}

// PrimeInt parses the prime modulus.
func (b *Bundle) PrimeInt() (*big.Int, error) {
	p, ok := new(big.Int).SetString(b.Prime, 10)
	if !ok {
		return nil, fmt.Errorf("bundle: malformed prime %q", b.Prime)
	}
	return p, nil
}

// All returns every share in the bundle.
func (b *Bundle) All() ([]*gausshare.Share, error) {
	shares := make([]*gausshare.Share, len(b.Shares))
	for i, entry := range b.Shares {
		share, err := entry.share()
		if err != nil {
			return nil, err
		}
		shares[i] = share
	}
	return shares, nil
}

// Select returns the shares with the given indices (share x-coordinates,
// not slice positions).
func (b *Bundle) Select(indices ...int) ([]*gausshare.Share, error) {
	byIndex := make(map[int]Entry, len(b.Shares))
	for _, entry := range b.Shares {
		byIndex[entry.Index] = entry
	}

	shares := make([]*gausshare.Share, len(indices))
	for i, idx := range indices {
		entry, ok := byIndex[idx]
		if !ok {
			return nil, fmt.Errorf("bundle: no share with index %d", idx)
		}
		share, err := entry.share()
		if err != nil {
			return nil, err
		}
		shares[i] = share
	}
	return shares, nil
}

func (e Entry) share() (*gausshare.Share, error) {
	y, ok := new(big.Int).SetString(e.Value, 10)
	if !ok {
		return nil, fmt.Errorf("bundle: share %d has malformed value", e.Index)
	}
	return gausshare.NewShare(int64(e.Index), y), nil
}

// Save writes the bundle to path, as YAML for .yaml/.yml extensions and
// JSON otherwise. Files are created owner-readable only; shares are secret
// material.
func (b *Bundle) Save(path string) error {
	data, err := b.encode(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("bundle: failed to write %s: %w", path, err)
	}
	return nil
}

// Encode serializes the bundle for the given path's format without writing.
func (b *Bundle) encode(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return b.YAML()
	default:
		return b.JSON()
	}
}

// JSON serializes the bundle as indented JSON.
func (b *Bundle) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("bundle: JSON encode failed: %w", err)
	}
	return append(data, '\n'), nil
}

// YAML serializes the bundle as YAML.
func (b *Bundle) YAML() ([]byte, error) {
	data, err := yaml.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("bundle: YAML encode failed: %w", err)
	}
	return data, nil
}

// Load reads and validates a bundle from path, detecting the format from
// the extension.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bundle: failed to read %s: %w", path, err)
	}

	var b Bundle
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("bundle: YAML decode failed: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("bundle: JSON decode failed: %w", err)
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
