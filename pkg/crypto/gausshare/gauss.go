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
)

// SolveModular solves the linear system A*x = b (mod prime) for a square
// matrix A by Gauss-Jordan elimination: each pivot row is normalized by the
// modular inverse of its pivot and the pivot column is eliminated from every
// other row, above and below, reducing A to the identity directly rather
// than back-substituting from triangular form.
//
// Pivot selection scans downward from the current pivot row for the first
// entry nonzero mod prime; a column with no nonzero entry is skipped, which
// leaves a zero on the diagonal and surfaces as ErrSingularMatrix after the
// sweep. For share reconstruction A is a Vandermonde matrix, invertible over
// GF(p) whenever the share x-values are distinct, so ErrSingularMatrix
// indicates duplicate or degenerate shares.
//
// The inputs are not modified. Every matrix and vector entry is reduced into
// [0, prime) after each multiply and subtract; with big integers this is a
// correctness requirement of the modular arithmetic, not only a guard
// against operand growth.
func SolveModular(matrix [][]*big.Int, vector []*big.Int, prime *big.Int) ([]*big.Int, error) {
	n := len(matrix)
	for _, row := range matrix {
		if len(row) != n {
			return nil, ErrNonSquareMatrix
		}
	}
	if len(vector) != n {
		return nil, ErrDimensionMismatch
	}

	// Work on copies; callers keep their shares intact.
	mat := make([][]*big.Int, n)
	for i, row := range matrix {
		mat[i] = make([]*big.Int, n)
		for j, v := range row {
			mat[i][j] = new(big.Int).Set(v)
		}
	}
	rhs := make([]*big.Int, n)
	for i, v := range vector {
		rhs[i] = new(big.Int).Set(v)
	}

	rem := new(big.Int)
	tmp := new(big.Int)

	pivotRow := 0
	for pivotCol := 0; pivotCol < n && pivotRow < n; pivotCol++ {
		sel := -1
		for r := pivotRow; r < n; r++ {
			if rem.Mod(mat[r][pivotCol], prime).Sign() != 0 {
				sel = r
				break
			}
		}
		if sel < 0 {
			// No usable pivot in this column; leave it for the
			// post-sweep singularity check.
			continue
		}
		if sel != pivotRow {
			mat[pivotRow], mat[sel] = mat[sel], mat[pivotRow]
			rhs[pivotRow], rhs[sel] = rhs[sel], rhs[pivotRow]
		}

		pivot := new(big.Int).Mod(mat[pivotRow][pivotCol], prime)
		pivotInv, err := ModularInverse(pivot, prime)
		if err != nil {
			return nil, fmt.Errorf("gausshare: pivot at row %d column %d: %w", pivotRow, pivotCol, err)
		}
		for c := pivotCol; c < n; c++ {
			mat[pivotRow][c].Mul(mat[pivotRow][c], pivotInv)
			mat[pivotRow][c].Mod(mat[pivotRow][c], prime)
		}
		rhs[pivotRow].Mul(rhs[pivotRow], pivotInv)
		rhs[pivotRow].Mod(rhs[pivotRow], prime)

		for r := 0; r < n; r++ {
			if r == pivotRow {
				continue
			}
			factor := rem.Mod(mat[r][pivotCol], prime)
			if factor.Sign() == 0 {
				continue
			}
			factor = new(big.Int).Set(factor)
			for c := pivotCol; c < n; c++ {
				tmp.Mul(factor, mat[pivotRow][c])
				mat[r][c].Sub(mat[r][c], tmp)
				mat[r][c].Mod(mat[r][c], prime)
			}
			tmp.Mul(factor, rhs[pivotRow])
			rhs[r].Sub(rhs[r], tmp)
			rhs[r].Mod(rhs[r], prime)
		}
		pivotRow++
	}

	for i := 0; i < n; i++ {
		if rem.Mod(mat[i][i], prime).Sign() == 0 {
			return nil, ErrSingularMatrix
		}
	}

	for i := range rhs {
		rhs[i].Mod(rhs[i], prime)
	}
	return rhs, nil
}
