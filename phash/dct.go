package phash

import "math"

// DCT2D computes the unnormalised two-dimensional DCT-II of an n x n row-major matrix:
//
//	X[k1][k2] = sum_{n1,n2} x[n1][n2] * cos(pi/n * (n1+0.5) * k1) * cos(pi/n * (n2+0.5) * k2)
//
// It runs as a row pass followed by a column pass over a shared cosine table.
func DCT2D(src []float64, n int) []float64 {
	if len(src) != n*n {
		panic("phash: DCT2D input is not n x n")
	}

	basis := cosineTable(n)

	// Rows: tmp[r][k] = sum_i src[r][i] * cos(k, i)
	tmp := make([]float64, n*n)
	for r := 0; r < n; r++ {
		row := src[r*n : (r+1)*n]
		for k := 0; k < n; k++ {
			cos := basis[k*n : (k+1)*n]
			var sum float64
			for i, v := range row {
				sum += v * cos[i]
			}
			tmp[r*n+k] = sum
		}
	}

	// Columns: dst[k][c] = sum_r tmp[r][c] * cos(k, r)
	dst := make([]float64, n*n)
	for k := 0; k < n; k++ {
		cos := basis[k*n : (k+1)*n]
		for c := 0; c < n; c++ {
			var sum float64
			for r := 0; r < n; r++ {
				sum += tmp[r*n+c] * cos[r]
			}
			dst[k*n+c] = sum
		}
	}
	return dst
}

// cosineTable returns cos(pi/n * (i+0.5) * k) at index k*n+i.
func cosineTable(n int) []float64 {
	table := make([]float64, n*n)
	piOverN := math.Pi / float64(n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			table[k*n+i] = math.Cos(piOverN * (float64(i) + 0.5) * float64(k))
		}
	}
	return table
}
