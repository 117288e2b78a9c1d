package benchlib

import (
	"math"
	"math/rand/v2"
	"slices"
)

// MonteCarloPi estimates π from iterations uniform samples of the unit
// square. Each call seeds its own generator from the runtime entropy source.
func MonteCarloPi(iterations int) (float64, error) {
	return MonteCarloPiSeeded(iterations, rand.Uint64())
}

// MonteCarloPiSeeded is MonteCarloPi with a caller-chosen seed. Equal seeds
// give equal estimates.
func MonteCarloPiSeeded(iterations int, seed uint64) (float64, error) {
	if iterations < 1 {
		return 0, ErrOutOfDomain
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	inside := 0
	for i := 0; i < iterations; i++ {
		x := rng.Float64()
		y := rng.Float64()
		if x*x+y*y <= 1 {
			inside++
		}
	}
	return 4 * float64(inside) / float64(iterations), nil
}

// BlurArray writes a 3×3 box blur of the row-major width×height image input
// into output. Neighbours outside the image read the nearest edge pixel.
func BlurArray(input, output []float64, width, height int) error {
	if width < 0 || height < 0 {
		return ErrNegativeSize
	}
	if width > 0 && height > math.MaxInt/width {
		return ErrOutOfDomain
	}
	size := width * height
	if len(input) != size || len(output) != size {
		return ErrLengthMismatch
	}
	if overlaps(input, output) {
		return ErrAliased
	}
	if size == 0 {
		return nil
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for dy := -1; dy <= 1; dy++ {
				yy := clamp(y+dy, height)
				for dx := -1; dx <= 1; dx++ {
					sum += input[yy*width+clamp(x+dx, width)]
				}
			}
			output[y*width+x] = sum / 9
		}
	}
	return nil
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// SortArray sorts arr ascending in place. The sort is not stable and the
// order of NaN values is unspecified.
func SortArray(arr []float64) {
	slices.Sort(arr)
}
