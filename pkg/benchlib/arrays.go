package benchlib

import "reflect"

// overlaps reports whether the elements of a and b share any memory. Disjoint
// windows of one allocation do not overlap.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := reflect.TypeFor[T]().Size()
	lo1 := reflect.ValueOf(&a[0]).Pointer()
	lo2 := reflect.ValueOf(&b[0]).Pointer()
	return lo1 < lo2+uintptr(len(b))*size && lo2 < lo1+uintptr(len(a))*size
}

// SumArray returns the sum of arr, 0 for an empty slice.
func SumArray(arr []float64) float64 {
	var sum float64
	for _, v := range arr {
		sum += v
	}
	return sum
}

// ScaleArray multiplies every element of arr by factor in place.
func ScaleArray(arr []float64, factor float64) {
	for i := range arr {
		arr[i] *= factor
	}
}

// CopyArray copies len(src) values into dst. The source and the written part
// of dst must not overlap.
func CopyArray(src, dst []float64) error {
	if len(dst) < len(src) {
		return ErrLengthMismatch
	}
	if overlaps(src, dst[:len(src)]) {
		return ErrAliased
	}
	copy(dst, src)
	return nil
}

// DotProduct returns Σ a[i]*b[i]. Both slices must have the same length.
func DotProduct(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	var sum float64
	for i, v := range a {
		sum += v * b[i]
	}
	return sum, nil
}

// ArrayReverse reverses arr in place.
func ArrayReverse(arr []float64) {
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// SumStrided sums arr[0], arr[stride], arr[2*stride] and so on. A stride
// at least len(arr) yields only arr[0].
func SumStrided(arr []float64, stride int) (float64, error) {
	if stride < 1 {
		return 0, ErrInvalidStride
	}
	var sum float64
	for i := 0; i < len(arr); i += stride {
		sum += arr[i]
	}
	return sum, nil
}
