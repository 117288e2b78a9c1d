package benchlib

import "math/bits"

// bufferShift is the byte offset applied by ProcessBuffer.
const bufferShift = 13

// ProcessBuffer adds 13 to every byte modulo 256, in place.
func ProcessBuffer(buf []byte) {
	for i := range buf {
		buf[i] += bufferShift
	}
}

// RestoreBuffer undoes ProcessBuffer in place.
func RestoreBuffer(buf []byte) {
	for i := range buf {
		buf[i] -= bufferShift
	}
}

// Checksum returns the sum of all bytes modulo 2^32.
func Checksum(buf []byte) uint32 {
	var sum uint32
	for _, b := range buf {
		sum += uint32(b)
	}
	return sum
}

// Popcount returns the number of set bits in n.
func Popcount(n uint32) int32 {
	return int32(bits.OnesCount32(n))
}

// BitwiseReduce folds arr with XOR. The empty fold is 0.
func BitwiseReduce(arr []uint32) uint32 {
	var acc uint32
	for _, v := range arr {
		acc ^= v
	}
	return acc
}
