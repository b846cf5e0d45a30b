// byteutil.go

// Copyright (C) 2018  Steve Merrony

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package tello

import (
	"math"
)

// le16 reads an unsigned little-endian 16-bit value at buff[i:i+2].
// Unlike the original draft's `int16(pl[0]) + int16(pl[1])<<8` idiom,
// which left-shifts the already-summed value instead of the high byte,
// this reads each byte unambiguously before combining them.
func le16(buff []byte, i int) uint16 {
	return uint16(buff[i]) | uint16(buff[i+1])<<8
}

// leI16 is le16 reinterpreted as a signed 16-bit value.
func leI16(buff []byte, i int) int16 {
	return int16(le16(buff, i))
}

// le32 reads an unsigned little-endian 32-bit value at buff[i:i+4].
func le32(buff []byte, i int) uint32 {
	return uint32(buff[i]) | uint32(buff[i+1])<<8 | uint32(buff[i+2])<<16 | uint32(buff[i+3])<<24
}

// bytesToFloat32 decodes a little-endian IEEE-754 float32 from the first
// four bytes of b. b must have at least 4 bytes; extra bytes are ignored,
// matching the teacher's slice-based call sites such as b[offset:offset+5].
func bytesToFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}

// xorBytes returns a copy of buff with every byte XORed against key.
func xorBytes(buff []byte, key byte) []byte {
	out := make([]byte, len(buff))
	for i, b := range buff {
		out[i] = b ^ key
	}
	return out
}

// clampF64 restricts v to [lo, hi].
func clampF64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// quatToEulerDeg converts a unit quaternion (w, x, y, z) to roll, pitch
// and yaw in degrees, in that order.
func quatToEulerDeg(w, x, y, z float64) (roll, pitch, yaw float64) {
	sqx := x * x
	sqy := y * y
	sqz := z * z

	sinRoll := 2 * (w*x + y*z)
	cosRoll := 1 - 2*(sqx+sqy)
	roll = math.Atan2(sinRoll, cosRoll) * 180 / math.Pi

	sinPitch := clampF64(2*(w*y-z*x), -1, 1)
	pitch = math.Asin(sinPitch) * 180 / math.Pi

	sinYaw := 2 * (w*z + x*y)
	cosYaw := 1 - 2*(sqy+sqz)
	yaw = math.Atan2(sinYaw, cosYaw) * 180 / math.Pi

	return roll, pitch, yaw
}
