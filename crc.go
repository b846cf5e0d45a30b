// crc.go

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

// The Tello uses two checksums per frame: an 8-bit CRC over the first
// three header bytes, and a 16-bit CRC over the whole frame bar its own
// trailing two bytes. Neither uses a catalogued initial value, so the
// tables below are generated once from the drone-specific seed rather
// than borrowed from a textbook CRC-8/CRC-16 variant.

const (
	crc8Poly = 0x8c // reflected form of polynomial 0x31 (Maxim/Dallas 1-Wire)
	crc8Init = 0x77

	crc16Poly = 0x8408 // reflected form of polynomial 0x1021 (CCITT/XMODEM)
	crc16Init = 0x3692
)

var crc8Table [256]byte
var crc16Table [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		crc := byte(i)
		for b := 0; b < 8; b++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crc8Poly
			} else {
				crc >>= 1
			}
		}
		crc8Table[i] = crc
	}
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for b := 0; b < 8; b++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crc16Poly
			} else {
				crc >>= 1
			}
		}
		crc16Table[i] = crc
	}
}

// calculateCRC8 computes the Tello's 8-bit checksum over buff.
func calculateCRC8(buff []byte) byte {
	crc := byte(crc8Init)
	for _, b := range buff {
		crc = crc8Table[crc^b]
	}
	return crc
}

// calculateCRC16 computes the Tello's 16-bit checksum over buff.
func calculateCRC16(buff []byte) uint16 {
	crc := uint16(crc16Init)
	for _, b := range buff {
		crc = (crc >> 8) ^ crc16Table[byte(crc)^b]
	}
	return crc
}
