// crc_test.go

package tello

import "testing"

func TestCalculateCRC8(t *testing.T) {
	cases := []struct {
		name string
		buff []byte
		want byte
	}{
		{"takeoff header", []byte{204, 88, 0}, 0x7c},
		{"land header", []byte{204, 96, 0}, 0x27},
		{"stick header", []byte{204, 176, 0}, 0x7f},
	}
	for _, c := range cases {
		if got := calculateCRC8(c.buff); got != c.want {
			t.Errorf("%s: calculateCRC8(% x) = 0x%02x, want 0x%02x", c.name, c.buff, got, c.want)
		}
	}
}

func TestCalculateCRC16(t *testing.T) {
	takeoff := []byte{204, 88, 0, 124, 104, 84, 0, 123, 0}
	if got := calculateCRC16(takeoff); got != 0x9dde {
		t.Errorf("calculateCRC16(takeoff) = 0x%04x, want 0x9dde", got)
	}

	land := []byte{204, 96, 0, 39, 104, 85, 0, 123, 0, 0}
	if got := calculateCRC16(land); got != 0x4700 {
		t.Errorf("calculateCRC16(land) = 0x%04x, want 0x4700", got)
	}
}
