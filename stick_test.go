// stick_test.go

package tello

import (
	"bytes"
	"testing"
	"time"
)

func TestJsFloatToRawRange(t *testing.T) {
	cases := []struct {
		v    float64
		want uint16
	}{
		{-1, stickRawMin},
		{1, stickRawMax},
		{0, 1024},
		{-2, stickRawMin}, // out of range clamps
		{2, stickRawMax},
	}
	for _, c := range cases {
		if got := jsFloatToRaw(c.v); got != c.want {
			t.Errorf("jsFloatToRaw(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestEncodeStickUpdateCentred(t *testing.T) {
	st := stick{}
	now := time.Date(2020, 1, 1, 20, 20, 30, 0, time.UTC).Add(3209 * time.Microsecond)
	want := []byte{0, 4, 32, 0, 1, 8, 20, 20, 30, 137, 12}
	got := encodeStickUpdate(st, now)
	if !bytes.Equal(want, got) {
		t.Errorf("encodeStickUpdate(centred) = % x, want % x", got, want)
	}
}

func TestSetStickFrameGolden(t *testing.T) {
	st := stick{}
	now := time.Date(2020, 1, 1, 20, 20, 30, 0, time.UTC).Add(3209 * time.Microsecond)
	want := []byte{204, 176, 0, 127, 96, 80, 0, 0, 0, 0, 4, 32, 0, 1, 8, 20, 20, 30, 137, 12, 49, 146}
	got := setStickFrame(st, now)
	if !bytes.Equal(want, got) {
		t.Errorf("setStickFrame(centred) = % x, want % x", got, want)
	}
}

func TestEncodeStickUpdateFullRight(t *testing.T) {
	st := stick{ry: 1.0}
	got := encodeStickUpdate(st, time.Now())
	packed := uint64(got[0]) | uint64(got[1])<<8 | uint64(got[2])<<16 | uint64(got[3])<<24 | uint64(got[4])<<32 | uint64(got[5])<<40
	ry := (packed >> 11) & 0x7ff
	if ry != stickRawMax {
		t.Errorf("ry-encoded = %d, want %d", ry, stickRawMax)
	}
}
