// byteutil_test.go

package tello

import "testing"

func TestLE16(t *testing.T) {
	b := []byte{0x34, 0x12}
	if got := le16(b, 0); got != 0x1234 {
		t.Errorf("le16 = 0x%04x, want 0x1234", got)
	}
}

func TestLEI16Negative(t *testing.T) {
	b := []byte{0xff, 0xff}
	if got := leI16(b, 0); got != -1 {
		t.Errorf("leI16 = %d, want -1", got)
	}
}

func TestBytesToFloat32(t *testing.T) {
	b := []byte{
		0, 0, 0, 0,
		128, 63, 0, 0, 112, 65,
	}
	if r := bytesToFloat32(b[0:5]); r != 0 {
		t.Errorf("expected 0, got %f", r)
	}
	if r := bytesToFloat32(b[2:7]); r != 1 {
		t.Errorf("expected 1, got %f", r)
	}
	if r := bytesToFloat32(b[6:]); r != 15 {
		t.Errorf("expected 15, got %f", r)
	}
}

func TestXorBytes(t *testing.T) {
	in := []byte{0x00, 0xff, 0x55}
	out := xorBytes(in, 0xaa)
	want := []byte{0xaa, 0x55, 0xff}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("xorBytes[%d] = 0x%02x, want 0x%02x", i, out[i], want[i])
		}
	}
}

func TestQuatToEulerDegIdentity(t *testing.T) {
	roll, pitch, yaw := quatToEulerDeg(1, 0, 0, 0)
	if roll != 0 || pitch != 0 || yaw != 0 {
		t.Errorf("identity quaternion: roll=%f pitch=%f yaw=%f, want all 0", roll, pitch, yaw)
	}
}
