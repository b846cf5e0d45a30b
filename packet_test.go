// packet_test.go

package tello

import (
	"bytes"
	"testing"
)

func TestEncodePacketTakeoff(t *testing.T) {
	want := []byte{204, 88, 0, 124, 104, 84, 0, 123, 0, 222, 157}
	got := doTakeoff(123)
	if !bytes.Equal(want, got) {
		t.Errorf("doTakeoff(123) = % x, want % x", got, want)
	}
}

func TestEncodePacketLand(t *testing.T) {
	want := []byte{204, 96, 0, 39, 104, 85, 0, 123, 0, 0, 0, 71}
	got := doLand(123)
	if !bytes.Equal(want, got) {
		t.Errorf("doLand(123) = % x, want % x", got, want)
	}
}

func TestEncodePacketFlipForward(t *testing.T) {
	want := []byte{204, 96, 0, 39, 112, 92, 0, 123, 0, 0, 140, 117}
	got := doFlip(123, FlipForward)
	if !bytes.Equal(want, got) {
		t.Errorf("doFlip(123, FlipForward) = % x, want % x", got, want)
	}
}

func TestEncodePacketTakePicture(t *testing.T) {
	want := []byte{204, 88, 0, 124, 104, 48, 0, 123, 0, 214, 118}
	got := doTakePicture(123)
	if !bytes.Equal(want, got) {
		t.Errorf("doTakePicture(123) = % x, want % x", got, want)
	}
}

func TestConnectFrame(t *testing.T) {
	want := []byte{99, 111, 110, 110, 95, 114, 101, 113, 58, 195, 34}
	got := connectFrame(8899)
	if !bytes.Equal(want, got) {
		t.Errorf("connectFrame(8899) = % x, want % x", got, want)
	}
}

func TestDecodePacketRoundTrip(t *testing.T) {
	raw := doTakeoff(42)
	pkt, crcOK, err := decodePacket(raw, nil)
	if err != nil {
		t.Fatalf("decodePacket: %v", err)
	}
	if !crcOK {
		t.Error("decodePacket reported a CRC mismatch on a freshly encoded frame")
	}
	if pkt.messageID != msgDoTakeoff {
		t.Errorf("messageID = 0x%04x, want 0x%04x", pkt.messageID, msgDoTakeoff)
	}
	if pkt.sequence != 42 {
		t.Errorf("sequence = %d, want 42", pkt.sequence)
	}
	if pkt.packetType != ptSet {
		t.Errorf("packetType = %d, want %d", pkt.packetType, ptSet)
	}
}

func TestDecodePacketBadCRC(t *testing.T) {
	raw := doTakeoff(1)
	raw[len(raw)-1] ^= 0xff
	_, crcOK, err := decodePacket(raw, nil)
	if err != nil {
		t.Fatalf("decodePacket: %v", err)
	}
	if crcOK {
		t.Error("decodePacket reported crcOK=true for a corrupted frame")
	}
}

func TestDecodePacketTooShort(t *testing.T) {
	_, _, err := decodePacket([]byte{204, 1, 2}, nil)
	if err == nil {
		t.Error("expected an error decoding a too-short buffer")
	}
}
