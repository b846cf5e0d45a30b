// control_test.go

package tello

import "testing"

func TestDispatchFlightStatusUpdatesFlyingAndPublishes(t *testing.T) {
	c, _ := newTestController(t)

	pl := make([]byte, 24)
	pl[17] = 0x01 // Flying bit

	c.dispatch(packet{messageID: msgFlightStatus, payload: pl})

	if !c.Flying() {
		t.Error("expected Flying() true after a flight-status packet with the flying bit set")
	}

	select {
	case u := <-c.Updates():
		if u.Flight == nil {
			t.Error("expected a Flight update")
		}
	default:
		t.Error("expected an UpdateData to be published")
	}
}

func TestDispatchWifiStrength(t *testing.T) {
	c, _ := newTestController(t)
	c.dispatch(packet{messageID: msgWifiStrength, payload: []byte{50, 1}})

	select {
	case u := <-c.Updates():
		if u.Wifi == nil || u.Wifi.Strength != 50 {
			t.Errorf("unexpected wifi update: %+v", u.Wifi)
		}
	default:
		t.Error("expected an UpdateData to be published")
	}
}

func TestDispatchFileSizeRegistersPendingFile(t *testing.T) {
	c, _ := newTestController(t)
	payload := make([]byte, 7)
	payload[0] = byte(ftJPEG)
	payload[1] = 10 // expected size
	payload[5] = 9  // file id

	c.dispatch(packet{messageID: msgFileSize, payload: payload})

	c.filesMu.RLock()
	_, ok := c.files[9]
	c.filesMu.RUnlock()
	if !ok {
		t.Error("expected dispatch to register a pending file via handleFileSize")
	}
}

func TestIsTimeout(t *testing.T) {
	if isTimeout(nil) {
		t.Error("isTimeout(nil) should be false")
	}
}
