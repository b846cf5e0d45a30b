// telemetry_test.go

package tello

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFlightData(t *testing.T) {
	pl := make([]byte, 24)
	pl[0], pl[1] = 0x2c, 0x01 // Height = 300
	pl[10] = 0x01 | 0x08      // ImuState, PowerState
	pl[12] = 77               // BatteryPercentage
	pl[17] = 0x01 | 0x20      // Flying, BatteryLow

	fd := decodeFlightData(pl)
	assert.EqualValues(t, 300, fd.Height)
	assert.True(t, fd.ImuState)
	assert.True(t, fd.PowerState)
	assert.False(t, fd.DownVisualState)
	assert.EqualValues(t, 77, fd.BatteryPercentage)
	assert.True(t, fd.Flying)
	assert.True(t, fd.BatteryLow)
	assert.False(t, fd.FactoryMode)
}

func TestDecodeFlightDataNegativeHeight(t *testing.T) {
	pl := make([]byte, 24)
	pl[0], pl[1] = 0xff, 0xff // -1 as int16
	fd := decodeFlightData(pl)
	assert.EqualValues(t, -1, fd.Height)
}

func TestDecodeWifiData(t *testing.T) {
	wd := decodeWifiData([]byte{90, 3})
	assert.EqualValues(t, 90, wd.Strength)
	assert.EqualValues(t, 3, wd.Interference)
}

func TestDecodeLightData(t *testing.T) {
	ld := decodeLightData([]byte{42}, 1000)
	assert.EqualValues(t, 42, ld.Strength)
	assert.EqualValues(t, 1000, ld.RecvdAtMs)
}
