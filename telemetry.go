// telemetry.go

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

// FlightData is the decoded payload of msgFlightStatus (24 bytes).
type FlightData struct {
	Height            int16
	NorthSpeed        int16
	EastSpeed         int16
	VerticalSpeed     int16
	FlyTime           int16
	ImuState          bool
	PressureState     bool
	DownVisualState   bool
	PowerState        bool
	BatteryState      bool
	GravityState      bool
	WindState         bool
	ImuCalibration    int8
	BatteryPercentage int8
	DroneFlyTimeLeft  int16
	DroneBatteryLeft  int16
	Flying            bool
	OnGround          bool
	EmOpen            bool
	DroneHover        bool
	OutageRecording   bool
	BatteryLow        bool
	BatteryLower      bool
	FactoryMode       bool
	FlyMode           uint8
	ThrowFlyTimer     int8
	CameraState       uint8
	ElectricalState   uint8
	FrontIn           bool
	FrontOut          bool
	FrontLSC          bool
	OverTemp          bool
}

// decodeFlightData parses msgFlightStatus's 24-byte payload. Every
// multi-byte field goes through byteutil.go's unambiguous little-endian
// readers, which deliberately avoids the source's noted
// `int16(pl[0]) + int16(pl[1])<<8` precedence bug (that expression
// left-shifts the sum, not the high byte).
func decodeFlightData(pl []byte) (fd FlightData) {
	fd.Height = leI16(pl, 0)
	fd.NorthSpeed = leI16(pl, 2)
	fd.EastSpeed = leI16(pl, 4)
	fd.VerticalSpeed = leI16(pl, 6)
	fd.FlyTime = leI16(pl, 8)

	status := pl[10]
	fd.ImuState = status&0x01 != 0
	fd.PressureState = status&0x02 != 0
	fd.DownVisualState = status&0x04 != 0
	fd.PowerState = status&0x08 != 0
	fd.BatteryState = status&0x10 != 0
	fd.GravityState = status&0x20 != 0
	// bit 6 is unassigned in the known protocol
	fd.WindState = status&0x80 != 0

	fd.ImuCalibration = int8(pl[11])
	fd.BatteryPercentage = int8(pl[12])
	fd.DroneFlyTimeLeft = leI16(pl, 13)
	fd.DroneBatteryLeft = leI16(pl, 15)

	mode := pl[17]
	fd.Flying = mode&0x01 != 0
	fd.OnGround = mode&0x02 != 0
	fd.EmOpen = mode&0x04 != 0
	fd.DroneHover = mode&0x08 != 0
	fd.OutageRecording = mode&0x10 != 0
	fd.BatteryLow = mode&0x20 != 0
	fd.BatteryLower = mode&0x40 != 0
	fd.FactoryMode = mode&0x80 != 0

	fd.FlyMode = pl[18]
	fd.ThrowFlyTimer = int8(pl[19])
	fd.CameraState = pl[20]
	fd.ElectricalState = pl[21]

	sensor := pl[22]
	fd.FrontIn = sensor&0x01 != 0
	fd.FrontOut = sensor&0x02 != 0
	fd.FrontLSC = sensor&0x04 != 0
	fd.OverTemp = pl[23]&0x01 != 0

	return fd
}

// WifiData is the decoded payload of msgWifiStrength.
type WifiData struct {
	Strength     uint8
	Interference uint8
}

func decodeWifiData(pl []byte) WifiData {
	return WifiData{Strength: pl[0], Interference: pl[1]}
}

// LightData is the decoded payload of msgLightStrength, stamped with the
// receiver's own clock since the drone does not send a timestamp.
type LightData struct {
	Strength  uint8
	RecvdAtMs int64
}

func decodeLightData(pl []byte, recvdAtMs int64) LightData {
	return LightData{Strength: pl[0], RecvdAtMs: recvdAtMs}
}
