// commands.go

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

// Tello message IDs. The full enumeration is kept even where no builder
// is (yet) wired to a given ID, so the message-ID space stays complete.
const (
	msgDoConnect         = 0x0001 // 1
	msgConnected         = 0x0002 // 2
	msgGetSSID           = 0x0011 // 17
	msgSetSSID           = 0x0012 // 18
	msgGetSSIDPass       = 0x0013 // 19
	msgSetSSIDPass       = 0x0014 // 20
	msgGetWifiRegion     = 0x0015 // 21
	msgSetWifiRegion     = 0x0016 // 22
	msgWifiStrength      = 0x001a // 26
	msgSetVideoBitrate   = 0x0020 // 32
	msgSetDynAdjRate     = 0x0021 // 33
	msgEisSetting        = 0x0024 // 36
	msgGetVideoSPSPPS    = 0x0025 // 37
	msgGetVideoBitrate   = 0x0028 // 40
	msgDoTakePic         = 0x0030 // 48
	msgSwitchPicVideo    = 0x0031 // 49
	msgDoStartRec        = 0x0032 // 50
	msgExposureVals      = 0x0034 // 52
	msgLightStrength     = 0x0035 // 53
	msgGetJPEGQuality    = 0x0037 // 55
	msgError1            = 0x0043 // 67
	msgError2            = 0x0044 // 68
	msgGetVersion        = 0x0045 // 69
	msgSetDateTime       = 0x0046 // 70
	msgGetActivationTime = 0x0047 // 71
	msgGetLoaderVersion  = 0x0049 // 73
	msgSetStick          = 0x0050 // 80
	msgDoTakeoff         = 0x0054 // 84
	msgDoLand            = 0x0055 // 85
	msgFlightStatus      = 0x0056 // 86
	msgSetHeightLimit    = 0x0058 // 88
	msgDoFlip            = 0x005c // 92
	msgDoThrowTakeoff    = 0x005d // 93
	msgDoPalmLand        = 0x005e // 94
	msgFileSize          = 0x0062 // 98
	msgFileData          = 0x0063 // 99
	msgFileDone          = 0x0064 // 100
	msgDoSmartVideo      = 0x0080 // 128
	msgGetSmartVideo     = 0x0081 // 129
	msgLogHeader         = 0x1050 // 4176
	msgLogData           = 0x1051 // 4177
	msgLogConfig         = 0x1052 // 4178
	msgDoBounce          = 0x1053 // 4179
	msgDoCalibration     = 0x1054 // 4180
	msgSetLowBattThresh  = 0x1055 // 4181
	msgGetHeightLimit    = 0x1056 // 4182
	msgGetLowBattThresh  = 0x1057 // 4183
	msgSetAttitude       = 0x1058 // 4184
	msgGetAttitude       = 0x1059 // 4185
)

// FlipType identifies one of the drone's preprogrammed flip directions.
type FlipType int

// Flip directions accepted by doFlip.
const (
	FlipForward FlipType = iota
	FlipLeft
	FlipBackward
	FlipRight
	FlipForwardLeft
	FlipBackwardLeft
	FlipBackwardRight
	FlipForwardRight
)

// SvCmd identifies a 'smart video' preprogrammed flight action.
type SvCmd int

// Smart Video commands.
const (
	SvStop SvCmd = iota
	Sv360
	SvCircle
	SvUpOut
)

// VBR is a video bit rate selector (mbps), 0 meaning automatic.
type VBR int

// Video bit rate settings.
const (
	VbrAuto VBR = iota
	Vbr1M
	Vbr1M5
	Vbr2M
	Vbr3M
	Vbr4M
)

const connReqVideoPort = 6038

// connectFrame builds the plaintext handshake datagram: "conn_req:" plus
// the local video port, little-endian. It carries none of the usual
// framing (no header byte, no CRCs) -- the drone expects this exact
// literal on first contact.
func connectFrame(videoPort uint16) []byte {
	buff := []byte("conn_req:lh")
	buff[9] = byte(videoPort)
	buff[10] = byte(videoPort >> 8)
	return buff
}

func doTakeoff(seq uint16) []byte {
	return encodePacket(newPacket(ptSet, msgDoTakeoff, seq, 0))
}

func doThrowTakeoff(seq uint16) []byte {
	return encodePacket(newPacket(ptGet, msgDoThrowTakeoff, seq, 0))
}

func doLand(seq uint16) []byte {
	pkt := newPacket(ptSet, msgDoLand, seq, 1)
	pkt.payload[0] = 0
	return encodePacket(pkt)
}

func cancelLand(seq uint16) []byte {
	pkt := newPacket(ptSet, msgDoLand, seq, 1)
	pkt.payload[0] = 1
	return encodePacket(pkt)
}

func palmLand(seq uint16) []byte {
	pkt := newPacket(ptSet, msgDoPalmLand, seq, 1)
	pkt.payload[0] = 0
	return encodePacket(pkt)
}

func bounce(seq uint16, on bool) []byte {
	pkt := newPacket(ptSet, msgDoBounce, seq, 1)
	if on {
		pkt.payload[0] = 0x30
	} else {
		pkt.payload[0] = 0x31
	}
	return encodePacket(pkt)
}

func doFlip(seq uint16, dir FlipType) []byte {
	pkt := newPacket(ptFlip, msgDoFlip, seq, 1)
	pkt.payload[0] = byte(dir)
	return encodePacket(pkt)
}

func smartVideo(seq uint16, cmd SvCmd, start bool) []byte {
	pkt := newPacket(ptSet, msgDoSmartVideo, seq, 1)
	if start {
		pkt.payload[0] = byte(cmd)<<2 | 0x01
	} else {
		pkt.payload[0] = byte(cmd) << 2
	}
	return encodePacket(pkt)
}

func setVideoBitrate(seq uint16, vbr VBR) []byte {
	pkt := newPacket(ptSet, msgSetVideoBitrate, seq, 1)
	pkt.payload[0] = byte(vbr)
	return encodePacket(pkt)
}

func switchPicVideo(seq uint16, wide bool) []byte {
	pkt := newPacket(ptSet, msgSwitchPicVideo, seq, 1)
	if wide {
		pkt.payload[0] = 1
	}
	return encodePacket(pkt)
}

func doTakePicture(seq uint16) []byte {
	return encodePacket(newPacket(ptSet, msgDoTakePic, seq, 0))
}

// querySPSPPS always uses sequence zero, per protocol convention for this
// message.
func querySPSPPS() []byte {
	return encodePacket(newPacket(ptData2, msgGetVideoSPSPPS, 0, 0))
}

// ackLogHeader acknowledges a log-header message, echoing its 2-byte id.
func ackLogHeader(seq uint16, id [2]byte) []byte {
	pkt := newPacket(ptData1, msgLogHeader, seq, 3)
	pkt.payload[1] = id[0]
	pkt.payload[2] = id[1]
	return encodePacket(pkt)
}

// ackFileSize acknowledges a file-size message.
func ackFileSize(seq uint16) []byte {
	pkt := newPacket(ptData1, msgFileSize, seq, 1)
	return encodePacket(pkt)
}

// ackFilePiece acknowledges one completed piece (done=false) or the whole
// file (done=true) of an inbound photo transfer.
func ackFilePiece(seq uint16, done bool, fileID uint16, pieceNum uint32) []byte {
	pkt := newPacket(ptData1, msgFileData, seq, 7)
	if done {
		pkt.payload[0] = 1
	}
	pkt.payload[1] = byte(fileID)
	pkt.payload[2] = byte(fileID >> 8)
	pkt.payload[3] = byte(pieceNum)
	pkt.payload[4] = byte(pieceNum >> 8)
	pkt.payload[5] = byte(pieceNum >> 16)
	pkt.payload[6] = byte(pieceNum >> 24)
	return encodePacket(pkt)
}

// fileDone tells the drone the photo transfer is complete.
func fileDone(seq uint16, fileID uint16, size uint32) []byte {
	pkt := newPacket(ptData1, msgFileDone, seq, 6)
	pkt.payload[0] = byte(fileID)
	pkt.payload[1] = byte(fileID >> 8)
	pkt.payload[2] = byte(size)
	pkt.payload[3] = byte(size >> 8)
	pkt.payload[4] = byte(size >> 16)
	pkt.payload[5] = byte(size >> 24)
	return encodePacket(pkt)
}

// setDateTime builds the drone's auto-reply-able date/time frame, sent in
// response to msgSetDateTime requests from the drone.
func setDateTime(seq uint16, year, month, day, hour, minute, second int, millis int) []byte {
	pkt := newPacket(ptData1, msgSetDateTime, seq, 15)
	pkt.payload[0] = 0
	pkt.payload[1] = byte(year)
	pkt.payload[2] = byte(year >> 8)
	pkt.payload[3] = byte(month)
	pkt.payload[4] = byte(month >> 8)
	pkt.payload[5] = byte(day)
	pkt.payload[6] = byte(day >> 8)
	pkt.payload[7] = byte(hour)
	pkt.payload[8] = byte(hour >> 8)
	pkt.payload[9] = byte(minute)
	pkt.payload[10] = byte(minute >> 8)
	pkt.payload[11] = byte(second)
	pkt.payload[12] = byte(second >> 8)
	pkt.payload[13] = byte(millis)
	pkt.payload[14] = byte(millis >> 8)
	return encodePacket(pkt)
}
