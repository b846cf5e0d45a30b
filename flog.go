// flog.go - handle the flight logs from the drone

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

import "github.com/sirupsen/logrus"

const logRecordSeparator = 0x55

// log record types we know how to decode; everything else is skipped.
const (
	logRecNewMVO = 0x001d
	logRecIMU    = 0x0800
)

// logRecordHdrLen is separator(1) + length(2) + id(1) + record-type(2) + xor-key(1).
const logRecordHdrLen = 7

// MVOData is the decoded NewMVO log sub-record: each velocity axis and
// the position triple are only valid when the drone's flags byte says
// so, mirroring the per-axis Option<i16>/Option<f32> fields upstream.
type MVOData struct {
	HasVelocityX, HasVelocityY, HasVelocityZ bool
	VelocityX, VelocityY, VelocityZ          int16
	HasPosition                              bool
	PositionX, PositionY, PositionZ          float32
}

// IMUData is the decoded IMU log sub-record: attitude in degrees plus
// temperature in whole degrees Celsius.
type IMUData struct {
	Roll, Pitch, Yaw float64
	Temperature      int16
}

// LogData holds whichever sub-records were present in one msgLogData
// payload.
type LogData struct {
	MVO *MVOData
	IMU *IMUData
}

// decodeLogData walks the sequence of log records starting at payload
// offset 1, returning every NewMVO/IMU sub-record found. Unknown record
// types are skipped; the cursor always advances by the record length and
// stops once it is within 6 bytes of the payload end.
func decodeLogData(payload []byte, log *logrus.Logger) LogData {
	var out LogData
	pos := 1
	for pos < len(payload)-6 {
		if payload[pos] != logRecordSeparator {
			if log != nil {
				log.Warn("tello: log record missing separator byte, aborting decode")
			}
			break
		}
		recLen := int(payload[pos+1])
		if payload[pos+2] != 0 {
			if log != nil {
				log.Warn("tello: log record length exceeds one byte, aborting decode")
			}
			break
		}
		if pos+recLen > len(payload) || recLen <= 0 {
			break
		}
		recType := le16(payload, pos+4)
		xorKey := payload[pos+6]

		if recLen > logRecordHdrLen {
			body := xorBytes(payload[pos+logRecordHdrLen:pos+recLen], xorKey)
			switch recType {
			case logRecNewMVO:
				if mvo := decodeMVOBody(body); mvo != nil {
					out.MVO = mvo
				}
			case logRecIMU:
				if imu := decodeIMUBody(body); imu != nil {
					out.IMU = imu
				}
			}
		}
		pos += recLen
	}
	return out
}

// decodeMVOBody decodes a NewMVO record body (offsets relative to the
// body, i.e. after the 7-byte record header). Velocity z is stored
// negated by the drone. Each velocity axis is only valid when its own
// flags bit (0x01/0x02/0x04 at offset 76) is set; position likewise only
// when all three position bits (0x10/0x20/0x40) are set. Without a
// flags byte at all (a short body), nothing is reported valid.
func decodeMVOBody(body []byte) *MVOData {
	if len(body) < 8 {
		return nil
	}
	mvo := &MVOData{}
	if len(body) >= 77 {
		flags := body[76]
		if flags&0x01 != 0 {
			mvo.HasVelocityX = true
			mvo.VelocityX = leI16(body, 2)
		}
		if flags&0x02 != 0 {
			mvo.HasVelocityY = true
			mvo.VelocityY = leI16(body, 4)
		}
		if flags&0x04 != 0 {
			mvo.HasVelocityZ = true
			mvo.VelocityZ = -leI16(body, 6)
		}
		if flags&0x10 != 0 && flags&0x20 != 0 && flags&0x40 != 0 && len(body) >= 20 {
			mvo.HasPosition = true
			mvo.PositionY = bytesToFloat32(body[8:12])
			mvo.PositionX = bytesToFloat32(body[12:16])
			mvo.PositionZ = bytesToFloat32(body[16:20])
		}
	}
	return mvo
}

// decodeIMUBody decodes an IMU record body: a (w,x,y,z) quaternion at
// offsets 48/52/56/60, converted to Euler angles, and a temperature at
// offset 106 (hundredths of a degree).
func decodeIMUBody(body []byte) *IMUData {
	if len(body) < 108 {
		return nil
	}
	w := float64(bytesToFloat32(body[48:52]))
	x := float64(bytesToFloat32(body[52:56]))
	y := float64(bytesToFloat32(body[56:60]))
	z := float64(bytesToFloat32(body[60:64]))
	roll, pitch, yaw := quatToEulerDeg(w, x, y, z)
	temp := leI16(body, 106) / 100
	return &IMUData{Roll: roll, Pitch: pitch, Yaw: yaw, Temperature: temp}
}
