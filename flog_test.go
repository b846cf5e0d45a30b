// flog_test.go

package tello

import (
	"math"
	"testing"
)

func float32LEBytes(v float32) []byte {
	bits := math.Float32bits(v)
	return []byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}

// buildLogRecord assembles one XOR-obfuscated log record: separator,
// 2-byte length (of the whole record, including the 7-byte header),
// unused id byte, record type, xor key, then the XORed body.
func buildLogRecord(recType uint16, xorKey byte, body []byte) []byte {
	rec := make([]byte, logRecordHdrLen+len(body))
	rec[0] = logRecordSeparator
	rec[1] = byte(len(rec))
	rec[2] = 0
	rec[3] = 0
	rec[4] = byte(recType)
	rec[5] = byte(recType >> 8)
	rec[6] = xorKey
	copy(rec[7:], xorBytes(body, xorKey))
	return rec
}

func TestDecodeIMUBody(t *testing.T) {
	// a pure +90deg roll quaternion (w, x, y, z) = (cos45, sin45, 0, 0)
	const c = 0.70710678
	body := make([]byte, 108)
	copy(body[48:52], float32LEBytes(c))
	copy(body[52:56], float32LEBytes(c))
	copy(body[56:60], float32LEBytes(0))
	copy(body[60:64], float32LEBytes(0))
	body[106] = 0x50 // 52 * 100 = 5200 = 0x1450 as int16 LE
	body[107] = 0x14

	imu := decodeIMUBody(body)
	if imu == nil {
		t.Fatal("decodeIMUBody returned nil")
	}
	if math.Abs(imu.Roll-90) > 0.1 {
		t.Errorf("Roll = %f, want ~90", imu.Roll)
	}
	if math.Abs(imu.Pitch) > 0.1 {
		t.Errorf("Pitch = %f, want ~0", imu.Pitch)
	}
	if math.Abs(imu.Yaw) > 0.1 {
		t.Errorf("Yaw = %f, want ~0", imu.Yaw)
	}
	if imu.Temperature != 52 {
		t.Errorf("Temperature = %d, want 52", imu.Temperature)
	}
}

func TestDecodeMVOBody(t *testing.T) {
	body := make([]byte, 77)
	body[2], body[3] = 10, 0 // VelocityX raw = 10
	body[4], body[5] = 7, 0  // VelocityY raw = 7, but its flag bit is left unset
	body[6], body[7] = 5, 0  // VelocityZ raw = 5, stored negated -> -5
	// X and Z velocity valid, Y velocity not; position fully valid.
	body[76] = 0x01 | 0x04 | 0x10 | 0x20 | 0x40
	copy(body[8:12], float32LEBytes(1.5))  // PositionY
	copy(body[12:16], float32LEBytes(2.5)) // PositionX
	copy(body[16:20], float32LEBytes(-0.5))

	mvo := decodeMVOBody(body)
	if mvo == nil {
		t.Fatal("decodeMVOBody returned nil")
	}
	if !mvo.HasVelocityX || mvo.VelocityX != 10 {
		t.Errorf("VelocityX = (valid=%v, %d), want (true, 10)", mvo.HasVelocityX, mvo.VelocityX)
	}
	if mvo.HasVelocityY {
		t.Error("expected HasVelocityY false since its flag bit was unset")
	}
	if !mvo.HasVelocityZ || mvo.VelocityZ != -5 {
		t.Errorf("VelocityZ = (valid=%v, %d), want (true, -5)", mvo.HasVelocityZ, mvo.VelocityZ)
	}
	if !mvo.HasPosition {
		t.Fatal("expected HasPosition true")
	}
	if mvo.PositionX != 2.5 || mvo.PositionY != 1.5 || mvo.PositionZ != -0.5 {
		t.Errorf("position = (%f,%f,%f), want (2.5,1.5,-0.5)", mvo.PositionX, mvo.PositionY, mvo.PositionZ)
	}
}

func TestDecodeLogDataSkipsUnknownRecords(t *testing.T) {
	unknown := buildLogRecord(0x9999, 0x00, []byte{1, 2, 3})
	imuBody := make([]byte, 108)
	copy(imuBody[48:52], float32LEBytes(1)) // identity quaternion
	imuRec := buildLogRecord(logRecIMU, 0x42, imuBody)

	payload := make([]byte, 1+len(unknown)+len(imuRec)+6)
	payload[0] = 0 // leading byte before the first record, per decodeLogData's pos=1 start
	copy(payload[1:], unknown)
	copy(payload[1+len(unknown):], imuRec)

	ld := decodeLogData(payload, nil)
	if ld.IMU == nil {
		t.Fatal("expected IMU record to be decoded despite a preceding unknown record")
	}
	if ld.MVO != nil {
		t.Error("did not expect an MVO record")
	}
}
