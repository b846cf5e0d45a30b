// stick.go

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

import (
	"context"
	"math"
	"time"
)

const (
	stickRawMin = 364
	stickRawMax = 1684

	stickSendHz     = 20
	stickSendPeriod = time.Second / stickSendHz
)

// stick holds the four axis values of the control surface, each in
// [-1.0, +1.0], plus the sports-mode flag. Mutated by the high-level
// command surface, read by the stick-sender loop.
type stick struct {
	rx, ry, lx, ly float64
	sportsMode     bool
}

// jsFloatToRaw maps an axis value in [-1, +1] to the drone's raw stick
// range [stickRawMin, stickRawMax]. This is the identity-extension point
// spec.md calls js_int16_to_tello: left as an explicit, separately named
// step so a future firmware's different raw range is a one-line change.
func jsFloatToRaw(v float64) uint16 {
	v = clampF64(v, -1, 1)
	raw := 0.5 * (stickRawMin*(1-v) + stickRawMax*(1+v))
	return uint16(math.Round(clampF64(raw, stickRawMin, stickRawMax)))
}

// encodeStickUpdate packs the four raw axis values plus sports-mode and a
// wall-clock timestamp into the 11-byte stick-update payload: a 45-bit
// packed value (rx bits 0-10, ry bits 11-21, ly bits 22-32, lx bits
// 33-43, sports-mode bit 44) across 6 bytes, followed by hour/minute/
// second and the sub-second offset as 2-byte LE microseconds masked to
// 16 bits.
func encodeStickUpdate(st stick, now time.Time) []byte {
	rx := uint64(jsFloatToRaw(st.rx)) & 0x7ff
	ry := uint64(jsFloatToRaw(st.ry)) & 0x7ff
	ly := uint64(jsFloatToRaw(st.ly)) & 0x7ff
	lx := uint64(jsFloatToRaw(st.lx)) & 0x7ff

	packed := rx | ry<<11 | ly<<22 | lx<<33
	if st.sportsMode {
		packed |= 1 << 44
	}

	payload := make([]byte, 11)
	for i := 0; i < 6; i++ {
		payload[i] = byte(packed >> (8 * i))
	}
	payload[6] = byte(now.Hour())
	payload[7] = byte(now.Minute())
	payload[8] = byte(now.Second())
	us := uint16(now.Nanosecond() / 1000)
	payload[9] = byte(us)
	payload[10] = byte(us >> 8)
	return payload
}

// setStickFrame builds the full framed stick-update command. Sequence is
// always zero for this message, per protocol convention.
func setStickFrame(st stick, now time.Time) []byte {
	pkt := newPacket(ptData2, msgSetStick, 0, 11)
	copy(pkt.payload, encodeStickUpdate(st, now))
	return encodePacket(pkt)
}

// stickSenderLoop runs at 20Hz, sampling the controller's stick vector and
// sending a stick-update frame only while flying. It returns when ctx is
// cancelled. Idle iterations still sleep the remainder of the tick so the
// period never exceeds roughly stickSendPeriod.
func (c *Controller) stickSenderLoop(ctx context.Context) error {
	ticker := time.NewTicker(stickSendPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if !c.Flying() {
			continue
		}

		c.stickMu.RLock()
		st := c.stickVec
		c.stickMu.RUnlock()

		buff := setStickFrame(st, time.Now())
		if _, err := c.ctrlConn.Write(buff); err != nil {
			c.log.WithError(err).Warn("tello: failed to send stick update")
		}
	}
}
