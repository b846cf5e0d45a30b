// control.go - control channel receiver, packet dispatch and task orchestration

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
	"bytes"
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const controlReadBufSize = 4096

var connAckMagic = []byte("conn_ack:")

// Run starts the concurrency harness's four tasks -- control receiver,
// video receiver, stick sender, SPS/PPS poller -- and blocks until ctx is
// cancelled or one of them returns a non-nil error, at which point the
// others are cancelled too. The video tasks are only started if
// ConnectVideo has been called.
func (c *Controller) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return c.controlReceiverLoop(gctx) })
	g.Go(func() error { return c.stickSenderLoop(gctx) })
	if c.videoConn != nil {
		g.Go(func() error { return c.videoReceiverLoop(gctx) })
		g.Go(func() error { return c.spsppsPollerLoop(gctx) })
	}

	return g.Wait()
}

// controlReceiverLoop reads and dispatches every datagram on the control
// socket. The very first bytes from the drone are the plaintext
// "conn_ack:..." handshake reply, not a framed packet; once that has been
// seen the loop switches to framed decoding for the rest of the session.
func (c *Controller) controlReceiverLoop(ctx context.Context) error {
	buf := make([]byte, controlReadBufSize)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := c.ctrlConn.SetReadDeadline(time.Now().Add(200 * time.Millisecond)); err != nil {
			c.log.WithError(err).Warn("tello: failed to set control read deadline")
		}
		n, err := c.ctrlConn.Read(buf)
		if err != nil {
			if isTimeout(err) {
				continue
			}
			c.log.WithError(err).Warn("tello: control read error")
			continue
		}
		if n == 0 {
			continue
		}
		raw := buf[:n]

		if c.ctrlDumper != nil {
			c.ctrlDumper.Dump(append([]byte(nil), raw...))
		}

		if !c.IsConnected() {
			if bytes.Contains(raw, connAckMagic) {
				c.connected.Store(true)
				c.log.Info("tello: connection acknowledged")
			} else {
				c.log.Warnf("tello: unexpected pre-handshake response (%d bytes)", n)
			}
			continue
		}

		if raw[0] != msgHdr {
			c.log.Warnf("tello: unexpected leading byte 0x%02x on control channel", raw[0])
			continue
		}

		pkt, crcOK, err := decodePacket(raw, c.log)
		if err != nil {
			c.log.WithError(err).Warn("tello: failed to decode control packet")
			continue
		}
		if !crcOK {
			c.log.Warnf("tello: dropping message 0x%04x with bad CRC", pkt.messageID)
			continue
		}

		c.dispatch(pkt)
	}
}

// dispatch routes one decoded packet to its telemetry decoder, the file
// reassembler, or an auto-reply, and publishes any resulting UpdateData.
func (c *Controller) dispatch(pkt packet) {
	switch pkt.messageID {
	case msgFlightStatus:
		fd := decodeFlightData(pkt.payload)
		c.setFlying(fd.Flying)
		c.publish(UpdateData{Flight: &fd})

	case msgWifiStrength:
		wd := decodeWifiData(pkt.payload)
		c.publish(UpdateData{Wifi: &wd})

	case msgLightStrength:
		ld := decodeLightData(pkt.payload, time.Now().UnixMilli())
		c.publish(UpdateData{Light: &ld})

	case msgLogHeader:
		if len(pkt.payload) >= 3 {
			var id [2]byte
			id[0], id[1] = pkt.payload[1], pkt.payload[2]
			c.sendCommand(ackLogHeader(c.nextSequence(), id))
		}

	case msgLogData:
		ld := decodeLogData(pkt.payload, c.log)
		if ld.MVO != nil || ld.IMU != nil {
			c.publish(UpdateData{Log: &ld})
		}

	case msgFileSize:
		c.handleFileSize(pkt.payload)

	case msgFileData:
		c.handleFileData(pkt.payload)

	case msgSetDateTime:
		now := time.Now()
		c.sendCommand(setDateTime(c.nextSequence(), now.Year(), int(now.Month()), now.Day(),
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond()/int(time.Millisecond)))

	default:
		c.log.Debugf("tello: unhandled message 0x%04x (%d byte payload)", pkt.messageID, len(pkt.payload))
	}
}
