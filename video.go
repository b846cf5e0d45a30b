// video.go - video channel receiver and SPS/PPS poller

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
	"fmt"
	"time"
)

const (
	videoReadBufSize  = 2048
	videoMaxStrikes   = 10
	spsppsPollPeriod  = 500 * time.Millisecond
	videoHeaderLength = 2
)

// videoReceiverLoop drains the video socket and publishes each frame's
// payload (the 2-byte header stripped) onto VideoFrames(). Ten
// consecutive read errors are treated as the socket being gone and end
// the task, per the error-handling design's "channel-closed with
// 10-strikes" disposition; any successful read resets the strike count.
func (c *Controller) videoReceiverLoop(ctx context.Context) error {
	strikes := 0
	buf := make([]byte, videoReadBufSize)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := c.videoConn.SetReadDeadline(time.Now().Add(200 * time.Millisecond)); err != nil {
			c.log.WithError(err).Warn("tello: failed to set video read deadline")
		}
		n, err := c.videoConn.Read(buf)
		if err != nil {
			if isTimeout(err) {
				continue
			}
			strikes++
			c.log.WithError(err).Warnf("tello: video read error (strike %d/%d)", strikes, videoMaxStrikes)
			if strikes >= videoMaxStrikes {
				return fmt.Errorf("tello: video receiver giving up after %d consecutive errors: %w", videoMaxStrikes, err)
			}
			continue
		}
		strikes = 0
		if n <= videoHeaderLength {
			continue
		}

		if c.videoDumper != nil {
			c.videoDumper.Dump(buf[videoHeaderLength:n])
		}

		frame := append([]byte(nil), buf[videoHeaderLength:n]...)
		select {
		case c.videoChan <- frame:
		default:
			c.log.Warn("tello: video subscriber channel full, dropping frame")
		}
	}
}

// spsppsPollerLoop asks the drone for its SPS/PPS video parameters every
// spsppsPollPeriod, but only while video is enabled -- the drone only
// answers (and only needs to be asked) once streaming has been toggled
// on via ToggleVideo.
func (c *Controller) spsppsPollerLoop(ctx context.Context) error {
	ticker := time.NewTicker(spsppsPollPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if !c.videoEnabled() {
			continue
		}
		if _, err := c.ctrlConn.Write(querySPSPPS()); err != nil {
			c.log.WithError(err).Warn("tello: failed to query SPS/PPS")
		}
	}
}

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	te, ok := err.(timeouter)
	return ok && te.Timeout()
}
