// tello.go

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
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// UpdateData is the event envelope published to a Controller's subscriber
// channel. Exactly one field is populated per message.
type UpdateData struct {
	Flight *FlightData
	Wifi   *WifiData
	Light  *LightData
	Log    *LogData
}

// Controller holds the state of one connection to a Tello drone: the two
// UDP sockets, the process-wide cells named in spec §5 (connected flag,
// sequence counter, flying flag, stick vector, pending-files map), and
// the channels it publishes telemetry and video on.
type Controller struct {
	cfg Config
	log *logrus.Logger

	ctrlConn  *net.UDPConn
	videoConn *net.UDPConn

	connected atomic.Bool
	sequence  atomic.Uint32 // wraps at 16 bits; see nextSequence

	flyingMu sync.RWMutex
	flying   bool

	stickMu  sync.RWMutex
	stickVec stick

	videoOnMu sync.RWMutex
	videoOn   bool

	filesMu sync.RWMutex
	files   map[uint16]*fileInternal

	updates   chan UpdateData
	videoChan chan []byte

	ctrlDumper  Dumper
	videoDumper Dumper

	picsDir string

	autopilot autopilot
}

// NewController builds a Controller from cfg. It does not open any
// sockets or start any goroutines; call Connect (or ConnectVideo) for
// that, then Run to start the four concurrency-harness tasks.
func NewController(cfg Config, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		cfg:       cfg,
		log:       log,
		files:     make(map[uint16]*fileInternal),
		updates:   make(chan UpdateData, 16),
		videoChan: make(chan []byte, 100),
		picsDir:   cfg.PicsDir,
	}
}

// Updates returns the channel UpdateData events are published on.
func (c *Controller) Updates() <-chan UpdateData { return c.updates }

// VideoFrames returns the channel video payload bytes are published on.
func (c *Controller) VideoFrames() <-chan []byte { return c.videoChan }

// SetDumpers installs optional raw-packet/video observers. Either may be
// nil to disable dumping on that path.
func (c *Controller) SetDumpers(ctrlDumper, videoDumper Dumper) {
	c.ctrlDumper = ctrlDumper
	c.videoDumper = videoDumper
}

// nextSequence returns the next monotonically increasing 16-bit sequence
// number, wrapping back to 0. Stick updates and SPS/PPS queries bypass
// this and always use sequence 0, per protocol convention.
func (c *Controller) nextSequence() uint16 {
	return uint16(c.sequence.Add(1))
}

// IsConnected reflects the connection-ack flag set by the control
// receiver loop.
func (c *Controller) IsConnected() bool { return c.connected.Load() }

// Flying reflects the flying flag last reported by msgFlightStatus.
func (c *Controller) Flying() bool {
	c.flyingMu.RLock()
	defer c.flyingMu.RUnlock()
	return c.flying
}

func (c *Controller) setFlying(f bool) {
	c.flyingMu.Lock()
	c.flying = f
	c.flyingMu.Unlock()
}

// Connect dials the control socket and sends the connect frame. It does
// not block waiting for the drone's acknowledgement -- call IsConnected
// (or watch for it to flip) once Run's control-receiver task is going.
func (c *Controller) Connect() error {
	droneAddr, err := net.ResolveUDPAddr("udp", c.cfg.TelloAddr+":"+strconv.Itoa(c.cfg.CtrlPort))
	if err != nil {
		return fmt.Errorf("tello: cannot resolve drone address: %w", err)
	}
	localAddr, err := net.ResolveUDPAddr("udp", ":"+strconv.Itoa(c.cfg.LocalPort))
	if err != nil {
		return fmt.Errorf("tello: cannot resolve local address: %w", err)
	}
	conn, err := net.DialUDP("udp", localAddr, droneAddr)
	if err != nil {
		return fmt.Errorf("tello: cannot dial control socket: %w", err)
	}
	c.ctrlConn = conn

	if _, err := c.ctrlConn.Write(connectFrame(uint16(c.cfg.VideoPort))); err != nil {
		c.log.WithError(err).Warn("tello: failed to send connect request")
	}
	return nil
}

// ConnectVideo opens the video socket and starts draining it via Run's
// video-receiver task. Must be called after Connect.
func (c *Controller) ConnectVideo() error {
	droneAddr, err := net.ResolveUDPAddr("udp", ":"+strconv.Itoa(c.cfg.VideoPort))
	if err != nil {
		return fmt.Errorf("tello: cannot resolve video address: %w", err)
	}
	conn, err := net.ListenUDP("udp", droneAddr)
	if err != nil {
		return fmt.Errorf("tello: cannot open video socket: %w", err)
	}
	c.videoConn = conn
	return nil
}

// ToggleVideo flips the video-enabled flag the SPS/PPS poller task reads.
func (c *Controller) ToggleVideo() bool {
	c.videoOnMu.Lock()
	defer c.videoOnMu.Unlock()
	c.videoOn = !c.videoOn
	return c.videoOn
}

func (c *Controller) videoEnabled() bool {
	c.videoOnMu.RLock()
	defer c.videoOnMu.RUnlock()
	return c.videoOn
}

func (c *Controller) publish(u UpdateData) {
	select {
	case c.updates <- u:
	default:
		c.log.Warn("tello: update subscriber channel full, dropping event")
	}
}

func (c *Controller) sendCommand(buff []byte) {
	if _, err := c.ctrlConn.Write(buff); err != nil {
		c.log.WithError(err).Warn("tello: failed to send command")
	}
}
