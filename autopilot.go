// autopilot.go - simple single-axis navigation helpers layered on the stick vector

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
	"errors"
	"sync"
	"time"
)

const (
	autopilotPeriod = 25 * time.Millisecond

	autoPilotSpeedFast = 1.0
	autoPilotSpeedSlow = 0.5

	// AutoHeightLimitDm is the largest target height (positive or
	// negative) AutoFlyToHeight will accept, in decimetres.
	AutoHeightLimitDm = 300
)

// autopilot holds the state of the two single-axis navigation helpers.
// Both are driven by a background goroutine that nudges the stick vector
// each autopilotPeriod tick until the target is reached or cancelled.
type autopilot struct {
	heightMu     sync.RWMutex
	heightActive bool

	yawMu     sync.RWMutex
	yawActive bool
}

// CancelAutoFlyToHeight stops any in-flight AutoFlyToHeight navigation.
// The drone stops moving vertically.
func (c *Controller) CancelAutoFlyToHeight() {
	c.autopilot.heightMu.Lock()
	c.autopilot.heightActive = false
	c.autopilot.heightMu.Unlock()
}

// AutoFlyToHeight starts vertical movement to the given height in
// decimetres (10 means 1m). It returns immediately; a goroutine nudges
// the Up/Down stick axis each tick, reading the latest Height from the
// most recent FlightData update, until the target is reached (or
// CancelAutoFlyToHeight is called). The returned channel is sent exactly
// once, when the navigation ends either way.
func (c *Controller) AutoFlyToHeight(targetDm int16, updates <-chan UpdateData) (done chan bool, err error) {
	if targetDm > AutoHeightLimitDm || targetDm < -AutoHeightLimitDm {
		return nil, errors.New("tello: vertical navigation limit exceeded")
	}

	c.autopilot.heightMu.RLock()
	already := c.autopilot.heightActive
	c.autopilot.heightMu.RUnlock()
	if already {
		return nil, errors.New("tello: already navigating vertically")
	}

	c.autopilot.heightMu.Lock()
	c.autopilot.heightActive = true
	c.autopilot.heightMu.Unlock()

	done = make(chan bool, 1)
	var lastHeight int16

	go func() {
		ticker := time.NewTicker(autopilotPeriod)
		defer ticker.Stop()
		for range ticker.C {
			c.autopilot.heightMu.RLock()
			active := c.autopilot.heightActive
			c.autopilot.heightMu.RUnlock()
			if !active {
				c.setAxis(func(s *stick) { s.ly = 0 })
				done <- true
				return
			}

			select {
			case u := <-updates:
				if u.Flight != nil {
					lastHeight = u.Flight.Height
				}
			default:
			}

			delta := targetDm - lastHeight
			switch {
			case delta > 4:
				c.setAxis(func(s *stick) { s.ly = autoPilotSpeedFast })
			case delta > 0:
				c.setAxis(func(s *stick) { s.ly = autoPilotSpeedSlow })
			case delta < -4:
				c.setAxis(func(s *stick) { s.ly = -autoPilotSpeedFast })
			case delta < 0:
				c.setAxis(func(s *stick) { s.ly = -autoPilotSpeedSlow })
			default:
				c.autopilot.heightMu.Lock()
				c.autopilot.heightActive = false
				c.autopilot.heightMu.Unlock()
			}
		}
	}()

	return done, nil
}

// CancelAutoTurn stops any in-flight AutoTurnToYaw navigation. The drone
// stops rotating.
func (c *Controller) CancelAutoTurn() {
	c.autopilot.yawMu.Lock()
	c.autopilot.yawActive = false
	c.autopilot.yawMu.Unlock()
}

// AutoTurnToYaw starts rotational movement to the given yaw in degrees
// (-180..+180). It returns immediately; a goroutine nudges the
// Clockwise/Anticlockwise stick axis each tick, reading the latest yaw
// from log updates, until the target is reached (or CancelAutoTurn is
// called).
func (c *Controller) AutoTurnToYaw(targetYaw int16, updates <-chan UpdateData) (done chan bool, err error) {
	if targetYaw < -180 || targetYaw > 180 {
		return nil, errors.New("tello: target yaw must be between -180 and +180")
	}
	adjustedTarget := targetYaw
	if targetYaw < 0 {
		adjustedTarget = 360 + targetYaw
	}

	c.autopilot.yawMu.RLock()
	already := c.autopilot.yawActive
	c.autopilot.yawMu.RUnlock()
	if already {
		return nil, errors.New("tello: already navigating rotationally")
	}

	c.autopilot.yawMu.Lock()
	c.autopilot.yawActive = true
	c.autopilot.yawMu.Unlock()

	done = make(chan bool, 1)
	var lastYaw float64

	go func() {
		ticker := time.NewTicker(autopilotPeriod)
		defer ticker.Stop()
		for range ticker.C {
			c.autopilot.yawMu.RLock()
			active := c.autopilot.yawActive
			c.autopilot.yawMu.RUnlock()
			if !active {
				c.setAxis(func(s *stick) { s.lx = 0 })
				done <- true
				return
			}

			select {
			case u := <-updates:
				if u.Log != nil && u.Log.IMU != nil {
					lastYaw = u.Log.IMU.Yaw
				}
			default:
			}

			adjustedCurrent := lastYaw
			if adjustedCurrent < 0 {
				adjustedCurrent = 360 + adjustedCurrent
			}

			delta := float64(adjustedTarget) - adjustedCurrent
			switch {
			case delta > 180:
				delta -= 360
			case delta < -180:
				delta += 360
			}

			switch {
			case delta > 10:
				c.setAxis(func(s *stick) { s.lx = autoPilotSpeedFast })
			case delta > 0:
				c.setAxis(func(s *stick) { s.lx = autoPilotSpeedSlow })
			case delta < -10:
				c.setAxis(func(s *stick) { s.lx = -autoPilotSpeedFast })
			case delta < 0:
				c.setAxis(func(s *stick) { s.lx = -autoPilotSpeedSlow })
			default:
				c.autopilot.yawMu.Lock()
				c.autopilot.yawActive = false
				c.autopilot.yawMu.Unlock()
			}
		}
	}()

	return done, nil
}
