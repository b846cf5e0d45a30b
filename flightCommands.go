// flightCommands.go

// This file contains Tello flight command API except for stick control.

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

// The public command surface is fire-and-forget: none of these return
// errors. A failed send is logged by sendCommand and the caller stays
// responsive.

// TakeOff sends a normal takeoff request to the drone.
func (c *Controller) TakeOff() {
	c.sendCommand(doTakeoff(c.nextSequence()))
}

// ThrowTakeOff initiates a 'throw and go' launch.
func (c *Controller) ThrowTakeOff() {
	c.sendCommand(doThrowTakeoff(c.nextSequence()))
}

// Land sends a normal land request.
func (c *Controller) Land() {
	c.sendCommand(doLand(c.nextSequence()))
}

// StopLanding cancels an in-progress land command.
func (c *Controller) StopLanding() {
	c.sendCommand(cancelLand(c.nextSequence()))
}

// PalmLand initiates a palm landing.
func (c *Controller) PalmLand() {
	c.sendCommand(palmLand(c.nextSequence()))
}

// Bounce toggles the drone's bouncing mode.
func (c *Controller) Bounce(on bool) {
	c.sendCommand(bounce(c.nextSequence(), on))
}

// Flip sends a flip flight command in the given direction.
func (c *Controller) Flip(dir FlipType) {
	c.sendCommand(doFlip(c.nextSequence(), dir))
}

// StartSmartVideo begins a preprogrammed 'smart video' flight action.
func (c *Controller) StartSmartVideo(cmd SvCmd) {
	c.sendCommand(smartVideo(c.nextSequence(), cmd, true))
}

// StopSmartVideo ends a preprogrammed 'smart video' flight action.
func (c *Controller) StopSmartVideo(cmd SvCmd) {
	c.sendCommand(smartVideo(c.nextSequence(), cmd, false))
}

// SetVideoBitrate asks the drone to use the given bitrate for encoding.
func (c *Controller) SetVideoBitrate(vbr VBR) {
	c.sendCommand(setVideoBitrate(c.nextSequence(), vbr))
}

// SwitchPicVideo toggles between normal and wide picture/video mode.
func (c *Controller) SwitchPicVideo(wide bool) {
	c.sendCommand(switchPicVideo(c.nextSequence(), wide))
}

// *** The following are 'macro' commands, here purely to make the
// *** Controller easier to drive in common cases. Each updates exactly
// *** one axis of the stick vector; amt is clamped to [-1, +1] by
// *** jsFloatToRaw at send time.

// Hover zeroes the stick vector, halting all motion - useful as a panic action.
func (c *Controller) Hover() {
	c.stickMu.Lock()
	c.stickVec = stick{}
	c.stickMu.Unlock()
}

// Forward tells the drone to start moving forward at amt in [0, 1].
func (c *Controller) Forward(amt float64) { c.setAxis(func(s *stick) { s.ry = amt }) }

// Backward tells the drone to start moving backward at amt in [0, 1].
func (c *Controller) Backward(amt float64) { c.setAxis(func(s *stick) { s.ry = -amt }) }

// Left tells the drone to start moving left at amt in [0, 1].
func (c *Controller) Left(amt float64) { c.setAxis(func(s *stick) { s.rx = -amt }) }

// Right tells the drone to start moving right at amt in [0, 1].
func (c *Controller) Right(amt float64) { c.setAxis(func(s *stick) { s.rx = amt }) }

// Up tells the drone to start climbing at amt in [0, 1].
func (c *Controller) Up(amt float64) { c.setAxis(func(s *stick) { s.ly = amt }) }

// Down tells the drone to start descending at amt in [0, 1].
func (c *Controller) Down(amt float64) { c.setAxis(func(s *stick) { s.ly = -amt }) }

// Clockwise tells the drone to start rotating clockwise at amt in [0, 1].
func (c *Controller) Clockwise(amt float64) { c.setAxis(func(s *stick) { s.lx = amt }) }

// TurnRight is an alias for Clockwise.
func (c *Controller) TurnRight(amt float64) { c.Clockwise(amt) }

// Anticlockwise tells the drone to start rotating anticlockwise at amt in [0, 1].
func (c *Controller) Anticlockwise(amt float64) { c.setAxis(func(s *stick) { s.lx = -amt }) }

// TurnLeft is an alias for Anticlockwise.
func (c *Controller) TurnLeft(amt float64) { c.Anticlockwise(amt) }

// CounterClockwise is an alias for Anticlockwise.
func (c *Controller) CounterClockwise(amt float64) { c.Anticlockwise(amt) }

// SetSportsMode sets the sports (fast) mode of flight.
func (c *Controller) SetSportsMode(sports bool) {
	c.stickMu.Lock()
	c.stickVec.sportsMode = sports
	c.stickMu.Unlock()
}

// SetFastMode sets the 'fast' or 'sports' mode of flight.
func (c *Controller) SetFastMode() { c.SetSportsMode(true) }

// SetSlowMode sets the 'slow' or 'normal' mode of flight.
func (c *Controller) SetSlowMode() { c.SetSportsMode(false) }

func (c *Controller) setAxis(mutate func(*stick)) {
	c.stickMu.Lock()
	mutate(&c.stickVec)
	c.stickMu.Unlock()
}

// Flips...

// BackFlip - flip backwards.
func (c *Controller) BackFlip() { c.Flip(FlipBackward) }

// BackLeftFlip - flip backwards and to the left.
func (c *Controller) BackLeftFlip() { c.Flip(FlipBackwardLeft) }

// BackRightFlip - flip backwards and to the right.
func (c *Controller) BackRightFlip() { c.Flip(FlipBackwardRight) }

// ForwardFlip - flip forwards.
func (c *Controller) ForwardFlip() { c.Flip(FlipForward) }

// ForwardRightFlip - flip forwards and to the right.
func (c *Controller) ForwardRightFlip() { c.Flip(FlipForwardRight) }

// ForwardLeftFlip - flip forward and to the left.
func (c *Controller) ForwardLeftFlip() { c.Flip(FlipForwardLeft) }

// LeftFlip - flip to the left.
func (c *Controller) LeftFlip() { c.Flip(FlipLeft) }

// RightFlip - flip to the right.
func (c *Controller) RightFlip() { c.Flip(FlipRight) }

// *** End of 'macro' commands ***
