/*Package tello is a host-side control library for the Ryze Tello consumer
quadcopter, speaking the drone's proprietary binary protocol over Wi-Fi UDP.

Disclaimer

Tello is a registered trademark of Ryze Tech. The author(s) of this package
is/are in no way affiliated with Ryze, DJI, or Intel. The protocol details
implemented here come from observation of packets sent to/from the drone
and from community documentation; they are not an official specification.

Use this package at your own risk. The author(s) is/are in no way
responsible for any damage caused either to or by the drone when using
this software.

Features

The following are implemented:
  * Packet framing with dual CRC-8/CRC-16 checks on every frame
  * Command builders for takeoff/land/flip/bounce/smart-video/etc.
  * Stick-based flight control, driven by a 20Hz sender loop
  * Macro-level flight control, eg. Forward(), Up(), TakeOff()
  * Autopilot helpers, eg. AutoFlyToHeight(), AutoTurnToYaw()
  * Flight, wifi and light telemetry decoding
  * Flight-log decoding (XOR-obfuscated IMU/MVO records, quaternion to
    Euler conversion)
  * Multi-chunk photo transfer reassembly and JPEG saving
  * Video stream relay (H.264 payloads, SPS/PPS polling)

Concepts

Connection types

The drone exposes two UDP endpoints: a 'control' connection carrying
commands, acks and telemetry, and a 'video' connection carrying the raw
H.264 stream from the forward camera. A Controller must have a control
connection before anything else works; the video connection is optional
and only meaningful once the control connection is running.

Concurrency harness

Once connected, call Run to start the four background tasks (control
receiver, video receiver, stick sender, SPS/PPS poller) under a single
cancellable context.Context. A failure in any one task (or caller
cancellation) stops the others too.

Funcs vs. channels

Single-shot commands (TakeOff, Land, Flip, ...) return immediately and
report nothing back directly; subscribe to Updates() and VideoFrames()
for the telemetry and video streams produced by the control receiver.
*/
package tello
