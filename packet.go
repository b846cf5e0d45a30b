// packet.go

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

	"github.com/sirupsen/logrus"
)

const msgHdr = 0xcc // 204

// packet is our representation of the messages passed to/from the Tello.
type packet struct {
	header        byte
	size13        uint16
	crc8          byte
	fromDrone     bool // the following 4 fields are encoded in a single byte in the raw packet
	toDrone       bool
	packetType    uint8 // 3-bit
	packetSubtype uint8 // 3-bit
	messageID     uint16
	sequence      uint16
	payload       []byte
	crc16         uint16
}

const minPktSize = 11 // smallest possible raw packet

// Tello packet types; 3 and 7 are unused by the drone.
const (
	ptExtended = 0
	ptGet      = 1
	ptData1    = 2
	ptData2    = 4
	ptSet      = 5
	ptFlip     = 6
)

// newPacket builds a to-drone packet with a zeroed payload of the given
// length, ready for a command builder to populate.
func newPacket(packetType uint8, messageID, sequence uint16, payloadLen int) (pkt packet) {
	pkt.header = msgHdr
	pkt.toDrone = true
	pkt.packetType = packetType
	pkt.messageID = messageID
	pkt.sequence = sequence
	if payloadLen > 0 {
		pkt.payload = make([]byte, payloadLen)
	}
	return pkt
}

// decodePacket parses a raw buffer into a packet. It returns an error if
// the buffer is too short to be a valid frame; a CRC mismatch is not an
// error here, it is reported via crcOK so the caller can log and keep the
// (possibly corrupted) packet rather than discard it silently.
func decodePacket(buff []byte, log *logrus.Logger) (pkt packet, crcOK bool, err error) {
	if len(buff) < minPktSize {
		return pkt, false, fmt.Errorf("tello: buffer of %d bytes shorter than minimum frame size %d", len(buff), minPktSize)
	}
	pkt.header = buff[0]
	pkt.size13 = le16(buff, 1) >> 3
	pkt.crc8 = buff[3]
	if int(pkt.size13) > len(buff) {
		return pkt, false, fmt.Errorf("tello: encoded size %d exceeds buffer length %d", pkt.size13, len(buff))
	}
	pkt.fromDrone = buff[4]&0x80 != 0
	pkt.toDrone = buff[4]&0x40 != 0
	pkt.packetType = (buff[4] >> 3) & 0x07
	pkt.packetSubtype = buff[4] & 0x07
	pkt.messageID = le16(buff, 5)
	pkt.sequence = le16(buff, 7)

	payloadSize := int(pkt.size13) - minPktSize
	if payloadSize > 0 {
		pkt.payload = make([]byte, payloadSize)
		copy(pkt.payload, buff[9:9+payloadSize])
	}
	pkt.crc16 = le16(buff, int(pkt.size13)-2)

	crcOK = true
	if calculateCRC8(buff[0:3]) != pkt.crc8 {
		crcOK = false
		if log != nil {
			log.Warnf("tello: CRC-8 mismatch decoding message 0x%04x", pkt.messageID)
		}
	}
	if calculateCRC16(buff[0:int(pkt.size13)-2]) != pkt.crc16 {
		crcOK = false
		if log != nil {
			log.Warnf("tello: CRC-16 mismatch decoding message 0x%04x", pkt.messageID)
		}
	}
	return pkt, crcOK, nil
}

// encodePacket lays out pkt into a raw buffer, computing both CRCs.
func encodePacket(pkt packet) (buff []byte) {
	payloadSize := len(pkt.payload)
	packetSize := minPktSize + payloadSize
	buff = make([]byte, packetSize)

	buff[0] = pkt.header
	buff[1] = byte(packetSize << 3)
	buff[2] = byte(packetSize >> 5)
	buff[3] = calculateCRC8(buff[0:3])
	buff[4] = pkt.packetSubtype + (pkt.packetType << 3)
	if pkt.toDrone {
		buff[4] |= 0x40
	}
	if pkt.fromDrone {
		buff[4] |= 0x80
	}
	buff[5] = byte(pkt.messageID)
	buff[6] = byte(pkt.messageID >> 8)
	buff[7] = byte(pkt.sequence)
	buff[8] = byte(pkt.sequence >> 8)

	copy(buff[9:9+payloadSize], pkt.payload)

	crc16 := calculateCRC16(buff[0 : 9+payloadSize])
	buff[9+payloadSize] = byte(crc16)
	buff[10+payloadSize] = byte(crc16 >> 8)

	return buff
}
