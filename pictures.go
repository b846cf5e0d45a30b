// pictures.go - photo transfer and JPEG reassembly

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
	"os"
	"path/filepath"
)

// fileType identifies the kind of file being transferred. JPEG snapshots
// are the only kind the drone currently sends.
type fileType uint8

const ftJPEG fileType = 0x01

// pieceChunkCount is the number of chunks that make up one piece; the
// chunk-number-mod-8 windowing below depends on this being 8.
const pieceChunkCount = 8

type fileChunk struct {
	data []byte
}

// filePiece is an 8-chunk window of one file transfer. Chunks may arrive
// out of order within a piece; chunkNum mod pieceChunkCount selects the
// slot, so a duplicate chunk for an already-filled slot is ignored rather
// than appended or stored again.
type filePiece struct {
	chunks    [pieceChunkCount]*fileChunk
	numChunks int
}

// fileInternal tracks one in-progress (or completed) inbound file
// transfer, keyed by fileID in Controller.files.
type fileInternal struct {
	fileID       uint16
	fileType     fileType
	expectedSize uint32
	accumSize    uint32
	pieces       []*filePiece
}

func (fi *fileInternal) complete() bool {
	return fi.expectedSize > 0 && fi.accumSize >= fi.expectedSize
}

// bytes concatenates every chunk of every piece, in order, into one
// contiguous buffer. Pieces are read in piece-number order; within a piece
// chunks are read out by slot (0..7), which is also transmission order
// since a chunk's slot is chunkNum mod 8 and chunkNum increases
// monotonically across the whole transfer.
func (fi *fileInternal) bytes() []byte {
	var out []byte
	for _, p := range fi.pieces {
		for _, c := range p.chunks {
			if c != nil {
				out = append(out, c.data...)
			}
		}
	}
	return out
}

// TakePicture requests the drone to take a JPEG snapshot. The shutter
// process takes a little while and the video feed may freeze briefly;
// the drone does not always honour the request. The resulting file
// arrives asynchronously via the control-receiver loop and is written
// under Config.PicsDir once fully reassembled.
func (c *Controller) TakePicture() {
	c.sendCommand(doTakePicture(c.nextSequence()))
}

// handleFileSize processes a msgFileSize notification: file-type (1
// byte), expected size (4 bytes LE), file id (2 bytes LE). Only JPEG
// transfers are accepted. Acknowledges immediately so the drone starts
// sending chunk data.
func (c *Controller) handleFileSize(payload []byte) {
	if len(payload) < 7 {
		return
	}
	ft := fileType(payload[0])
	if ft != ftJPEG {
		c.log.Warnf("tello: ignoring file transfer of unsupported type 0x%02x", ft)
		return
	}
	expectedSize := le32(payload, 1)
	fileID := le16(payload, 5)

	c.filesMu.Lock()
	c.files[fileID] = &fileInternal{
		fileID:       fileID,
		fileType:     ft,
		expectedSize: expectedSize,
	}
	c.filesMu.Unlock()

	c.sendCommand(ackFileSize(c.nextSequence()))
}

// handleFileData processes one msgFileData chunk: file-id (2 bytes LE),
// piece-num (4 bytes LE), chunk-num (4 bytes LE), chunk-len (2 bytes LE),
// then chunk-len bytes of JPEG data. A chunk's slot within its piece is
// chunkNum mod pieceChunkCount; a piece is complete once all 8 slots are
// filled, acknowledged with ackFilePiece(done=false). The whole transfer
// is complete once accumSize reaches expectedSize, at which point the
// file is acknowledged with ackFilePiece(done=true), fileDone is sent,
// and the reassembled bytes are written to disk.
func (c *Controller) handleFileData(payload []byte) {
	if len(payload) < 12 {
		return
	}
	fileID := le16(payload, 0)
	pieceNum := le32(payload, 2)
	chunkNum := le32(payload, 6)
	chunkLen := le16(payload, 10)
	dataOff := 12
	if dataOff+int(chunkLen) > len(payload) {
		return
	}
	data := payload[dataOff : dataOff+int(chunkLen)]

	c.filesMu.Lock()
	fi, ok := c.files[fileID]
	if !ok {
		c.filesMu.Unlock()
		return
	}
	for uint32(len(fi.pieces)) <= pieceNum {
		fi.pieces = append(fi.pieces, &filePiece{})
	}
	piece := fi.pieces[pieceNum]
	slot := int(chunkNum % pieceChunkCount)
	if piece.chunks[slot] == nil {
		piece.chunks[slot] = &fileChunk{data: append([]byte(nil), data...)}
		piece.numChunks++
		fi.accumSize += uint32(len(data))
	}
	pieceDone := piece.numChunks >= pieceChunkCount
	fileComplete := fi.complete()
	var finishedBytes []byte
	if fileComplete {
		finishedBytes = fi.bytes()
		delete(c.files, fileID)
	}
	c.filesMu.Unlock()

	if fileComplete {
		c.sendCommand(ackFilePiece(c.nextSequence(), true, fileID, pieceNum))
		c.sendCommand(fileDone(c.nextSequence(), fileID, uint32(len(finishedBytes))))
		c.savePicture(fileID, finishedBytes)
	} else if pieceDone {
		c.sendCommand(ackFilePiece(c.nextSequence(), false, fileID, pieceNum))
	}
}

// savePicture writes a reassembled JPEG under Config.PicsDir as
// pic_<4-digit-id>.jpg, avoiding a collision with any previous file by
// probing forward from fileID itself. An empty buffer is logged and
// skipped rather than written as a zero-byte file.
func (c *Controller) savePicture(fileID uint16, data []byte) {
	if len(data) == 0 {
		c.log.Warnf("tello: file %d completed with no data, not saving", fileID)
		return
	}
	if err := os.MkdirAll(c.picsDir, 0755); err != nil {
		c.log.WithError(err).Warn("tello: cannot create pictures directory")
		return
	}
	const maxAttempts = 10000
	for i := 0; i < maxAttempts; i++ {
		path := filepath.Join(c.picsDir, fmt.Sprintf("pic_%04d.jpg", fileID+uint16(i)))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			if os.IsExist(err) {
				continue
			}
			c.log.WithError(err).Warnf("tello: cannot save picture to %s", path)
			return
		}
		_, werr := f.Write(data)
		cerr := f.Close()
		if werr != nil {
			c.log.WithError(werr).Warnf("tello: error writing picture to %s", path)
		} else if cerr != nil {
			c.log.WithError(cerr).Warnf("tello: error closing picture file %s", path)
		}
		return
	}
	c.log.Warnf("tello: exhausted %d filename attempts saving picture %d", maxAttempts, fileID)
}
