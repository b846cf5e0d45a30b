// pictures_test.go

package tello

import (
	"net"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

// newTestController builds a Controller with a real (loopback) UDP socket
// so sendCommand's Write calls succeed without a live drone, and a
// temporary directory for any saved pictures.
func newTestController(t *testing.T) (*Controller, string) {
	t.Helper()
	conn, err := net.DialUDP("udp", nil, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 9999})
	if err != nil {
		t.Fatalf("dial loopback udp: %v", err)
	}
	dir := t.TempDir()
	log := logrus.New()
	log.SetOutput(os.Stderr)
	c := NewController(Config{PicsDir: dir}, log)
	c.ctrlConn = conn
	c.connected.Store(true)
	return c, dir
}

func TestFileReassemblySinglePiece(t *testing.T) {
	c, dir := newTestController(t)

	const fileID = uint16(7)
	const chunkLen = 100
	const numChunks = 3
	expectedSize := uint32(chunkLen * numChunks)

	sizePayload := make([]byte, 7)
	sizePayload[0] = byte(ftJPEG)
	sizePayload[1] = byte(expectedSize)
	sizePayload[2] = byte(expectedSize >> 8)
	sizePayload[3] = byte(expectedSize >> 16)
	sizePayload[4] = byte(expectedSize >> 24)
	sizePayload[5] = byte(fileID)
	sizePayload[6] = byte(fileID >> 8)
	c.handleFileSize(sizePayload)

	c.filesMu.RLock()
	_, ok := c.files[fileID]
	c.filesMu.RUnlock()
	if !ok {
		t.Fatal("expected a pending file entry after handleFileSize")
	}

	for i := uint32(0); i < numChunks; i++ {
		data := make([]byte, chunkLen)
		for j := range data {
			data[j] = byte(i + 1)
		}
		payload := make([]byte, 12+chunkLen)
		payload[0] = byte(fileID)
		payload[1] = byte(fileID >> 8)
		// pieceNum = 0
		payload[6] = byte(i)
		payload[7] = byte(i >> 8)
		payload[8] = byte(i >> 16)
		payload[9] = byte(i >> 24)
		payload[10] = byte(chunkLen)
		payload[11] = byte(chunkLen >> 8)
		copy(payload[12:], data)
		c.handleFileData(payload)
	}

	c.filesMu.RLock()
	_, stillPending := c.files[fileID]
	c.filesMu.RUnlock()
	if stillPending {
		t.Error("expected the file entry to be removed once the transfer completed")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading pics dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one saved picture, got %d", len(entries))
	}
	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	if err != nil {
		t.Fatalf("reading saved picture: %v", err)
	}
	if uint32(len(data)) != expectedSize {
		t.Errorf("saved picture is %d bytes, want %d", len(data), expectedSize)
	}
}

func TestFileReassemblyIgnoresDuplicateChunk(t *testing.T) {
	c, _ := newTestController(t)
	const fileID = uint16(3)
	const chunkLen = 50
	expectedSize := uint32(chunkLen * 2)

	sizePayload := make([]byte, 7)
	sizePayload[0] = byte(ftJPEG)
	sizePayload[1] = byte(expectedSize)
	sizePayload[5] = byte(fileID)
	c.handleFileSize(sizePayload)

	chunk := func(chunkNum uint32) []byte {
		payload := make([]byte, 12+chunkLen)
		payload[0] = byte(fileID)
		payload[6] = byte(chunkNum)
		payload[10] = byte(chunkLen)
		return payload
	}

	c.handleFileData(chunk(0))
	c.handleFileData(chunk(0)) // duplicate slot, should not double-count

	c.filesMu.RLock()
	fi := c.files[fileID]
	size := fi.accumSize
	c.filesMu.RUnlock()
	if size != chunkLen {
		t.Errorf("accumSize = %d after duplicate chunk, want %d", size, chunkLen)
	}
}
