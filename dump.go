// dump.go

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
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Dumper is the observer interface the core calls with raw buffers before
// parsing them. It is external collaborator plumbing -- the core only
// ever calls Dump, it never reads dumped data back.
type Dumper interface {
	Dump(buff []byte)
}

// fileDumper writes each dumped buffer to its own file under a
// per-session directory, named by a monotonically increasing packet
// number. A failure to create the session directory is returned to the
// caller as an error; a failure to write one packet is logged and
// otherwise ignored.
type fileDumper struct {
	dir      string
	packetNo uint64
	log      *logrus.Logger
}

// newFileDumper creates `<dumpDir>/<name>/dump_comm_<unixSecs>` and
// returns a Dumper writing one file per packet into it.
func newFileDumper(dumpDir, name string, unixSecs int64, log *logrus.Logger) (*fileDumper, error) {
	dir := filepath.Join(dumpDir, name, fmt.Sprintf("dump_comm_%d", unixSecs))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("tello: cannot create dump directory %s: %w", dir, err)
	}
	return &fileDumper{dir: dir, log: log}, nil
}

// NewFileDumper is the exported entry point for callers wiring
// Controller.SetDumpers from a Config.DumpDir: it creates
// `<dumpDir>/<name>/dump_comm_<unixSecs>` (unixSecs taken at call time,
// one session directory per run) and returns a Dumper ready to pass to
// SetDumpers.
func NewFileDumper(dumpDir, name string, log *logrus.Logger) (Dumper, error) {
	d, err := newFileDumper(dumpDir, name, time.Now().Unix(), log)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *fileDumper) Dump(buff []byte) {
	n := atomic.AddUint64(&d.packetNo, 1)
	path := filepath.Join(d.dir, fmt.Sprintf("packet_%d", n))
	if err := os.WriteFile(path, buff, 0644); err != nil && d.log != nil {
		d.log.WithError(err).Warnf("tello: failed to dump packet to %s", path)
	}
}
