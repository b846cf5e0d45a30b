// config.go

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
	"os"
	"strconv"
)

// Config carries the environment-derived settings the core consumes but
// does not itself own: drone address/ports and the directories used by
// the optional dump and picture-saving observers.
type Config struct {
	TelloAddr string
	CtrlPort  int
	LocalPort int
	VideoPort int
	DumpDir   string
	PicsDir   string
}

// DefaultConfig mirrors the drone's factory defaults.
func DefaultConfig() Config {
	return Config{
		TelloAddr: "192.168.10.1",
		CtrlPort:  8889,
		LocalPort: 8800,
		VideoPort: 6038,
		DumpDir:   "./dump_comm/",
		PicsDir:   "./save_pics/",
	}
}

// ConfigFromEnv loads a Config from the ENV_TELLO_* environment variables,
// falling back to DefaultConfig's values for anything unset or
// unparseable. This is the library's only point of contact with the
// process environment; everything else takes a Config value explicitly.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("ENV_TELLO_ADDR"); v != "" {
		cfg.TelloAddr = v
	}
	if v, ok := getEnvInt("ENV_TELLO_CTRL_PORT"); ok {
		cfg.CtrlPort = v
	}
	if v, ok := getEnvInt("ENV_TELLO_LOCAL_PORT"); ok {
		cfg.LocalPort = v
	}
	if v, ok := getEnvInt("ENV_TELLO_VIDEO_PORT"); ok {
		cfg.VideoPort = v
	}
	if v := os.Getenv("ENV_TELLO_DUMP_DIR"); v != "" {
		cfg.DumpDir = v
	}
	if v := os.Getenv("ENV_TELLO_PICS_DIR"); v != "" {
		cfg.PicsDir = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
