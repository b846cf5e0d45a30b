// Command gotello-cli is a minimal demonstration client: it connects to a
// drone (or a configured address), takes off, hovers briefly, lands, and
// logs the flight, wifi, light and IMU updates it receives in the
// meantime at debug level.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mixaal/gotello"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		addr      = flag.String("addr", "", "drone address (overrides ENV_TELLO_ADDR)")
		withVideo = flag.Bool("video", false, "also connect the video channel")
		hoverSecs = flag.Int("hover", 5, "seconds to hover after takeoff before landing")
		verbose   = flag.Bool("verbose", false, "enable debug logging")
		dump      = flag.Bool("dump", false, "dump every raw control/video packet under ENV_TELLO_DUMP_DIR")
	)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := tello.ConfigFromEnv()
	if *addr != "" {
		cfg.TelloAddr = *addr
	}

	c := tello.NewController(cfg, log)
	if *dump {
		if err := setupDumpers(c, cfg, log); err != nil {
			log.WithError(err).Warn("gotello-cli: dumping disabled")
		}
	}
	if err := c.Connect(); err != nil {
		log.WithError(err).Fatal("gotello-cli: connect failed")
	}
	if *withVideo {
		if err := c.ConnectVideo(); err != nil {
			log.WithError(err).Fatal("gotello-cli: video connect failed")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	go logUpdates(log, c.Updates())

	runErr := make(chan error, 1)
	go func() { runErr <- c.Run(ctx) }()

	time.Sleep(1 * time.Second) // give the handshake a moment to land
	log.Infof("connected=%v", c.IsConnected())

	c.TakeOff()
	time.Sleep(time.Duration(*hoverSecs) * time.Second)
	c.Land()

	cancel()
	if err := <-runErr; err != nil {
		log.WithError(err).Warn("gotello-cli: run loop ended with error")
	}
}

// setupDumpers builds the control and video packet dumpers under
// cfg.DumpDir and installs them on c. Either dumper failing to set up
// its directory is reported, but doesn't stop the one that did.
func setupDumpers(c *tello.Controller, cfg tello.Config, log *logrus.Logger) error {
	ctrlDumper, ctrlErr := tello.NewFileDumper(cfg.DumpDir, "ctrl", log)
	if ctrlErr != nil {
		log.WithError(ctrlErr).Warn("gotello-cli: control dumper disabled")
	}
	videoDumper, videoErr := tello.NewFileDumper(cfg.DumpDir, "video", log)
	if videoErr != nil {
		log.WithError(videoErr).Warn("gotello-cli: video dumper disabled")
	}
	c.SetDumpers(ctrlDumper, videoDumper)
	if ctrlErr != nil && videoErr != nil {
		return ctrlErr
	}
	return nil
}

func logUpdates(log *logrus.Logger, updates <-chan tello.UpdateData) {
	for u := range updates {
		switch {
		case u.Flight != nil:
			log.WithFields(logrus.Fields{
				"height":  u.Flight.Height,
				"battery": u.Flight.BatteryPercentage,
				"flying":  u.Flight.Flying,
			}).Debug("flight update")
		case u.Wifi != nil:
			log.WithField("strength", u.Wifi.Strength).Debug("wifi update")
		case u.Light != nil:
			log.WithField("strength", u.Light.Strength).Debug("light update")
		case u.Log != nil && u.Log.IMU != nil:
			log.WithFields(logrus.Fields{
				"roll":  u.Log.IMU.Roll,
				"pitch": u.Log.IMU.Pitch,
				"yaw":   u.Log.IMU.Yaw,
			}).Debug("imu update")
		}
	}
}
