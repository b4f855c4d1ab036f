// rs-info enumerates attached RealSense devices: sensors, stream profiles
// and tunable options.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/teslashibe/go-realsense/internal/log"
	"github.com/teslashibe/go-realsense/pkg/kind"
	"github.com/teslashibe/go-realsense/pkg/realsense"
)

func main() {
	verbose := flag.Bool("verbose", false, "Print every stream profile, not just defaults")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log.Init(*logLevel)

	ctx, err := realsense.NewContext()
	if err != nil {
		log.Error("opening native backend", "err", err)
		os.Exit(1)
	}
	defer ctx.Close()

	devices, err := ctx.QueryDevices(realsense.ProductAny)
	if err != nil {
		log.Error("querying devices", "err", err)
		os.Exit(1)
	}
	if len(devices) == 0 {
		fmt.Println("No RealSense devices found.")
		return
	}

	fmt.Printf("Found %d device(s)\n\n", len(devices))
	for i, dev := range devices {
		printDevice(i, dev, *verbose)
		dev.Close()
	}
}

func printDevice(i int, dev *realsense.Device, verbose bool) {
	name, _ := dev.Info(kind.CameraInfoName)
	serial, _ := dev.Serial()
	fmt.Printf("📷 Device %d: %s (S/N %s)\n", i, name, serial)

	sensors, err := dev.Sensors()
	if err != nil {
		log.Warn("enumerating sensors", "device", serial, "err", err)
		return
	}
	for _, sensor := range sensors {
		printSensor(sensor, verbose)
		sensor.Close()
	}
	fmt.Println()
}

func printSensor(sensor *realsense.Sensor, verbose bool) {
	name, _ := sensor.Info(kind.CameraInfoName)
	fmt.Printf("  Sensor: %s\n", name)

	profiles, err := sensor.StreamProfiles()
	if err != nil {
		log.Warn("enumerating stream profiles", "sensor", name, "err", err)
		return
	}
	for _, p := range profiles {
		if !verbose && !p.IsDefault() {
			continue
		}
		mark := " "
		if p.IsDefault() {
			mark = "*"
		}
		line := fmt.Sprintf("   %s %s %s @ %d fps", mark, p.Kind(), p.Format(), p.Framerate())
		if intr, err := p.Intrinsics(); err == nil {
			line += fmt.Sprintf(" %dx%d", intr.Width, intr.Height)
		}
		fmt.Println(line)
	}
}
