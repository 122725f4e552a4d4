// Downstream fixture: references all five logging entry points.
package main

import "github.com/retroctrl/platform-switch/pkg/log"

func main() {
	log.Trace("starting %s", "probe")
	log.Debug("attempt %d", 1)
	log.Info("link up at %d baud", 115200)
	log.Warn("retrying %d/%d", 2, 3)
	log.Error("gave up after %d attempts", 3)
}
