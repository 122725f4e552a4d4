// Downstream fixture: references all three facade groups at once.
package main

import (
	"strconv"

	"github.com/retroctrl/platform-switch/pkg/errdesc"
	"github.com/retroctrl/platform-switch/pkg/format"
	"github.com/retroctrl/platform-switch/pkg/log"
)

type axis int

func (a axis) String() string   { return "axis-" + strconv.Itoa(int(a)) }
func (a axis) GoString() string { return "axis(" + strconv.Itoa(int(a)) + ")" }

var (
	_ format.Display = axis(0)
	_ format.Debug   = axis(0)

	errStall = errdesc.New("axis stalled")
)

func main() {
	log.Trace("homing %v", axis(1))
	log.Debug("step %d", 42)
	log.Info("homed")

	err := errdesc.Errorf("move %v: %w", axis(1), errStall)
	if errdesc.Is(err, errStall) {
		log.Warn("recovering: %v", err)
	}
	log.Error("done: %v", errdesc.Unwrap(err))
}
