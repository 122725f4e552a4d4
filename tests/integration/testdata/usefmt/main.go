// Downstream fixture: implements both representation capabilities and
// touches every alias in the formatting facade.
package main

import (
	"strconv"

	"github.com/retroctrl/platform-switch/pkg/format"
)

type pressure int

func (p pressure) String() string   { return strconv.Itoa(int(p)) + "kPa" }
func (p pressure) GoString() string { return "pressure(" + strconv.Itoa(int(p)) + ")" }

var (
	_ format.Display = pressure(0)
	_ format.Debug   = pressure(0)
)

// render writes a display representation through a formatter handle.
func render(s format.State, p pressure) format.Result {
	_, err := s.Write([]byte(p.String()))
	return err
}

func main() {
	var _ = render
	println(pressure(101).String())
	println(pressure(101).GoString())
}
