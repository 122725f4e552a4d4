// Downstream fixture: references the error-description surface. It must
// not compile when the error facade is disabled.
package main

import "github.com/retroctrl/platform-switch/pkg/errdesc"

var errLinkDown = errdesc.New("link down")

type flagged interface {
	error
	Flagged() bool
}

func main() {
	err := errdesc.Errorf("handshake: %w", errLinkDown)
	if !errdesc.Is(err, errLinkDown) {
		panic("wrap chain broken")
	}
	if errdesc.Unwrap(err) == nil {
		panic("unwrap broken")
	}
	var f flagged
	_ = errdesc.As(err, &f)
}
