//go:build nostd

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retroctrl/platform-switch/internal/tinyfmt"
)

type temperature int

func (c temperature) String() string   { return tinyfmt.Format("%dC", int(c)) }
func (c temperature) GoString() string { return tinyfmt.Format("temperature(%d)", int(c)) }

var (
	_ Display = temperature(0)
	_ Debug   = temperature(0)
)

func TestAliasesReachTinyfmt(t *testing.T) {
	assert.Equal(t, "21C", tinyfmt.Format("%v", temperature(21)))
	assert.Equal(t, "temperature(21)", temperature(21).GoString())
}

func TestResultIsError(t *testing.T) {
	var r Result
	assert.Nil(t, r)
}
