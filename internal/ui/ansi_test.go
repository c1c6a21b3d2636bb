package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withColorForcing(t *testing.T, force, disable bool) {
	t.Helper()
	SetColorForcing(force, disable)
	t.Cleanup(func() { SetColorForcing(false, false) })
}

func TestColorDisabledPassesThrough(t *testing.T) {
	withColorForcing(t, false, true)
	assert.Equal(t, "x", C(fgGreen, "x"))
	assert.Equal(t, "3.", Dim("3."))
}

func TestColorForcedWrapsInEscapes(t *testing.T) {
	withColorForcing(t, true, false)
	assert.Equal(t, fgGreen+"x"+reset, C(fgGreen, "x"))
	assert.Equal(t, dim+"3."+reset, Dim("3."))
}

func TestDisableWinsOverForce(t *testing.T) {
	withColorForcing(t, true, true)
	assert.Equal(t, "x", Dim("x"))
}
