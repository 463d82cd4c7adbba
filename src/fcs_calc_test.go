package satpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_fcs_calc_check_value(t *testing.T) {
	// The classic CCITT check value for "123456789" is 0x29b1.  That is
	// the register before the final inversion;  AX.25 puts the inverted
	// form on the wire.
	var fcs = fcs_calc([]byte("123456789"))
	assert.Equal(t, uint16(0x29b1), fcs^0xffff)
	assert.Equal(t, uint16(0xd64e), fcs)
}

func Test_fcs_calc_empty(t *testing.T) {
	// Preset 0xffff inverted straight back out.
	assert.Equal(t, uint16(0x0000), fcs_calc(nil))
}

func Test_fcs_calc_deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var data = rapid.SliceOf(rapid.Byte()).Draw(t, "data")
		assert.Equal(t, fcs_calc(data), fcs_calc(data))
	})
}

func Test_fcs_calc_detects_bit_flips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var data = rapid.SliceOfN(rapid.Byte(), 1, 300).Draw(t, "data")
		var byteIdx = rapid.IntRange(0, len(data)-1).Draw(t, "byteIdx")
		var bit = rapid.IntRange(0, 7).Draw(t, "bit")

		var before = fcs_calc(data)
		data[byteIdx] ^= 1 << bit
		var after = fcs_calc(data)

		assert.NotEqual(t, before, after, "Single bit flip went undetected")
	})
}
