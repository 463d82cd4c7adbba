package satpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_encode_address(t *testing.T) {
	// Worked by hand from the shift-left rule: 'N'<<1, '0'<<1, ...
	// and (1 << 1) | 0x60 for the SSID octet.
	var expected = [AX25_ADDR_LEN]byte{0x9c, 0x60, 0x86, 0x82, 0x98, 0x98, 0x62}
	assert.Equal(t, expected, encode_address("N0CALL", 1, false))
}

func Test_encode_address_last_addr_bit(t *testing.T) {
	var a = encode_address("N0CALL", 1, true)
	assert.Equal(t, byte(0x63), a[6])
}

func Test_encode_address_pads_short_callsigns(t *testing.T) {
	var a = encode_address("CQ", 0, true)
	var expected = [AX25_ADDR_LEN]byte{'C' << 1, 'Q' << 1, ' ' << 1, ' ' << 1, ' ' << 1, ' ' << 1, 0x61}
	assert.Equal(t, expected, a)
}

func Test_encode_address_truncates_long_callsigns(t *testing.T) {
	assert.Equal(t, encode_address("ABCDEF", 0, false), encode_address("ABCDEFG", 0, false))
}

func Test_encode_address_masks_wild_ssid(t *testing.T) {
	// SSID is 4 bits.  Out of range values are silently masked, the
	// same as hardware TNCs behave, rather than rejected.
	assert.Equal(t, encode_address("N0CALL", 0x0f, false), encode_address("N0CALL", 0x1f, false))
	assert.Equal(t, encode_address("N0CALL", 0, false), encode_address("N0CALL", 0x10, false))
}

func Test_ax25_generate_ui_frame_layout(t *testing.T) {
	var dest = ax25_address_t{call: "DEST", ssid: 0}
	var src = ax25_address_t{call: "SRC", ssid: 1}
	var payload = []byte("hello")

	var frame, err = ax25_generate_ui_frame(dest, src, payload)
	require.NoError(t, err)
	require.Len(t, frame, len(payload)+AX25_UI_OVERHEAD)

	var d = encode_address("DEST", 0, false)
	var s = encode_address("SRC", 1, true)
	assert.Equal(t, d[:], frame[0:7], "Destination address comes first")
	assert.Equal(t, s[:], frame[7:14], "Source address carries the last-address bit")

	assert.Equal(t, byte(AX25_UI_FRAME), frame[14])
	assert.Equal(t, byte(AX25_PID_NO_LAYER_3), frame[15])
	assert.Equal(t, payload, frame[16:16+len(payload)])

	var fcs = fcs_calc(frame[:len(frame)-2])
	assert.Equal(t, byte(fcs&0xff), frame[len(frame)-2], "FCS low byte first")
	assert.Equal(t, byte(fcs>>8), frame[len(frame)-1])
}

func Test_ax25_generate_ui_frame_length(t *testing.T) {
	var dest = ax25_address_t{call: "DEST", ssid: 0}
	var src = ax25_address_t{call: "SRC", ssid: 1}

	rapid.Check(t, func(t *rapid.T) {
		var payload = rapid.SliceOfN(rapid.Byte(), 0, MAX_PAYLOAD).Draw(t, "payload")

		var frame, err = ax25_generate_ui_frame(dest, src, payload)
		require.NoError(t, err)
		assert.Len(t, frame, len(payload)+AX25_UI_OVERHEAD)
		assert.LessOrEqual(t, len(frame), FX25_K, "Frame must fit one RS data block")
	})
}

func Test_ax25_generate_ui_frame_payload_too_large(t *testing.T) {
	var dest = ax25_address_t{call: "DEST", ssid: 0}
	var src = ax25_address_t{call: "SRC", ssid: 1}

	var _, err = ax25_generate_ui_frame(dest, src, make([]byte, MAX_PAYLOAD+1))
	require.ErrorIs(t, err, ErrPayloadTooLarge)
}
