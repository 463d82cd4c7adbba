package satpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_fx25_init(t *testing.T) {
	var enc, err = fx25_init()
	require.NoError(t, err)
	require.NotNil(t, enc.rs)

	assert.Equal(t, uint(255), enc.rs.nn)
	assert.Equal(t, uint(FX25_NROOTS), enc.rs.nroots)
	assert.Len(t, enc.rs.genpoly, FX25_NROOTS+1)
}

func Test_init_rs_char_rejects_bad_parameters(t *testing.T) {
	assert.Nil(t, init_rs_char(9, rs_gfpoly, rs_fcr, rs_prim, rs_nroots), "Symbol size over 8 bits")
	assert.Nil(t, init_rs_char(rs_symsize, rs_gfpoly, 256, rs_prim, rs_nroots), "First root outside field")
	assert.Nil(t, init_rs_char(rs_symsize, rs_gfpoly, rs_fcr, 0, rs_nroots), "Zero primitive element")
	assert.Nil(t, init_rs_char(rs_symsize, rs_gfpoly, rs_fcr, rs_prim, 256), "More roots than symbol values")
	assert.Nil(t, init_rs_char(rs_symsize, 0x1ff, rs_fcr, rs_prim, rs_nroots), "Non-primitive field polynomial")
}

func Test_fx25_encode_block_shape(t *testing.T) {
	var enc, err = fx25_init()
	require.NoError(t, err)

	var frame, frameErr = ax25_generate_ui_frame(
		ax25_address_t{call: "DEST"},
		ax25_address_t{call: "SRC", ssid: 1},
		[]byte("hello"),
	)
	require.NoError(t, frameErr)

	var block, blockErr = fx25_encode_block(enc, frame)
	require.NoError(t, blockErr)
	require.Len(t, block, FX25_FRAME_LEN)

	assert.Equal(t, CORR_TAG[:], block[:FX25_TAG_LEN])
	assert.Equal(t, frame, block[FX25_TAG_LEN:FX25_TAG_LEN+len(frame)])

	// Zero padding between the frame and the check bytes.
	for i := FX25_TAG_LEN + len(frame); i < FX25_TAG_LEN+FX25_K; i++ {
		require.Equal(t, byte(0), block[i], "Padding byte %d not zero", i)
	}
}

func Test_fx25_encode_block_zero_data(t *testing.T) {
	var enc, err = fx25_init()
	require.NoError(t, err)

	// A systematic RS code over all-zero data must produce all-zero
	// parity.  A quick sanity check on the whole table setup.
	var block, blockErr = fx25_encode_block(enc, []byte{})
	require.NoError(t, blockErr)

	for i := FX25_TAG_LEN; i < FX25_FRAME_LEN; i++ {
		require.Equal(t, byte(0), block[i])
	}
}

func Test_fx25_encode_block_too_large(t *testing.T) {
	var enc, err = fx25_init()
	require.NoError(t, err)

	var _, blockErr = fx25_encode_block(enc, make([]byte, FX25_K+1))
	require.ErrorIs(t, blockErr, ErrFrameTooLarge)

	var block, okErr = fx25_encode_block(enc, make([]byte, FX25_K))
	require.NoError(t, okErr, "Exactly the data capacity is fine")
	require.Len(t, block, FX25_FRAME_LEN)
}

func gf_mul(rs *rs_t, a byte, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return rs.alpha_to[modnn(rs, int(rs.index_of[a])+int(rs.index_of[b]))]
}

// eval_codeword evaluates the 255 symbol codeword polynomial (first byte
// is the highest degree coefficient) at alpha**power.
func eval_codeword(rs *rs_t, codeword []byte, power int) byte {
	var x = rs.alpha_to[modnn(rs, power)]
	var val byte = 0
	for _, c := range codeword {
		val = gf_mul(rs, val, x) ^ c
	}
	return val
}

func Test_fx25_codewords_vanish_at_generator_roots(t *testing.T) {
	// The defining property of the code: every valid codeword is
	// divisible by the generator polynomial, i.e. it evaluates to zero
	// at each of the 32 generator roots alpha**((fcr+i)*prim).  This is
	// exactly what a standard RS(255,223) decoder checks, so passing
	// here means receivers can decode us.
	var enc, err = fx25_init()
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		var payload = rapid.SliceOfN(rapid.Byte(), 0, MAX_PAYLOAD).Draw(t, "payload")

		var frame, frameErr = ax25_generate_ui_frame(
			ax25_address_t{call: "DEST"},
			ax25_address_t{call: "SRC", ssid: 1},
			payload,
		)
		require.NoError(t, frameErr)

		var block, blockErr = fx25_encode_block(enc, frame)
		require.NoError(t, blockErr)

		var codeword = block[FX25_TAG_LEN:]
		for i := 0; i < FX25_NROOTS; i++ {
			var root = (rs_fcr + i) * rs_prim
			require.Equal(t, byte(0), eval_codeword(enc.rs, codeword, root),
				"Codeword does not vanish at generator root %d", i)
		}
	})
}

func Test_fx25_encode_block_deterministic(t *testing.T) {
	var enc, err = fx25_init()
	require.NoError(t, err)

	var frame = []byte{0xde, 0xad, 0xbe, 0xef}
	var a, _ = fx25_encode_block(enc, frame)
	var b, _ = fx25_encode_block(enc, frame)
	assert.Equal(t, a, b, "Encoder state must not drift between calls")
}
