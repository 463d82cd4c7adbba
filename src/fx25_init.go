package satpack

// The Reed-Solomon table construction here is based on work performed by
// Phil Karn, KA9Q, released under the GPL, by way of the FX.25 encoder by
// Jim McGuire, KB3MPL.

/*------------------------------------------------------------------
 *
 * Purpose:   	Set up the RS(255,223) codec used for FX.25 encoding.
 *
 * Description:	One codec configuration only.  The downlink always sends
 *		full 255 byte blocks with 32 check bytes, so unlike a
 *		general FX.25 TNC there is no table of tag formats to
 *		choose from.
 *
 *		Reference:	http://www.stensat.org/docs/FX-25_01_06.pdf
 *
 *---------------------------------------------------------------*/

/* Block geometry.  Always 255 total for 8 bit symbols. */

const FX25_K = 223 /* Data bytes in a block. */
const FX25_N = 255 /* Data + parity. */
const FX25_NROOTS = FX25_N - FX25_K

const FX25_TAG_LEN = 8

const FX25_FRAME_LEN = FX25_TAG_LEN + FX25_N /* 263. */

// CORR_TAG is the fixed correlation tag prepended to every block.  The
// receiving modem hunts for this constant in the bitstream to find the
// start of a codeword.
var CORR_TAG = [FX25_TAG_LEN]byte{0xcc, 0x8f, 0x8a, 0xe4, 0x85, 0xe2, 0x98, 0x01}

/*
 * Codec parameters, as handed to libfec's init_rs_char by the flight
 * heritage C implementation:  the CCSDS polynomial set for RS(255,223).
 */

const rs_symsize = 8     /* Symbol size, bits. */
const rs_gfpoly = 0x187  /* Field generator polynomial coefficients. */
const rs_fcr = 112       /* First root of generator polynomial, index form. */
const rs_prim = 11       /* Primitive element to generate polynomial roots. */
const rs_nroots = FX25_NROOTS

// rs_t is the Reed-Solomon codec control block.  Built once, read-only
// afterwards, so sequential reuse is fine but concurrent encoders must
// not share one without locking.
type rs_t struct {
	mm       uint   /* Bits per symbol. */
	nn       uint   /* Symbols per block, (1 << mm) - 1. */
	alpha_to []byte /* log lookup table. */
	index_of []byte /* Antilog lookup table. */
	genpoly  []byte /* Generator polynomial, index form. */
	nroots   uint   /* Number of generator roots = number of parity symbols. */
	fcr      byte   /* First consecutive root, index form. */
	prim     byte   /* Primitive element, index form. */
	iprim    byte   /* prim-th root of 1, index form. */
}

func modnn(rs *rs_t, x int) int {
	for x >= int(rs.nn) {
		x -= int(rs.nn)
		x = (x >> int(rs.mm)) + (x & int(rs.nn))
	}
	return x
}

// fx25_encoder_t owns the codec state for one packetizing run.  Callers
// hold it for the run's lifetime and pass it into every encode.
type fx25_encoder_t struct {
	rs *rs_t
}

/*-------------------------------------------------------------
 *
 * Name:	fx25_init
 *
 * Purpose:	Build the encoder context.  Must succeed before any
 *		block can be encoded.
 *
 * Returns:	Encoder, or ErrEncoderInit if the polynomial parameters
 *		do not describe a valid GF(256) codec.  With the constants
 *		above that cannot happen;  the error path exists because
 *		the parameters are plain data and a future variant could
 *		get them wrong.
 *
 *--------------------------------------------------------------*/

func fx25_init() (*fx25_encoder_t, error) {
	var rs = init_rs_char(rs_symsize, rs_gfpoly, rs_fcr, rs_prim, rs_nroots)
	if rs == nil {
		return nil, ErrEncoderInit
	}

	Assert(int(rs.nn)-int(rs.nroots) == FX25_K)

	return &fx25_encoder_t{rs: rs}, nil
}

/* Initialize a Reed-Solomon codec
 *   symsize = symbol size, bits (1-8) - always 8 for this application.
 *   gfpoly = Field generator polynomial coefficients
 *   fcr = first root of RS code generator polynomial, index form
 *   prim = primitive element to generate polynomial roots
 *   nroots = RS code generator polynomial degree (number of roots)
 */

func init_rs_char(symsize uint, gfpoly uint, fcr uint, prim uint, nroots uint) *rs_t {
	if symsize > 8 {
		return nil // Need version with ints rather than chars
	}

	if fcr >= (1 << symsize) {
		return nil
	}
	if prim == 0 || prim >= (1<<symsize) {
		return nil
	}
	if nroots >= (1 << symsize) {
		return nil // Can't have more roots than symbol values!
	}

	var rs = new(rs_t)

	rs.mm = symsize
	rs.nn = uint((1 << symsize) - 1)

	rs.alpha_to = make([]byte, rs.nn+1)
	rs.index_of = make([]byte, rs.nn+1)

	// Generate Galois field lookup tables
	rs.index_of[0] = byte(rs.nn) // log(zero) = -inf (A0)
	rs.alpha_to[rs.nn] = 0       // alpha**-inf = 0
	var sr = 1
	for i := 0; i < int(rs.nn); i++ {
		rs.index_of[sr] = byte(i)
		rs.alpha_to[i] = byte(sr)
		sr <<= 1
		if sr&(1<<symsize) != 0 {
			sr ^= int(gfpoly)
		}
		sr &= int(rs.nn)
	}
	if sr != 1 {
		// field generator polynomial is not primitive!
		return nil
	}

	// Form RS code generator polynomial from its roots
	rs.genpoly = make([]byte, nroots+1)
	rs.fcr = byte(fcr)
	rs.prim = byte(prim)
	rs.nroots = nroots

	// Find prim-th root of 1, used in decoding
	var iprim = 1
	for (iprim % int(prim)) != 0 {
		iprim += int(rs.nn)
	}
	rs.iprim = byte(iprim / int(prim))

	rs.genpoly[0] = 1
	for i, root := 0, int(fcr)*int(prim); i < int(nroots); i, root = i+1, root+int(prim) {
		rs.genpoly[i+1] = 1

		// Multiply rs->genpoly[] by  @**(root + x)
		for j := i; j > 0; j-- {
			if rs.genpoly[j] != 0 {
				rs.genpoly[j] = rs.genpoly[j-1] ^ rs.alpha_to[modnn(rs, int(rs.index_of[rs.genpoly[j]])+root)]
			} else {
				rs.genpoly[j] = rs.genpoly[j-1]
			}
		}
		// rs->genpoly[0] can never be zero
		rs.genpoly[0] = rs.alpha_to[modnn(rs, int(rs.index_of[rs.genpoly[0]])+root)]
	}
	// convert rs->genpoly[] to index form for quicker encoding
	for i := 0; i <= int(nroots); i++ {
		rs.genpoly[i] = rs.index_of[rs.genpoly[i]]
	}

	return rs
}
