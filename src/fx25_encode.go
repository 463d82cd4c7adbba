package satpack

// The Reed Solomon encoding routines are based on work performed by
// Phil Karn.  Phil was kind enough to release his code under the GPL.

/*-------------------------------------------------------------
 *
 * Name:	encode_rs_char
 *
 * Purpose:	Compute parity symbols for one systematic codeword.
 *
 * Inputs:	rs	- Codec control block from init_rs_char.
 *
 *		data	- nn - nroots data symbols.
 *
 * Outputs:	bb	- nroots parity symbols.  Cleared first;  any
 *			  previous contents are irrelevant.
 *
 * Description:	Straight polynomial division over GF(256) using the
 *		precomputed log / antilog tables.  The data symbols are
 *		not touched, which is what makes the code systematic.
 *
 *--------------------------------------------------------------*/

func encode_rs_char(rs *rs_t, data []byte, bb []byte) {

	var nroots = int(rs.nroots)
	var nn = int(rs.nn)
	var dataLen = nn - nroots

	// Clear out the FEC data area
	for k := range bb {
		bb[k] = 0
	}

	for i := 0; i < dataLen; i++ {
		// feedback = INDEX_OF[data[i] ^ bb[0]]
		var feedback = rs.index_of[data[i]^bb[0]]

		if uint(feedback) != rs.nn { // feedback term is non-zero
			for j := 1; j < nroots; j++ {
				// bb[j] ^= ALPHA_TO[modnn(feedback + GENPOLY[NROOTS-j])]
				var genpolyVal = rs.genpoly[nroots-j]
				var modnnResult = modnn(rs, int(feedback)+int(genpolyVal))
				bb[j] ^= rs.alpha_to[modnnResult]
			}
		}

		// Shift
		copy(bb, bb[1:])

		// bb[NROOTS-1] = ...
		if uint(feedback) != rs.nn {
			// ALPHA_TO[modnn(feedback + GENPOLY[0])]
			var genpolyVal = rs.genpoly[0]
			var modnnResult = modnn(rs, int(feedback)+int(genpolyVal))
			bb[nroots-1] = rs.alpha_to[modnnResult]
		} else {
			bb[nroots-1] = 0
		}
	}
}
