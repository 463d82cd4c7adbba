package satpack

/*------------------------------------------------------------------
 *
 * Purpose:   	Wrap an AX.25 frame in an FX.25 block for transmission.
 *
 * Description:	The block layout is fixed:
 *
 *			correlation tag		  8 bytes
 *			AX.25 frame, zero padded  223 bytes
 *			Reed-Solomon check bytes  32 bytes
 *
 *		Total is always 263 bytes no matter how short the frame
 *		is.  Receivers expect full blocks;  the zero padding is
 *		part of the codeword and protected by the check bytes.
 *
 *---------------------------------------------------------------*/

/*-------------------------------------------------------------
 *
 * Name:	fx25_encode_block
 *
 * Purpose:	Produce the 263 byte FX.25 block for one AX.25 frame.
 *
 * Inputs:	enc	- Encoder context from fx25_init.  Not safe to
 *			  share across goroutines without locking.
 *
 *		frame	- Complete AX.25 frame including FCS.
 *
 * Returns:	Tag + codeword, exactly FX25_FRAME_LEN bytes.
 *
 * Errors:	ErrFrameTooLarge if the frame exceeds the 223 byte data
 *		capacity.  ax25_generate_ui_frame's payload ceiling rules
 *		that out in normal operation.
 *
 *--------------------------------------------------------------*/

func fx25_encode_block(enc *fx25_encoder_t, frame []byte) ([]byte, error) {
	if len(frame) > FX25_K {
		return nil, ErrFrameTooLarge
	}

	var out = make([]byte, FX25_FRAME_LEN)

	copy(out, CORR_TAG[:])

	var rs_block = out[FX25_TAG_LEN:] /* Zero from make;  the padding is free. */
	copy(rs_block, frame)

	encode_rs_char(enc.rs, rs_block[:FX25_K], rs_block[FX25_K:])

	return out, nil
}
