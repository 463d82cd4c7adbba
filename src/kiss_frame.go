package satpack

/*------------------------------------------------------------------
 *
 * Purpose:   	KISS framing for the serial link to the radio.
 *
 * Description: The KISS TNC protocol is described in
 *		http://www.ka9q.net/papers/kiss.html
 *
 * 		Briefly, a frame is composed of
 *
 *			* FEND (0xC0)
 *			* Contents - with special escape sequences so a 0xc0
 *				byte in the data is not taken as end of frame.
 *			* FEND
 *
 *		The first content byte carries the radio channel in the
 *		upper nybble and the command in the lower nybble.  This
 *		application only ever produces data frames on channel 0.
 *
 *---------------------------------------------------------------*/

import (
	"bytes"
	"errors"
	"fmt"
)

/*
 * Special characters used by SLIP protocol.
 */

const FEND = 0xC0
const FESC = 0xDB
const TFEND = 0xDC
const TFESC = 0xDD

const KISS_CMD_DATA_FRAME = 0

/*-------------------------------------------------------------------
 *
 * Name:        kiss_encapsulate
 *
 * Purpose:     Encapsulate a frame into KISS format.
 *
 * Inputs:	in	- Input block.  First byte is the "type indicator"
 *			  with command and channel but we don't care about
 *			  that here.  If it happens to be FEND or FESC, it
 *			  is escaped, like any other byte.
 *
 *			  Note that this is "binary" data and can contain
 *			  nul (0x00) values.   Don't treat it like a text string!
 *
 * Returns:	The KISS encoded representation.  The sequence is:
 *			FEND		- Magic frame separator.
 *			data		- with certain byte values replaced so
 *					  FEND will never occur here.
 *			FEND		- Magic frame separator.
 *
 *		Absolute max length (extremely unlikely) will be twice
 *		input plus 2.
 *
 *-----------------------------------------------------------------*/

func kiss_encapsulate(in []byte) []byte {
	var buf bytes.Buffer

	buf.WriteByte(FEND)

	for _, b := range in {
		switch b {
		case FEND:
			buf.WriteByte(FESC)
			buf.WriteByte(TFEND)
		case FESC:
			buf.WriteByte(FESC)
			buf.WriteByte(TFESC)
		default:
			buf.WriteByte(b)
		}
	}

	buf.WriteByte(FEND)

	return buf.Bytes()
}

/*-------------------------------------------------------------------
 *
 * Name:        kiss_unwrap
 *
 * Purpose:     Extract original data from a KISS frame.
 *
 * Inputs:	in	- KISS encoded representation.  Leading FEND is
 *			  optional, trailing FEND is required.
 *
 * Returns:	The frame contents without the escapes or FENDs, or an
 *		error if the framing or an escape sequence is malformed.
 *
 *-----------------------------------------------------------------*/

func kiss_unwrap(in []byte) ([]byte, error) {
	if len(in) < 2 {
		/* Need at least the "type indicator" byte and FEND. */
		return nil, errors.New("KISS frame less than minimum length")
	}

	if in[len(in)-1] != FEND {
		return nil, errors.New("KISS frame should end with FEND")
	}
	in = in[:len(in)-1]

	if len(in) > 0 && in[0] == FEND {
		in = in[1:] // Skip over optional leading FEND
	}

	var buf bytes.Buffer
	var escaped_mode = false

	for _, b := range in {
		switch {
		case escaped_mode:
			switch b {
			case TFEND:
				buf.WriteByte(FEND)
			case TFESC:
				buf.WriteByte(FESC)
			default:
				return nil, fmt.Errorf("KISS frame has invalid escape sequence FESC %02x", b)
			}
			escaped_mode = false
		case b == FESC:
			escaped_mode = true
		case b == FEND:
			return nil, errors.New("KISS frame has stray FEND inside contents")
		default:
			buf.WriteByte(b)
		}
	}

	if escaped_mode {
		return nil, errors.New("KISS frame ends in middle of escape sequence")
	}

	return buf.Bytes(), nil
}
