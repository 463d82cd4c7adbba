package satpack

/*------------------------------------------------------------------
 *
 * Purpose:   	Assemble AX.25 UI frames for the downlink.
 *
 * Description:	Only the connectionless UI frame is produced here.
 *		There is no connected mode, no digipeater path, and
 *		never more than the two station addresses.
 *
 *---------------------------------------------------------------*/

const AX25_UI_FRAME = 3 /* Control field value. */

const AX25_PID_NO_LAYER_3 = 0xf0 /* No layer 3 protocol. */

/*
 * The 7th octet of each address contains:
 *
 * Bits:   H  R  R  SSID  0
 *
 *   H		Command/response.  Left 0 here.
 *
 *   R	R	Reserved.  Normally set to 1 1.
 *
 *   SSID	Substation ID.  Range of 0 - 15.
 *
 *   0		Usually 0 but 1 for last address.
 */

const SSID_RR_MASK = 0x60

const SSID_SSID_MASK = 0x0f

const SSID_LAST_MASK = 0x01

/* Sizes that pin down the frame layout. */

const AX25_ADDR_LEN = 7

const AX25_UI_OVERHEAD = 18 /* 14 addr + control + PID + 2 FCS. */

// MAX_PAYLOAD keeps the whole UI frame comfortably inside the 223 byte
// data part of one RS(255,223) block.
const MAX_PAYLOAD = 150

// ax25_address_t holds one station identity, already validated.
type ax25_address_t struct {
	call string /* 1 - 6 characters, upper case. */
	ssid byte   /* 0 - 15. */
}

/*------------------------------------------------------------------------------
 *
 * Name:	encode_address
 *
 * Purpose:	Fill in one 7 byte address field of an AX.25 frame.
 *
 * Inputs:	call		- Callsign.  Truncated to 6 characters,
 *				  space padded on the right if shorter.
 *
 *		ssid		- Substation ID.  Only the low 4 bits are
 *				  used;  anything else is masked off, same
 *				  as every TNC in the field does.
 *
 *		last_addr	- True for the final address of the field.
 *
 * Returns:	The 7 encoded bytes.  Each callsign character is shifted
 *		left one place, leaving the LSB free for the HDLC
 *		address-extension bit.
 *
 *------------------------------------------------------------------------------*/

func encode_address(call string, ssid byte, last_addr bool) [AX25_ADDR_LEN]byte {
	var out [AX25_ADDR_LEN]byte

	for i := 0; i < 6; i++ {
		if i < len(call) {
			out[i] = call[i] << 1
		} else {
			out[i] = ' ' << 1
		}
	}

	out[6] = (ssid&SSID_SSID_MASK)<<1 | SSID_RR_MASK
	if last_addr {
		out[6] |= SSID_LAST_MASK
	}

	return out
}

/*------------------------------------------------------------------------------
 *
 * Name:	ax25_generate_ui_frame
 *
 * Purpose:	Build a complete UI frame ready for FEC encoding.
 *
 * Inputs:	dest	- Destination station.  Encoded first, per AX.25.
 *
 *		src	- Source station.  Carries the last-address bit.
 *
 *		payload	- Up to MAX_PAYLOAD raw bytes, copied unmodified.
 *
 * Returns:	The frame:  dest(7) src(7) control PID payload fcs-lo fcs-hi.
 *		Length is always len(payload) + AX25_UI_OVERHEAD.
 *
 * Errors:	ErrPayloadTooLarge if the payload would not leave the frame
 *		within the RS(255,223) data capacity.  The chunking in the
 *		packetizer never lets that happen;  the check is for other
 *		callers.
 *
 *------------------------------------------------------------------------------*/

func ax25_generate_ui_frame(dest ax25_address_t, src ax25_address_t, payload []byte) ([]byte, error) {
	if len(payload) > MAX_PAYLOAD {
		return nil, ErrPayloadTooLarge
	}

	var frame = make([]byte, 0, len(payload)+AX25_UI_OVERHEAD)

	var d = encode_address(dest.call, dest.ssid, false)
	frame = append(frame, d[:]...)

	var s = encode_address(src.call, src.ssid, true) /* Source is the last address. */
	frame = append(frame, s[:]...)

	frame = append(frame, AX25_UI_FRAME, AX25_PID_NO_LAYER_3)

	frame = append(frame, payload...)

	var fcs = fcs_calc(frame)
	frame = append(frame, byte(fcs&0xff), byte(fcs>>8)) /* Low byte first. */

	Assert(len(frame) <= FX25_K)

	return frame, nil
}
