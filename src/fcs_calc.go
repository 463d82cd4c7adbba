package satpack

/*------------------------------------------------------------------
 *
 * Purpose:   	Frame Check Sequence calculation for AX.25 frames.
 *
 * Description:	CRC-16-CCITT as used by AX.25 / X.25:
 *		register preset to 0xffff, polynomial 0x1021 applied
 *		MSB first, ones complement of the register at the end.
 *
 *---------------------------------------------------------------*/

/*-------------------------------------------------------------------
 *
 * Name:	fcs_calc
 *
 * Purpose:	Compute the FCS over a byte range.
 *
 * Inputs:	data	- Frame contents, addresses through payload.
 *
 * Returns:	16 bit check value.  The transmitted order is low
 *		byte first;  that is the caller's concern.
 *
 *-----------------------------------------------------------------*/

func fcs_calc(data []byte) uint16 {
	var crc uint16 = 0xffff

	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc ^ 0xffff
}
