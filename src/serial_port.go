package satpack

/*------------------------------------------------------------------
 *
 * Purpose:   	Interface to the serial port, hiding operating system
 *		differences.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"

	"github.com/pkg/term"
)

/*-------------------------------------------------------------------
 *
 * Name:	serial_port_open
 *
 * Purpose:	Open the serial port attached to the radio TNC, in raw
 *		mode so the KISS bytes pass through untranslated.
 *
 * Inputs:	devicename	- Usually /dev/tty...
 *				  Could be /dev/rfcomm0 for Bluetooth.
 *
 *		baud		- Speed.  1200, 4800, 9600 bps, etc.
 *				  If 0, leave it alone.
 *
 * Returns 	Handle for serial port.  It satisfies io.WriteCloser so
 *		it plugs straight in as the packetizer sink.
 *
 *---------------------------------------------------------------*/

func serial_port_open(devicename string, baud int) (*term.Term, error) {
	var fd, err = term.Open(devicename, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("could not open serial port %s: %w", devicename, err)
	}

	switch baud {
	case 0: /* Leave it alone. */
	case 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200:
		fd.SetSpeed(baud)
	default:
		fd.Close()
		return nil, fmt.Errorf("unsupported serial port speed %d", baud)
	}

	return fd, nil
}
