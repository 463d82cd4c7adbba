package satpack

import "errors"

// Recoverable per-chunk failures.  The pipeline skips the chunk, reports a
// diagnostic, and keeps going.  Everything else (I/O, encoder setup) is
// fatal for the run.
var (
	// ErrPayloadTooLarge - chunk payload would push the AX.25 frame past
	// what fits in one RS(255,223) data block.
	ErrPayloadTooLarge = errors.New("payload exceeds maximum of 150 bytes")

	// ErrFrameTooLarge - an AX.25 frame longer than the 223 byte RS data
	// capacity was handed to the FEC encoder.
	ErrFrameTooLarge = errors.New("frame exceeds RS(255,223) data capacity")

	// ErrEncoderInit - the Reed-Solomon codec control block could not be
	// built from the configured polynomial parameters.
	ErrEncoderInit = errors.New("Reed-Solomon encoder initialization failed")
)
