package satpack

/*------------------------------------------------------------------
 *
 * Purpose:   	Drive the chunk - frame - encode - emit pipeline.
 *
 * Description:	Reads the input in MAX_PAYLOAD sized chunks and runs
 *		each one through AX.25 framing, FX.25 encoding and KISS
 *		encapsulation.  One chunk is fully processed before the
 *		next read so memory stays bounded however large the
 *		input is.
 *
 *		A chunk that fails to frame or encode is skipped with a
 *		diagnostic;  the rest of the transmission carries on.
 *		Only sink write failures abort the run, because once the
 *		output stream is broken every later packet is lost anyway.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
)

// packetizer_t owns everything with run lifetime:  the RS encoder state
// and the two station identities.  Create one per run;  it is not safe
// for concurrent use because the encoder context is shared.
type packetizer_t struct {
	enc  *fx25_encoder_t
	src  ax25_address_t
	dest ax25_address_t

	dump io.Writer /* Hex dump frames and codewords here if non-nil. */

	progress func(chunk_result_t) /* Called after every chunk if non-nil. */
}

/*-------------------------------------------------------------
 *
 * Name:	new_packetizer
 *
 * Purpose:	Allocate the run context, including the Reed-Solomon
 *		codec tables.
 *
 * Inputs:	src, dest	- Station identities for the address field.
 *
 * Errors:	ErrEncoderInit (wrapped) if codec setup fails.  Nothing
 *		has been read or written at that point.
 *
 *--------------------------------------------------------------*/

func new_packetizer(src ax25_address_t, dest ax25_address_t) (*packetizer_t, error) {
	var enc, err = fx25_init()
	if err != nil {
		return nil, fmt.Errorf("packetizer setup: %w", err)
	}

	return &packetizer_t{enc: enc, src: src, dest: dest}, nil
}

// chunk_result_t is the outcome for one input chunk.  A run produces one
// of these per chunk so callers (and tests) can see exactly which chunks
// were skipped rather than inferring it from a count.
type chunk_result_t struct {
	seq         int   /* Chunk number, first is 0. */
	payload_len int   /* Bytes read from the source. */
	emitted     int   /* Bytes written to the sink.  0 when skipped. */
	err         error /* nil on success, reason when skipped. */
}

func (r chunk_result_t) ok() bool {
	return r.err == nil
}

/*-------------------------------------------------------------
 *
 * Name:	packetize
 *
 * Purpose:	Process the whole input stream.
 *
 * Inputs:	in	- Byte source.  Read in full MAX_PAYLOAD chunks
 *			  until a short final chunk or EOF.
 *
 *		out	- Byte sink for the KISS frames.  A file, a
 *			  serial port, anything that writes.
 *
 * Returns:	Number of packets emitted, the per-chunk outcomes, and
 *		a fatal error if reading or writing broke the run.
 *		Skipped chunks are not fatal and appear only in the
 *		outcome list.
 *
 *--------------------------------------------------------------*/

func (p *packetizer_t) packetize(in io.Reader, out io.Writer) (int, []chunk_result_t, error) {
	var buf [MAX_PAYLOAD]byte
	var results []chunk_result_t
	var packet_count = 0

	for seq := 0; ; seq++ {
		var n, read_err = io.ReadFull(in, buf[:])
		if errors.Is(read_err, io.EOF) {
			break /* Zero bytes left - normal end of run. */
		}
		if read_err != nil && !errors.Is(read_err, io.ErrUnexpectedEOF) {
			return packet_count, results, fmt.Errorf("reading chunk %d: %w", seq, read_err)
		}
		/* ErrUnexpectedEOF just means a short final chunk. */

		var emitted, chunk_err = p.process_chunk(buf[:n], out)

		var result = chunk_result_t{
			seq:         seq,
			payload_len: n,
			emitted:     emitted,
			err:         chunk_err,
		}
		results = append(results, result)
		if p.progress != nil {
			p.progress(result)
		}

		if chunk_err != nil {
			if errors.Is(chunk_err, ErrPayloadTooLarge) || errors.Is(chunk_err, ErrFrameTooLarge) {
				logger.Warn("skipping chunk", "chunk", seq, "error", chunk_err)
				continue
			}
			return packet_count, results, fmt.Errorf("writing packet %d: %w", seq, chunk_err)
		}

		packet_count++
	}

	return packet_count, results, nil
}

// process_chunk runs the three encoding stages for a single payload and
// writes the result.  Returns the number of bytes written to the sink.
func (p *packetizer_t) process_chunk(payload []byte, out io.Writer) (int, error) {
	var frame, frame_err = ax25_generate_ui_frame(p.dest, p.src, payload)
	if frame_err != nil {
		return 0, frame_err
	}

	var block, block_err = fx25_encode_block(p.enc, frame)
	if block_err != nil {
		return 0, block_err
	}

	if p.dump != nil {
		fmt.Fprintf(p.dump, "AX.25 frame (%d bytes):\n", len(frame))
		hex_dump(p.dump, frame)
		fmt.Fprintf(p.dump, "FX.25 block (%d bytes):\n", len(block))
		hex_dump(p.dump, block)
	}

	var kiss = kiss_encapsulate(append([]byte{KISS_CMD_DATA_FRAME}, block...))

	var written, write_err = out.Write(kiss)
	if write_err != nil {
		return written, write_err
	}

	return written, nil
}
