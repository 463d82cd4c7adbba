package satpack

/*------------------------------------------------------------------
 *
 * Purpose:   	Command line front end for the packetizer.
 *
 * Usage:	satpack [ options ]
 *
 *		Everything of substance lives in the other files;  this
 *		one only parses flags, opens the source and sink, and
 *		reports the outcome.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

func PacketizerMain() int {
	var source = pflag.StringP("source", "s", "", "Source station, e.g. N0CALL-1.")
	var dest = pflag.StringP("dest", "d", "", "Destination station, e.g. CQ.")
	var input = pflag.StringP("input", "i", "-", "Input file.  '-' reads standard input.")
	var output = pflag.StringP("output", "o", "-", "Output file for KISS frames.  '-' writes standard output.")
	var port = pflag.StringP("port", "p", "", "Serial port for KISS frames, e.g. /dev/ttyS0.  Overrides --output.")
	var serialSpeed = pflag.IntP("serial-speed", "B", 0, "Serial port speed in bps.  0 leaves the port speed alone.")
	var profilePath = pflag.StringP("config", "c", "", "YAML profile supplying stations and output settings.  Flags win.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede per-packet progress lines with 'strftime' format time stamp.")
	var verbose = pflag.BoolP("verbose", "v", false, "Verbose.  Hex dump each frame and codeword to stderr.")
	var version = pflag.Bool("version", false, "Display version and exit.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "satpack - packetize a binary stream into KISS framed, FX.25 protected AX.25 frames.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: satpack -s SRC-1 -d DEST [ options ]\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		return 0
	}

	if *version {
		printVersion()
		return 0
	}

	var runLogger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	SetLogger(runLogger)

	/*
	 * Profile file fills in whatever the flags left empty.
	 */

	if *profilePath != "" {
		var profile, err = load_profile(*profilePath)
		if err != nil {
			runLogger.Error("bad profile", "error", err)
			return 1
		}
		if *source == "" {
			*source = profile.Source
		}
		if *dest == "" {
			*dest = profile.Destination
		}
		if *port == "" {
			*port = profile.Output.Port
		}
		if *serialSpeed == 0 {
			*serialSpeed = profile.Output.SerialSpeed
		}
		if *output == "-" && profile.Output.File != "" {
			*output = profile.Output.File
		}
		if *timestampFormat == "" {
			*timestampFormat = profile.TimestampFormat
		}
	}

	var src_addr, src_err = parse_station(*source)
	if src_err != nil {
		runLogger.Error("bad source station", "error", src_err)
		return 1
	}

	var dest_addr, dest_err = parse_station(*dest)
	if dest_err != nil {
		runLogger.Error("bad destination station", "error", dest_err)
		return 1
	}

	var p, setup_err = new_packetizer(src_addr, dest_addr)
	if setup_err != nil {
		runLogger.Error("could not set up encoder", "error", setup_err)
		return 1
	}

	if *verbose {
		p.dump = os.Stderr
	}

	if *timestampFormat != "" {
		p.progress = func(r chunk_result_t) {
			var formattedTime, _ = strftime.Format(*timestampFormat, time.Now())
			if r.ok() {
				runLogger.Info(fmt.Sprintf("[%s] packet %d", formattedTime, r.seq), "payload", r.payload_len, "emitted", r.emitted)
			}
		}
	}

	/*
	 * Source and sink.  Opened here, released here, whatever happens
	 * in between.
	 */

	var in io.Reader = os.Stdin
	if *input != "-" {
		var f, err = os.Open(*input)
		if err != nil {
			runLogger.Error("could not open input", "error", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	switch {
	case *port != "":
		var t, err = serial_port_open(*port, *serialSpeed)
		if err != nil {
			runLogger.Error("could not open serial port", "error", err)
			return 1
		}
		defer t.Close()
		out = t
	case *output != "-":
		var f, err = os.Create(*output)
		if err != nil {
			runLogger.Error("could not create output", "error", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	runLogger.Info("packetizer starting",
		"source", fmt.Sprintf("%s-%d", src_addr.call, src_addr.ssid),
		"destination", fmt.Sprintf("%s-%d", dest_addr.call, dest_addr.ssid))

	var count, results, run_err = p.packetize(in, out)
	if run_err != nil {
		runLogger.Error("run aborted", "packets", count, "error", run_err)
		return 1
	}

	var skipped = len(results) - count
	if skipped > 0 {
		runLogger.Warn("some chunks were skipped", "skipped", skipped)
	}

	runLogger.Info("done", "packets", count)

	return 0
}
