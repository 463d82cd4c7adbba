package satpack

/*------------------------------------------------------------------
 *
 * Purpose:   	Station identities and the optional profile file.
 *
 * Description:	Identities arrive as the usual "CALL-SSID" text form,
 *		e.g. "N0CALL-1".  The SSID part is optional and defaults
 *		to 0.  A YAML profile file can supply the identities and
 *		output settings for unattended use;  command line flags
 *		take precedence.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

/*-------------------------------------------------------------
 *
 * Name:	parse_station
 *
 * Purpose:	Turn "CALL" or "CALL-SSID" text into a station identity.
 *
 * Inputs:	s	- e.g. "N0CALL", "n0call-1".  Case insensitive,
 *			  stored upper case as AX.25 requires.
 *
 * Errors:	Empty callsign, callsign over 6 characters, SSID not a
 *		number in 0 - 15.
 *
 *--------------------------------------------------------------*/

func parse_station(s string) (ax25_address_t, error) {
	var addr ax25_address_t

	var call, ssid_text, has_ssid = strings.Cut(s, "-")

	call = strings.ToUpper(strings.TrimSpace(call))
	if len(call) == 0 {
		return addr, fmt.Errorf("station %q has an empty callsign", s)
	}
	if len(call) > 6 {
		return addr, fmt.Errorf("station %q callsign is longer than 6 characters", s)
	}

	var ssid = 0
	if has_ssid {
		var err error
		ssid, err = strconv.Atoi(ssid_text)
		if err != nil || ssid < 0 || ssid > 15 {
			return addr, fmt.Errorf("station %q has invalid SSID %q, want 0 - 15", s, ssid_text)
		}
	}

	addr.call = call
	addr.ssid = byte(ssid)

	return addr, nil
}

// profile_t mirrors the YAML profile file.  All fields are optional;
// whatever is absent must come from the command line.
type profile_t struct {
	Source      string `yaml:"source"`      /* e.g. "N0CALL-1" */
	Destination string `yaml:"destination"` /* e.g. "CQ" */

	Output struct {
		File        string `yaml:"file"`         /* KISS output file. */
		Port        string `yaml:"port"`         /* Serial device, e.g. /dev/ttyS0. */
		SerialSpeed int    `yaml:"serial_speed"` /* bps.  0 leaves the port alone. */
	} `yaml:"output"`

	TimestampFormat string `yaml:"timestamp_format"` /* strftime format for progress lines. */
}

/*-------------------------------------------------------------
 *
 * Name:	load_profile
 *
 * Purpose:	Read and parse the YAML profile file.
 *
 *--------------------------------------------------------------*/

func load_profile(path string) (*profile_t, error) {
	var raw, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile: %w", err)
	}

	var p profile_t
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("could not parse profile %s: %w", path, err)
	}

	return &p, nil
}
