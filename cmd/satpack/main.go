/* Packetize a binary stream for a half-duplex satellite downlink. */
package main

import (
	"os"

	satpack "github.com/satpack/satpack/src"
)

func main() {
	os.Exit(satpack.PacketizerMain())
}
