package sensironsht4x

import (
	"github.com/sigurn/crc8"
)

var (
	checksumTable = crc8.MakeTable(crc8.Params{
		Poly:   0x31,
		Init:   0xFF,
		RefIn:  false,
		RefOut: false,
		XorOut: 0x00,
		Check:  0xF7,
		Name:   "CRC-8/NRSC-5",
	})
)

// Checksum calculates the CRC-8 the sensor uses to protect each pair of data bytes.
//
// Running the checksum over two data bytes followed by their received CRC
// yields zero when the CRC is correct.
func Checksum(data []byte) byte {
	return crc8.Checksum(data, checksumTable)
}

// validateChecksum checks two data bytes against their trailing CRC byte,
// returning the non-zero remainder when they do not match.
func validateChecksum(word [3]byte) (byte, bool) {
	remainder := Checksum(word[:])
	return remainder, remainder == 0
}
