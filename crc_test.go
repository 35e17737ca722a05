package sensironsht4x_test

import (
	"testing"

	"github.com/go-sensors/sensironsht4x"
	"github.com/stretchr/testify/assert"
)

func Test_Checksum_matches_datasheet_examples(t *testing.T) {
	// Arrange
	tests := []struct {
		data     []byte
		expected byte
	}{
		{data: []byte{0x00, 0x00}, expected: 0x81},
		{data: []byte{0x00, 0x00, 0x81}, expected: 0x00},
		{data: []byte{0xBE, 0xEF}, expected: 0x92},
		{data: []byte{0xBE, 0xEF, 0x92}, expected: 0x00},
		{data: []byte{0x01, 0x02}, expected: 0x17},
		{data: []byte{0x03, 0x04}, expected: 0x68},
	}

	for _, test := range tests {
		// Act
		actual := sensironsht4x.Checksum(test.data)

		// Assert
		assert.Equal(t, test.expected, actual, "checksum of % X", test.data)
	}
}

func Test_Checksum_of_word_followed_by_its_checksum_is_zero(t *testing.T) {
	for a := 0; a <= 0xFF; a++ {
		for b := 0; b <= 0xFF; b++ {
			// Arrange
			word := []byte{byte(a), byte(b)}
			crc := sensironsht4x.Checksum(word)

			// Act
			actual := sensironsht4x.Checksum(append(word, crc))

			// Assert
			if actual != 0 {
				assert.Failf(t, "non-zero remainder", "word % X with crc 0x%02X gave 0x%02X", word, crc, actual)
				return
			}
		}
	}
}
