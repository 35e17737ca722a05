package sensironsht4x

const frameLength = 6

// frame is a response read from the sensor: [data, data, CRC, data, data, CRC].
// Its data bytes can only be reached through fields.
type frame [frameLength]byte

// validated holds the four data bytes of a frame whose CRCs have been checked,
// or whose caller explicitly opted out of checking them.
type validated [4]byte

// fields returns [s0, s1, s3, s4] if both CRC bytes match their data bytes.
// The first pair is checked before the second and the first failure is returned.
func (f frame) fields(first, second CrcFailureReason, check bool) (validated, error) {
	if check {
		if err := checkWord([3]byte{f[0], f[1], f[2]}, first); err != nil {
			return validated{}, err
		}
		if err := checkWord([3]byte{f[3], f[4], f[5]}, second); err != nil {
			return validated{}, err
		}
	}
	return validated{f[0], f[1], f[3], f[4]}, nil
}

func checkWord(word [3]byte, reason CrcFailureReason) error {
	calculated, ok := validateChecksum(word)
	if ok {
		return nil
	}
	return &CrcValidationError{
		Reason:     reason,
		Received:   word,
		Calculated: calculated,
	}
}

func (v validated) words() (uint16, uint16) {
	return uint16(v[0])<<8 | uint16(v[1]), uint16(v[2])<<8 | uint16(v[3])
}

func (v validated) uint32() uint32 {
	return uint32(v[0])<<24 | uint32(v[1])<<16 | uint32(v[2])<<8 | uint32(v[3])
}
