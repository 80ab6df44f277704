package mcp794xx

// decToBcd converts a decimal value in 0-99 to packed BCD. Range checking
// happens upstream in the field setters.
func decToBcd(dec uint8) uint8 {
	return (dec/10)<<4 | dec%10
}

// bcdToDec converts a packed BCD byte back to decimal.
func bcdToDec(bcd uint8) uint8 {
	return (bcd>>4)*10 + bcd&0x0F
}

// hoursToRegister encodes an Hours value into the hours register layout.
func hoursToRegister(hours Hours) (uint8, error) {
	switch hours.Mode {
	case H24:
		if hours.Hour > 23 {
			return 0, ErrInvalidInputData
		}
		return decToBcd(hours.Hour), nil
	case AM:
		if hours.Hour < 1 || hours.Hour > 12 {
			return 0, ErrInvalidInputData
		}
		return bit1224 | decToBcd(hours.Hour), nil
	case PM:
		if hours.Hour < 1 || hours.Hour > 12 {
			return 0, ErrInvalidInputData
		}
		return bit1224 | bitAMPM | decToBcd(hours.Hour), nil
	}
	return 0, ErrInvalidInputData
}

// hoursFromRegister decodes the hours register layout, masking the format
// flags out of the BCD value.
func hoursFromRegister(data uint8) Hours {
	if data&bit1224 == 0 {
		return Hours{Mode: H24, Hour: bcdToDec(data &^ bit1224)}
	}
	hour := bcdToDec(data &^ (bit1224 | bitAMPM))
	if data&bitAMPM == 0 {
		return Hours{Mode: AM, Hour: hour}
	}
	return Hours{Mode: PM, Hour: hour}
}
