package mcp794xx

// HourMode selects the hours register layout: 24-hour, or 12-hour with the
// AM/PM flag.
type HourMode uint8

const (
	H24 HourMode = iota // 24-hour mode, hours 0-23
	AM                  // 12-hour mode before noon, hours 1-12
	PM                  // 12-hour mode after noon, hours 1-12
)

// Hours is an hour-of-day value tagged with its register layout mode.
type Hours struct {
	Mode HourMode
	Hour uint8
}

// DateTime is a full date and time record as stored in the seven time
// registers. It is a plain value; range checks happen in the setters. The
// weekday mapping (which day is 1) is up to the application, the chip only
// increments it.
type DateTime struct {
	Year    uint16 // 2000-2099
	Month   uint8  // 1-12
	Day     uint8  // 1-31
	Weekday uint8  // 1-7
	Hour    Hours
	Minute  uint8 // 0-59
	Second  uint8 // 0-59
}

// Seconds reads the seconds field, masking the oscillator start bit that
// shares the register.
func (d *Device) Seconds() (uint8, error) {
	data, err := d.iface.ReadRegister(RegSeconds)
	if err != nil {
		return 0, err
	}
	return bcdToDec(data &^ bitST), nil
}

// SetSeconds writes the seconds field. When the driver has enabled the
// oscillator, the start bit is re-asserted so the clock keeps running.
func (d *Device) SetSeconds(seconds uint8) error {
	if seconds >= 60 {
		return ErrInvalidInputData
	}
	value := decToBcd(seconds)
	if d.enabled {
		value |= bitST
	}
	return d.iface.WriteRegister(RegSeconds, value)
}

// Minutes reads the minutes field.
func (d *Device) Minutes() (uint8, error) {
	data, err := d.iface.ReadRegister(RegMinutes)
	if err != nil {
		return 0, err
	}
	return bcdToDec(data), nil
}

// SetMinutes writes the minutes field.
func (d *Device) SetMinutes(minutes uint8) error {
	if minutes >= 60 {
		return ErrInvalidInputData
	}
	return d.iface.WriteRegister(RegMinutes, decToBcd(minutes))
}

// Hours reads the hours field in whichever mode the device is running.
func (d *Device) Hours() (Hours, error) {
	data, err := d.iface.ReadRegister(RegHours)
	if err != nil {
		return Hours{}, err
	}
	return hoursFromRegister(data), nil
}

// SetHours writes the hours field, switching the device to the mode carried
// by the value.
func (d *Device) SetHours(hours Hours) error {
	data, err := hoursToRegister(hours)
	if err != nil {
		return err
	}
	return d.iface.WriteRegister(RegHours, data)
}

// Weekday reads the weekday field, masking the status bits that share the
// register.
func (d *Device) Weekday() (uint8, error) {
	data, err := d.iface.ReadRegister(RegWeekday)
	if err != nil {
		return 0, err
	}
	return data & maskWeekday, nil
}

// SetWeekday writes the weekday field, preserving the VBATEN, PWRFAIL and
// OSCRUN bits already present in the register.
func (d *Device) SetWeekday(weekday uint8) error {
	if weekday < 1 || weekday > 7 {
		return ErrInvalidInputData
	}
	data, err := d.iface.ReadRegister(RegWeekday)
	if err != nil {
		return err
	}
	data &^= maskWeekday
	data |= decToBcd(weekday)
	return d.iface.WriteRegister(RegWeekday, data)
}

// Day reads the day-of-month field.
func (d *Device) Day() (uint8, error) {
	data, err := d.iface.ReadRegister(RegDate)
	if err != nil {
		return 0, err
	}
	return bcdToDec(data), nil
}

// SetDay writes the day-of-month field.
func (d *Device) SetDay(day uint8) error {
	if day < 1 || day > 31 {
		return ErrInvalidInputData
	}
	return d.iface.WriteRegister(RegDate, decToBcd(day))
}

// Month reads the month field, masking the leap year flag that shares the
// register.
func (d *Device) Month() (uint8, error) {
	data, err := d.iface.ReadRegister(RegMonth)
	if err != nil {
		return 0, err
	}
	return bcdToDec(data &^ bitLPYR), nil
}

// SetMonth writes the month field.
func (d *Device) SetMonth(month uint8) error {
	if month < 1 || month > 12 {
		return ErrInvalidInputData
	}
	return d.iface.WriteRegister(RegMonth, decToBcd(month))
}

// Year reads the year. The device stores a two-digit year; the century is
// fixed at 2000.
func (d *Device) Year() (uint16, error) {
	data, err := d.iface.ReadRegister(RegYear)
	if err != nil {
		return 0, err
	}
	return 2000 + uint16(bcdToDec(data)), nil
}

// SetYear writes the year, which must lie within 2000-2099.
func (d *Device) SetYear(year uint16) error {
	if year < 2000 || year > 2099 {
		return ErrInvalidInputData
	}
	return d.iface.WriteRegister(RegYear, decToBcd(uint8(year-2000)))
}

// DateTime reads the full date-time record in a single burst transaction.
// The chip buffers the time registers internally during a burst read, so
// the composite cannot tear across a seconds rollover the way seven
// individual reads could.
func (d *Device) DateTime() (DateTime, error) {
	buf := [8]byte{}
	buf[0] = RegSeconds
	err := d.iface.ReadData(buf[:])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		Second:  bcdToDec(buf[1] &^ bitST),
		Minute:  bcdToDec(buf[2]),
		Hour:    hoursFromRegister(buf[3]),
		Weekday: buf[4] & maskWeekday,
		Day:     bcdToDec(buf[5]),
		Month:   bcdToDec(buf[6] &^ bitLPYR),
		Year:    2000 + uint16(bcdToDec(buf[7])),
	}, nil
}

// SetDateTime writes the full date-time record in a single burst
// transaction. The register block is read first so the oscillator start bit
// and the weekday status bits survive the write. Fields are validated in
// register order and the block is staged entirely in memory, so an invalid
// record never reaches the device, not even partially.
func (d *Device) SetDateTime(dt DateTime) error {
	buf := [8]byte{}
	buf[0] = RegSeconds
	err := d.iface.ReadData(buf[:])
	if err != nil {
		return err
	}

	if dt.Second >= 60 {
		return ErrInvalidInputData
	}
	buf[1] &= bitST
	buf[1] |= decToBcd(dt.Second)
	if d.enabled {
		buf[1] |= bitST
	}
	if dt.Minute >= 60 {
		return ErrInvalidInputData
	}
	buf[2] = decToBcd(dt.Minute)
	buf[3], err = hoursToRegister(dt.Hour)
	if err != nil {
		return err
	}
	if dt.Weekday < 1 || dt.Weekday > 7 {
		return ErrInvalidInputData
	}
	buf[4] &^= maskWeekday
	buf[4] |= decToBcd(dt.Weekday)
	if dt.Day < 1 || dt.Day > 31 {
		return ErrInvalidInputData
	}
	buf[5] = decToBcd(dt.Day)
	if dt.Month < 1 || dt.Month > 12 {
		return ErrInvalidInputData
	}
	buf[6] = decToBcd(dt.Month)
	if dt.Year < 2000 || dt.Year > 2099 {
		return ErrInvalidInputData
	}
	buf[7] = decToBcd(uint8(dt.Year - 2000))

	return d.iface.WriteData(buf[:])
}
