// Package mcp794xx implements a driver for the Microchip MCP794xx Real-Time
// Clock / Calendar family, including the MCP7940N. It provides per-field and
// combined access to the time registers, oscillator and battery-backup
// control, and the battery-backed SRAM. The chips also support alarms,
// square-wave output and power-fail timestamps, but those features remain
// unimplemented.
//
// Datasheet: https://ww1.microchip.com/downloads/en/DeviceDoc/20005010H.pdf
package mcp794xx

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// ErrInvalidInputData is returned when a value lies outside the documented
// range for its field. Validation happens before any bus write, so a
// rejected call leaves the device unmodified. Bus errors are passed through
// to the caller as-is.
var ErrInvalidInputData = errors.New("mcp794xx: invalid input data")

// Device represents an MCP794xx chip behind a register bus interface. The
// driver is fully synchronous and owns its bus interface exclusively;
// sharing a Device across goroutines needs external locking.
type Device struct {
	iface   Interface
	enabled bool
}

// New creates a driver for an MCP7940N on the given I2C bus. The oscillator
// is assumed stopped, which is the chip's power-on state; set the time and
// call Enable to start the clock.
func New(bus drivers.I2C) Device {
	return NewWithInterface(NewI2CInterface(bus))
}

// NewWithInterface creates a driver over any register bus interface.
func NewWithInterface(di Interface) Device {
	return Device{iface: di}
}

// Destroy releases and returns the bus interface held by the driver. The
// Device must not be used afterwards.
func (d *Device) Destroy() Interface {
	di := d.iface
	d.iface = nil
	return di
}

// Enable starts the oscillator, setting the clock running.
func (d *Device) Enable() error {
	seconds, err := d.iface.ReadRegister(RegSeconds)
	if err != nil {
		return err
	}
	err = d.iface.WriteRegister(RegSeconds, seconds|bitST)
	if err != nil {
		return err
	}
	d.enabled = true
	return nil
}

// Disable stops the oscillator.
func (d *Device) Disable() error {
	seconds, err := d.iface.ReadRegister(RegSeconds)
	if err != nil {
		return err
	}
	err = d.iface.WriteRegister(RegSeconds, seconds&^bitST)
	if err != nil {
		return err
	}
	d.enabled = false
	return nil
}

// IsOscillatorRunning reads the OSCRUN status bit. It reflects the actual
// oscillator state, which trails Enable/Disable by up to a clock cycle.
func (d *Device) IsOscillatorRunning() (bool, error) {
	data, err := d.iface.ReadRegister(RegWeekday)
	if err != nil {
		return false, err
	}
	return data&bitOSCRUN != 0, nil
}

// IsVbatEnabled reads the VBATEN bit controlling the battery backup supply.
func (d *Device) IsVbatEnabled() (bool, error) {
	data, err := d.iface.ReadRegister(RegWeekday)
	if err != nil {
		return false, err
	}
	return data&bitVBATEN != 0, nil
}

// SetVbatEnabled enables or disables the battery backup supply, leaving the
// rest of the weekday register untouched.
func (d *Device) SetVbatEnabled(enable bool) error {
	data, err := d.iface.ReadRegister(RegWeekday)
	if err != nil {
		return err
	}
	if enable {
		data |= bitVBATEN
	} else {
		data &^= bitVBATEN
	}
	return d.iface.WriteRegister(RegWeekday, data)
}

// PowerFailed reads the PWRFAIL bit, which the chip sets when primary power
// is lost while running from battery.
func (d *Device) PowerFailed() (bool, error) {
	data, err := d.iface.ReadRegister(RegWeekday)
	if err != nil {
		return false, err
	}
	return data&bitPWRFAIL != 0, nil
}

// LeapYear reads the chip's informational leap year flag for the currently
// stored year. The flag is maintained by the chip and ignored on writes.
func (d *Device) LeapYear() (bool, error) {
	data, err := d.iface.ReadRegister(RegMonth)
	if err != nil {
		return false, err
	}
	return data&bitLPYR != 0, nil
}

// ReadTime returns the current date and time as a time.Time in UTC,
// converting a 12-hour reading to 24-hour form.
func (d *Device) ReadTime() (time.Time, error) {
	dt, err := d.DateTime()
	if err != nil {
		return time.Time{}, err
	}
	hour := int(dt.Hour.Hour)
	switch dt.Hour.Mode {
	case AM:
		if hour == 12 {
			hour = 0
		}
	case PM:
		if hour != 12 {
			hour += 12
		}
	}
	return time.Date(int(dt.Year), time.Month(dt.Month), int(dt.Day),
		hour, int(dt.Minute), int(dt.Second), 0, time.UTC), nil
}

// SetTime sets the clock from a time.Time in 24-hour mode. The year must
// lie within 2000-2099. Weekdays are stored as time.Weekday plus one.
func (d *Device) SetTime(t time.Time) error {
	return d.SetDateTime(DateTime{
		Year:    uint16(t.Year()),
		Month:   uint8(t.Month()),
		Day:     uint8(t.Day()),
		Weekday: uint8(t.Weekday()) + 1,
		Hour:    Hours{Mode: H24, Hour: uint8(t.Hour())},
		Minute:  uint8(t.Minute()),
		Second:  uint8(t.Second()),
	})
}
