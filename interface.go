package mcp794xx

import "tinygo.org/x/drivers"

// RegisterReader reads device registers one at a time or as a burst. For
// ReadData, buf[0] carries the start register address on input and buf[1:]
// holds the values read from consecutive registers on return.
type RegisterReader interface {
	ReadRegister(reg uint8) (uint8, error)
	ReadData(buf []byte) error
}

// RegisterWriter writes device registers one at a time or as a burst. For
// WriteData, buf[0] is the start register address and buf[1:] the values
// written to consecutive registers.
type RegisterWriter interface {
	WriteRegister(reg uint8, value uint8) error
	WriteData(buf []byte) error
}

// Interface is the full bus capability set the driver needs.
type Interface interface {
	RegisterReader
	RegisterWriter
}

// I2CInterface binds the register contract to an I2C bus at the fixed
// MCP794xx device address.
type I2CInterface struct {
	bus drivers.I2C
}

// NewI2CInterface wraps an I2C bus.
func NewI2CInterface(bus drivers.I2C) *I2CInterface {
	return &I2CInterface{bus: bus}
}

// Bus returns the underlying I2C bus.
func (i *I2CInterface) Bus() drivers.I2C {
	return i.bus
}

func (i *I2CInterface) ReadRegister(reg uint8) (uint8, error) {
	buf := [1]byte{}
	err := i.bus.Tx(Address, []byte{reg}, buf[:])
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (i *I2CInterface) ReadData(buf []byte) error {
	return i.bus.Tx(Address, buf[:1], buf[1:])
}

func (i *I2CInterface) WriteRegister(reg uint8, value uint8) error {
	return i.bus.Tx(Address, []byte{reg, value}, nil)
}

func (i *I2CInterface) WriteData(buf []byte) error {
	return i.bus.Tx(Address, buf, nil)
}
