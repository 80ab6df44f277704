package mcp794xx

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSRAMByte(t *testing.T) {
	c := qt.New(t)
	bus := &busSim{}
	rtc := New(bus)

	c.Assert(rtc.WriteSRAMByte(SRAMStart-1, 0xAB), qt.Equals, ErrInvalidInputData)
	c.Assert(rtc.WriteSRAMByte(SRAMEnd+1, 0xAB), qt.Equals, ErrInvalidInputData)
	c.Assert(bus.writes, qt.Equals, 0)

	c.Assert(rtc.WriteSRAMByte(SRAMStart, 0xAB), qt.IsNil)
	c.Assert(rtc.WriteSRAMByte(SRAMEnd, 0xCD), qt.IsNil)

	v, err := rtc.ReadSRAMByte(SRAMStart)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint8(0xAB))

	v, err = rtc.ReadSRAMByte(SRAMEnd)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint8(0xCD))

	_, err = rtc.ReadSRAMByte(RegYear)
	c.Assert(err, qt.Equals, ErrInvalidInputData)
}

func TestSRAMBurst(t *testing.T) {
	c := qt.New(t)
	bus := &busSim{}
	rtc := New(bus)

	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	c.Assert(rtc.WriteSRAM(SRAMStart+4, data), qt.IsNil)
	c.Assert(bus.writes, qt.Equals, 1)

	got := make([]byte, len(data))
	c.Assert(rtc.ReadSRAM(SRAMStart+4, got), qt.IsNil)
	c.Assert(bus.reads, qt.Equals, 1)
	c.Assert(bytes.Equal(got, data), qt.Equals, true)
}

func TestSRAMBurstBounds(t *testing.T) {
	c := qt.New(t)
	bus := &busSim{}
	rtc := New(bus)

	buf := make([]byte, 4)
	// run must not spill past the end of the window
	c.Assert(rtc.WriteSRAM(SRAMEnd-2, buf), qt.Equals, ErrInvalidInputData)
	c.Assert(rtc.ReadSRAM(SRAMEnd-2, buf), qt.Equals, ErrInvalidInputData)
	c.Assert(rtc.WriteSRAM(SRAMStart-1, buf), qt.Equals, ErrInvalidInputData)
	c.Assert(bus.reads, qt.Equals, 0)
	c.Assert(bus.writes, qt.Equals, 0)

	// a full-window run is fine
	full := make([]byte, SRAMEnd-SRAMStart+1)
	c.Assert(rtc.WriteSRAM(SRAMStart, full), qt.IsNil)

	// zero-length runs never touch the bus
	c.Assert(rtc.WriteSRAM(SRAMStart, nil), qt.IsNil)
	c.Assert(rtc.ReadSRAM(SRAMStart, nil), qt.IsNil)
	c.Assert(bus.writes, qt.Equals, 1)
	c.Assert(bus.reads, qt.Equals, 0)
}
