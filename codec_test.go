package mcp794xx

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBcdRoundTrip(t *testing.T) {
	c := qt.New(t)
	for n := uint8(0); n <= 99; n++ {
		c.Assert(bcdToDec(decToBcd(n)), qt.Equals, n)
	}
}

func TestDecToBcd(t *testing.T) {
	c := qt.New(t)
	cases := []struct {
		dec uint8
		bcd uint8
	}{
		{0, 0x00},
		{1, 0x01},
		{9, 0x09},
		{10, 0x10},
		{11, 0x11},
		{19, 0x19},
		{20, 0x20},
		{59, 0x59},
		{99, 0x99},
	}
	for _, tc := range cases {
		c.Assert(decToBcd(tc.dec), qt.Equals, tc.bcd)
		c.Assert(bcdToDec(tc.bcd), qt.Equals, tc.dec)
	}
}

func TestHoursRoundTrip(t *testing.T) {
	c := qt.New(t)
	for h := uint8(0); h <= 23; h++ {
		data, err := hoursToRegister(Hours{Mode: H24, Hour: h})
		c.Assert(err, qt.IsNil)
		c.Assert(hoursFromRegister(data), qt.Equals, Hours{Mode: H24, Hour: h})
	}
	for _, mode := range []HourMode{AM, PM} {
		for h := uint8(1); h <= 12; h++ {
			data, err := hoursToRegister(Hours{Mode: mode, Hour: h})
			c.Assert(err, qt.IsNil)
			c.Assert(hoursFromRegister(data), qt.Equals, Hours{Mode: mode, Hour: h})
		}
	}
}

func TestHoursToRegisterBounds(t *testing.T) {
	c := qt.New(t)
	invalid := []Hours{
		{Mode: H24, Hour: 24},
		{Mode: AM, Hour: 0},
		{Mode: AM, Hour: 13},
		{Mode: PM, Hour: 0},
		{Mode: PM, Hour: 13},
	}
	for _, h := range invalid {
		_, err := hoursToRegister(h)
		c.Assert(err, qt.Equals, ErrInvalidInputData)
	}

	valid := []struct {
		hours Hours
		data  uint8
	}{
		{Hours{Mode: H24, Hour: 23}, 0x23},
		{Hours{Mode: AM, Hour: 12}, bit1224 | 0x12},
		{Hours{Mode: PM, Hour: 1}, bit1224 | bitAMPM | 0x01},
	}
	for _, tc := range valid {
		data, err := hoursToRegister(tc.hours)
		c.Assert(err, qt.IsNil)
		c.Assert(data, qt.Equals, tc.data)
	}
}
