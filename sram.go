package mcp794xx

// The MCP794xx chips carry 64 bytes of SRAM at 0x20-0x5F, kept alive by the
// battery backup supply alongside the clock.

// ReadSRAMByte reads one byte of battery-backed SRAM.
func (d *Device) ReadSRAMByte(address uint8) (uint8, error) {
	if address < SRAMStart || address > SRAMEnd {
		return 0, ErrInvalidInputData
	}
	return d.iface.ReadRegister(address)
}

// WriteSRAMByte writes one byte of battery-backed SRAM.
func (d *Device) WriteSRAMByte(address uint8, value uint8) error {
	if address < SRAMStart || address > SRAMEnd {
		return ErrInvalidInputData
	}
	return d.iface.WriteRegister(address, value)
}

// ReadSRAM burst-reads len(data) bytes of SRAM starting at address. The
// whole run must lie within the SRAM window.
func (d *Device) ReadSRAM(address uint8, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := checkSRAMRange(address, len(data))
	if err != nil {
		return err
	}
	buf := make([]byte, len(data)+1)
	buf[0] = address
	err = d.iface.ReadData(buf)
	if err != nil {
		return err
	}
	copy(data, buf[1:])
	return nil
}

// WriteSRAM burst-writes data to SRAM starting at address. The whole run
// must lie within the SRAM window.
func (d *Device) WriteSRAM(address uint8, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := checkSRAMRange(address, len(data))
	if err != nil {
		return err
	}
	buf := make([]byte, len(data)+1)
	buf[0] = address
	copy(buf[1:], data)
	return d.iface.WriteData(buf)
}

func checkSRAMRange(address uint8, n int) error {
	if address < SRAMStart || address > SRAMEnd || int(address)+n-1 > SRAMEnd {
		return ErrInvalidInputData
	}
	return nil
}
