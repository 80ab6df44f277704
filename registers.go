package mcp794xx

const (
	// Address is the fixed I2C address of the MCP794xx family (0b110_1111).
	Address = 0x6F

	RegSeconds = 0x00 // seconds, bit 7 = oscillator start (ST)
	RegMinutes = 0x01 // minutes
	RegHours   = 0x02 // hours, bit 6 = 12/24 select, bit 5 = AM/PM
	RegWeekday = 0x03 // weekday in bits 0-2, plus VBATEN/PWRFAIL/OSCRUN
	RegDate    = 0x04 // day of month
	RegMonth   = 0x05 // month, bit 5 = leap year flag
	RegYear    = 0x06 // two-digit year, offset +2000

	// SRAMStart and SRAMEnd bound the battery-backed SRAM window.
	SRAMStart = 0x20
	SRAMEnd   = 0x5F
)

// Bit layout of the registers above. OSCRUN and the AM/PM flag share a bit
// position but live in different registers.
const (
	bitST       = 0b1000_0000 // RegSeconds: oscillator start
	bit1224     = 0b0100_0000 // RegHours: 12-hour mode when set
	bitAMPM     = 0b0010_0000 // RegHours: PM when set, 12-hour mode only
	bitOSCRUN   = 0b0010_0000 // RegWeekday: oscillator running status
	bitPWRFAIL  = 0b0001_0000 // RegWeekday: primary power was lost
	bitVBATEN   = 0b0000_1000 // RegWeekday: battery backup enable
	bitLPYR     = 0b0010_0000 // RegMonth: current year is a leap year
	maskWeekday = 0b0000_0111 // RegWeekday: weekday sub-field
)
