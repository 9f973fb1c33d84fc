package core

import "strconv"

// Color is a terminal color for a screen cell.
// The zero value is the terminal default; other values wrap an ANSI 256-color code.
type Color uint16

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = 0

// ANSI returns the Color for an ANSI 256-color code.
func ANSI(code uint8) Color {
	return Color(code) + 1
}

// Code returns the ANSI 256-color code and false for ColorDefault.
func (c Color) Code() (uint8, bool) {
	if c == ColorDefault {
		return 0, false
	}
	return uint8(c - 1), true
}

// String returns the ANSI code as a decimal string, or "" for ColorDefault.
// This is the form lipgloss.Color expects.
func (c Color) String() string {
	code, ok := c.Code()
	if !ok {
		return ""
	}
	return strconv.Itoa(int(code))
}
