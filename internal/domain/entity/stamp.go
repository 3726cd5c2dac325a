// Package entity contains the core business objects of the project.
package entity

// StampShape is the outline of the stamp face.
type StampShape string

const (
	ShapeRound     StampShape = "round"
	ShapeSquare    StampShape = "square"
	ShapeRectangle StampShape = "rectangle"
	ShapeOval      StampShape = "oval"
)

// String returns the string representation of the StampShape.
func (s StampShape) String() string {
	return string(s)
}

// IsValid checks if the StampShape is a valid value.
func (s StampShape) IsValid() bool {
	switch s {
	case ShapeRound, ShapeSquare, ShapeRectangle, ShapeOval:
		return true
	default:
		return false
	}
}

// InkColor is the ink the stamp is delivered with.
type InkColor string

const (
	ColorBlack InkColor = "black"
	ColorBlue  InkColor = "blue"
	ColorRed   InkColor = "red"
	ColorGreen InkColor = "green"
)

// String returns the string representation of the InkColor.
func (c InkColor) String() string {
	return string(c)
}

// IsValid checks if the InkColor is a valid value.
func (c InkColor) IsValid() bool {
	switch c {
	case ColorBlack, ColorBlue, ColorRed, ColorGreen:
		return true
	default:
		return false
	}
}

// StampConfiguration is the customer's design for one stamp.
// Once priced and placed in a cart it is treated as an immutable snapshot.
type StampConfiguration struct {
	Shape             StampShape `json:"shape"`
	Color             InkColor   `json:"color"`
	CompanyName       string     `json:"companyName"`
	CompanyNameAr     string     `json:"companyNameAr,omitempty"`
	LicenseNumber     string     `json:"licenseNumber,omitempty"`
	ShowLicenseNumber bool       `json:"showLicenseNumber"`
	Emirate           string     `json:"emirate,omitempty"`
	HasLogo           bool       `json:"hasLogo"`
	TradeLicenseURL   string     `json:"tradeLicenseUrl,omitempty"`
}

// DisplayName is the product name shown on checkout pages and receipts.
func (s StampConfiguration) DisplayName() string {
	name := string(s.Shape) + " Stamp"
	if s.HasLogo {
		name += " with Custom Logo"
	}

	return name
}
