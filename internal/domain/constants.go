package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Field length limits used by input validation
const (
	MaxNameLength        = 120
	MaxEmailLength       = 254
	MaxPhoneLength       = 32
	MaxVehicleNoLength   = 20
	MaxDescriptionLength = 500
)

// Reference prefixes for server-assigned identifiers
const (
	BookingRefPrefix   = "BK-"
	InventoryRefPrefix = "INV-"
	DiscountIDPrefix   = "EMPD-"
)
