package domain

// PhoneShape is the display shape chosen for a phone number.
type PhoneShape string

const (
	// PhoneFixedLine renders as (DD) DDDD-DDDD.
	PhoneFixedLine PhoneShape = "fixed_line"
	// PhoneMobile renders as (DD) DDDDD-DDDD.
	PhoneMobile PhoneShape = "mobile"
)

// Phone digit counts.
const (
	FixedLinePhoneDigits = 10
	MobilePhoneDigits    = 11
)

// PhoneShapeFor selects the phone shape from the digit count of value. Up to ten
// digits is a fixed line, anything longer is a mobile number. The shape is never
// remembered, so deleting a digit switches a mobile number back to fixed line.
func PhoneShapeFor(value string) PhoneShape {
	if CountDigits(value) <= FixedLinePhoneDigits {
		return PhoneFixedLine
	}
	return PhoneMobile
}

// ApplyPhoneMask strips non-digits from value and renders it with the shape picked
// by PhoneShapeFor. Digits beyond the eleventh are dropped.
func ApplyPhoneMask(value string) string {
	digits := ExtractDigits(value)
	if PhoneShapeFor(digits) == PhoneMobile {
		return mobilePattern.apply(digits)
	}
	return fixedLinePattern.apply(digits)
}
