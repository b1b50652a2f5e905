package utils

import "github.com/shopspring/decimal"

const rupeeSign = "₹"

// CentsToRupees converts minor units (paise) to rupees rounded to 2 places.
func CentsToRupees(cents int64) decimal.Decimal {
	return decimal.New(cents, -2).Round(2)
}

func FormatRupees(cents int64) string {
	return rupeeSign + CentsToRupees(cents).StringFixed(2)
}
