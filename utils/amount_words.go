package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// numberToWords spells a non-negative integer in Indian numbering
// (thousand, lakh, crore).
func numberToWords(num int) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		remainder := num % 100
		if remainder == 0 {
			return ones[num/100] + " Hundred"
		}
		return ones[num/100] + " Hundred " + numberToWords(remainder)
	case num < 100000:
		remainder := num % 1000
		if remainder == 0 {
			return numberToWords(num/1000) + " Thousand"
		}
		return numberToWords(num/1000) + " Thousand " + numberToWords(remainder)
	case num < 10000000:
		remainder := num % 100000
		if remainder == 0 {
			return numberToWords(num/100000) + " Lakh"
		}
		return numberToWords(num/100000) + " Lakh " + numberToWords(remainder)
	default:
		remainder := num % 10000000
		if remainder == 0 {
			return numberToWords(num/10000000) + " Crore"
		}
		return numberToWords(num/10000000) + " Crore " + numberToWords(remainder)
	}
}

// AmountInWords spells a numeric-string amount as rupees and paise for the
// slip. Estimate amounts are stored as strings; anything that does not parse
// comes back empty and the slip simply omits the line.
func AmountInWords(amount string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || value < 0 {
		return ""
	}

	rupees := int(math.Floor(value))
	paise := int(math.Round((value - float64(rupees)) * 100))

	var parts []string
	if rupees > 0 {
		parts = append(parts, fmt.Sprintf("%s Rupees", strings.TrimSpace(numberToWords(rupees))))
	}
	if paise > 0 {
		parts = append(parts, fmt.Sprintf("%s Paise", strings.TrimSpace(numberToWords(paise))))
	}

	if len(parts) == 0 {
		return "Zero Rupees Only"
	}

	return strings.Join(parts, " and ") + " Only"
}
