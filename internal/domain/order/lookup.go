package order

import (
	"strconv"
	"time"
)

// DefaultLookupPass is used when the customer snapshot has no telephone to
// derive a pass from.
const DefaultLookupPass = "9999"

// LookupIdentifier derives the customer-facing lookup key for a
// confirmation number: the order date (yyyyMMdd) followed by the number.
func LookupIdentifier(confirmationNumber int64, orderDate time.Time) string {
	return orderDate.Format("20060102") + strconv.FormatInt(confirmationNumber, 10)
}

// LookupPass derives the low-friction self-service pass: the last four
// digits of the customer's telephone, or a fixed sentinel when absent.
func LookupPass(telephone string) string {
	digits := make([]byte, 0, len(telephone))
	for i := 0; i < len(telephone); i++ {
		if telephone[i] >= '0' && telephone[i] <= '9' {
			digits = append(digits, telephone[i])
		}
	}
	if len(digits) < 4 {
		return DefaultLookupPass
	}
	return string(digits[len(digits)-4:])
}
