package client

import "fmt"

// FailedToRetrievePriceError is returned when a price conversion requires
// an FX rate that the API did not have for the requested date
type FailedToRetrievePriceError struct {
	QuoteCurrencyID string
	Date            string
}

func (e *FailedToRetrievePriceError) Error() string {
	return fmt.Sprintf("failed to retrieve price of %s as of %s", e.QuoteCurrencyID, e.Date)
}
