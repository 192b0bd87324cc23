package domain

import "time"

// A single day's recorded consignment count.
// Zero consignments is valid and means no deliveries were made that day.
type DayRecord struct {
	WorkDate     time.Time
	Consignments int
}
