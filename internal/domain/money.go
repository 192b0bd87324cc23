package domain

import "fmt"

// Currency amount in minor units (1/100 of a pound).
// All payment arithmetic stays in integers; decimal rendering is a
// presentation concern.
type Pence int64

// Times scales a per-consignment rate by a count.
func (p Pence) Times(n int) Pence { return p * Pence(n) }

// GBP renders the amount as a pound string, e.g. 1050 -> "£10.50".
func (p Pence) GBP() string {
	v := int64(p)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s£%d.%02d", sign, v/100, v%100)
}
