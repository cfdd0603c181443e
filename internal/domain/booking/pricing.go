package booking

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Nights rounds any partial day up.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		d = -d
	}

	n := d / day
	if d%day != 0 {
		n++
	}
	return int(n)
}

func TotalPrice(checkIn, checkOut time.Time, basePrice float64) float64 {
	total := float64(Nights(checkIn, checkOut)) * basePrice
	return math.Round(total*100) / 100
}
