package tinky

import "fmt"

// Percent is a percentage value, e.g. Percent(12.5) is 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", p)
}
