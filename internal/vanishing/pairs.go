package vanishing

import (
	"fmt"

	"vpdetect/pkg/geometry"
)

// Pairing is one of the three ways to split four lines into two pairs.
type Pairing int

const (
	// PairingAdjacent pairs lines 0,1 and 2,3.
	PairingAdjacent Pairing = iota
	// PairingCross pairs lines 0,2 and 1,3.
	PairingCross
	// PairingCrossSwapped pairs lines 0,3 and 1,2.
	PairingCrossSwapped
)

var pairingOrders = [...][4]int{
	PairingAdjacent:     {0, 1, 2, 3},
	PairingCross:        {0, 2, 1, 3},
	PairingCrossSwapped: {0, 3, 1, 2},
}

func (p Pairing) String() string {
	switch p {
	case PairingAdjacent:
		return "adjacent"
	case PairingCross:
		return "cross"
	case PairingCrossSwapped:
		return "cross-swapped"
	default:
		return fmt.Sprintf("Pairing(%d)", int(p))
	}
}

// Grouping returns the pair grouping that p selects.
func (p Pairing) Grouping() Grouping {
	return Grouping{Kind: GroupingPairs, Order: pairingOrders[p]}
}

// IntersectPairs returns the two vanishing points of pairing p: the meet of
// the first pair and the meet of the second.
func IntersectPairs(lines Lines, p Pairing) [2]geometry.HomogeneousPoint {
	return intersectOrdered(lines, pairingOrders[p])
}

func intersectOrdered(lines Lines, o [4]int) [2]geometry.HomogeneousPoint {
	return [2]geometry.HomogeneousPoint{
		geometry.IntersectLines(lines[o[0]], lines[o[1]]),
		geometry.IntersectLines(lines[o[2]], lines[o[3]]),
	}
}

// EstimatePairs intersects the two pairs of pairing p and completes the
// triple with CompleteOrthocentric.
func EstimatePairs(lines Lines, principal geometry.Point2D, p Pairing) Estimate {
	return p.Grouping().Estimate(lines, principal)
}

// EstimateCase1 treats lines 0,1 and lines 2,3 as the two pairs.
func EstimateCase1(lines Lines, principal geometry.Point2D) Estimate {
	return EstimatePairs(lines, principal, PairingAdjacent)
}

// EstimateCase2 treats lines 0,2 and lines 1,3 as the two pairs. The other
// non-adjacent pairing is EstimatePairs with PairingCrossSwapped.
func EstimateCase2(lines Lines, principal geometry.Point2D) Estimate {
	return EstimatePairs(lines, principal, PairingCross)
}
