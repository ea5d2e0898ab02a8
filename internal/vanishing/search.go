package vanishing

import (
	"vpdetect/pkg/geometry"
)

// CaseCount is the number of groupings EstimateAllCases enumerates.
const CaseCount = 9

// Groupings lists every grouping in the order EstimateAllCases reports
// them: the three pairings, then the six choices of the shared pair for the
// split configuration.
func Groupings() [CaseCount]Grouping {
	return [CaseCount]Grouping{
		PairingAdjacent.Grouping(),
		PairingCross.Grouping(),
		PairingCrossSwapped.Grouping(),
		{Kind: GroupingSplit, Order: [4]int{0, 1, 2, 3}},
		{Kind: GroupingSplit, Order: [4]int{0, 2, 1, 3}},
		{Kind: GroupingSplit, Order: [4]int{0, 3, 1, 2}},
		{Kind: GroupingSplit, Order: [4]int{1, 2, 0, 3}},
		{Kind: GroupingSplit, Order: [4]int{1, 3, 0, 2}},
		{Kind: GroupingSplit, Order: [4]int{2, 3, 0, 1}},
	}
}

// Estimate runs the estimator for grouping g. For split groupings with two
// solutions the one with the smaller focal length is kept; a split grouping
// without a solution yields NaN points and focal length.
func (g Grouping) Estimate(lines Lines, principal geometry.Point2D) Estimate {
	if g.Kind == GroupingSplit {
		solutions := SolveSplit(lines, principal, g.Order)
		if len(solutions) == 0 {
			return undefinedEstimate(g)
		}
		return solutions[0]
	}

	pair := intersectOrdered(lines, g.Order)
	third, focal := CompleteOrthocentric(pair[0], pair[1], principal)
	return Estimate{
		Grouping: g,
		VPs:      [3]geometry.HomogeneousPoint{pair[0], pair[1], third},
		Focal:    focal,
	}
}

// EstimateAllCases runs every grouping and returns exactly CaseCount
// estimates in Groupings order. It does not rank them.
func EstimateAllCases(lines Lines, principal geometry.Point2D) []Estimate {
	groupings := Groupings()
	estimates := make([]Estimate, 0, len(groupings))
	for _, g := range groupings {
		estimates = append(estimates, g.Estimate(lines, principal))
	}
	return estimates
}

// EstimateAllCasesFromSegments is EstimateAllCases on the supporting lines of
// four segments.
func EstimateAllCasesFromSegments(segments [4]geometry.LineSegment, principal geometry.Point2D) []Estimate {
	return EstimateAllCases(LinesFromSegments(segments), principal)
}
