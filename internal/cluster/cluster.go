// Package cluster groups a pre-sorted sequence of items into maximal runs
// of similar footprint area. Clustering never changes item order — it only
// annotates the sequence the driver already committed to so that
// diagnostics and reporting can describe "this run of items had roughly
// the same footprint" without the driver itself branching on it.
package cluster

// Footprint pairs an opaque index with the base area used to cluster it.
type Footprint struct {
	Index int
	Area  float64
}

// Clustered wraps one input item with the index of the footprint cluster it
// was assigned to. Cluster indices increase monotonically with input order;
// they never cause reordering.
type Clustered struct {
	Index        int
	ClusterIndex int
}

// Cluster partitions a footprint-area sequence, already in the driver's
// primary sort order, into maximal contiguous runs whose consecutive
// relative area difference stays within tolerance. tolerance is a fraction
// of the larger of two consecutive areas: areas are folded into the same
// cluster as their predecessor when |a[i] - a[i-1]| / max(a[i], a[i-1]) <=
// tolerance.
func Cluster(areas []Footprint, tolerance float64) []Clustered {
	out := make([]Clustered, len(areas))
	if len(areas) == 0 {
		return out
	}

	clusterIdx := 0
	out[0] = Clustered{Index: areas[0].Index, ClusterIndex: clusterIdx}

	for i := 1; i < len(areas); i++ {
		prev, cur := areas[i-1].Area, areas[i].Area
		if !withinTolerance(prev, cur, tolerance) {
			clusterIdx++
		}
		out[i] = Clustered{Index: areas[i].Index, ClusterIndex: clusterIdx}
	}
	return out
}

func withinTolerance(a, b, tolerance float64) bool {
	denom := a
	if b > denom {
		denom = b
	}
	if denom <= 0 {
		return true
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff/denom <= tolerance
}

// Boundaries returns the index (into the original, order-preserved
// sequence) at which each new cluster begins, for callers that just want
// the split points rather than a per-item label.
func Boundaries(clustered []Clustered) []int {
	var bounds []int
	last := -1
	for i, c := range clustered {
		if c.ClusterIndex != last {
			bounds = append(bounds, i)
			last = c.ClusterIndex
		}
	}
	return bounds
}
