package clearing

// PerfectMatching runs Kuhn's augmenting-path algorithm over the
// preference graph and tries to assign every buyer a distinct product
// she maximally prefers.
//
// Returns:
//   - assignment : assignment[i] = product matched to buyer i, or −1 if
//     buyer i could not be matched.
//   - ok         : true iff every buyer is matched (a perfect matching,
//     i.e. a system of distinct representatives exists).
//
// Steps:
//  1. For each buyer i in ascending order, DFS for an augmenting path:
//     a free preferred product, or a matched one whose current owner
//     can be re-routed to an alternative.
//  2. Flip the matching along the path found; otherwise leave i free.
//
// Complexity: O(V·E) = O(n · Σ|prefs[i]|) time, O(n) memory.
func PerfectMatching(prefs [][]int) ([]int, bool) {
	n := len(prefs)
	assignment := make([]int, n) // buyer → product
	owner := make([]int, n)      // product → buyer
	for i := range assignment {
		assignment[i] = -1
		owner[i] = -1
	}

	visited := make([]bool, n) // per-augmentation product marks
	matched := 0
	for i := 0; i < n; i++ {
		for j := range visited {
			visited[j] = false
		}
		if augment(prefs, i, visited, assignment, owner) {
			matched++
		}
	}

	return assignment, matched == n
}

// augment searches for an augmenting path from buyer i and flips the
// matching along it. visited guards products within one search.
func augment(prefs [][]int, i int, visited []bool, assignment, owner []int) bool {
	for _, j := range prefs[i] {
		if visited[j] {
			continue
		}
		visited[j] = true
		if owner[j] < 0 || augment(prefs, owner[j], visited, assignment, owner) {
			assignment[i] = j
			owner[j] = i

			return true
		}
	}

	return false
}

// findViolationMatching is the polynomial Hall check: it computes a
// maximum matching and, when some buyer is left unmatched, extracts a
// Hall violator from her alternating tree.
//
// For an unmatched buyer u, let S be the buyers reachable from u by
// alternating (unmatched, matched) edges and N(S) the products adjacent
// to S. Because no augmenting path exists from u, every product in N(S)
// is matched back into S, so |N(S)| = |S| − 1 < |S|: N(S) is reported
// exactly like a PowerSet violation, ready for ResolveViolation.
//
// Returns (nil, false) when the matching is perfect.
//
// Complexity: O(n · Σ|prefs[i]|) time, O(n) memory.
func findViolationMatching(prefs [][]int) ([]int, bool) {
	n := len(prefs)
	assignment, ok := PerfectMatching(prefs)
	if ok {
		return nil, false
	}

	// Locate one unmatched buyer to root the alternating tree.
	root := -1
	for i, j := range assignment {
		if j < 0 {
			root = i
			break
		}
	}

	// owner[j] = buyer currently holding product j (inverse of assignment).
	owner := make([]int, n)
	for j := range owner {
		owner[j] = -1
	}
	for i, j := range assignment {
		if j >= 0 {
			owner[j] = i
		}
	}

	// BFS over alternating paths: buyer → any preferred product (tree
	// edge), product → its matched owner (matched edge).
	inS := make([]bool, n)     // buyers reached
	inNbhd := make([]bool, n)  // products reached
	queue := []int{root}       // buyer indices
	inS[root] = true
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range prefs[i] {
			if inNbhd[j] {
				continue
			}
			inNbhd[j] = true
			if o := owner[j]; o >= 0 && !inS[o] {
				inS[o] = true
				queue = append(queue, o)
			}
		}
	}

	products := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if inNbhd[j] {
			products = append(products, j)
		}
	}

	return products, true
}
