package complex

// closureOf computes the closure of cells under the boundary relation of c:
// the smallest set containing cells and closed under "every boundary cell
// of a member is a member", via breadth-first expansion downward through
// dimension. Returns ErrIndexOutOfBounds if a seed cell is outside
// [0, c.Size()).
func closureOf(c Complex, cells []int) (map[int]struct{}, error) {
	seen := make(map[int]struct{}, len(cells))
	queue := make([]int, 0, len(cells))
	for _, x := range cells {
		if _, ok := seen[x]; !ok {
			seen[x] = struct{}{}
			queue = append(queue, x)
		}
	}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		err := c.Column(x, func(y int) {
			if _, ok := seen[y]; !ok {
				seen[y] = struct{}{}
				queue = append(queue, y)
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return seen, nil
}
