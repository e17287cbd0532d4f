package main

type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

func NewUnionFind(count int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, count),
		rank:   make([]int, count),
		count:  count,
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// second pass re-points every visited node to the root
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

func (u *UnionFind) Merge(x, y int) {
	rx := u.Find(x)
	ry := u.Find(y)
	if rx == ry {
		return
	}
	if u.rank[rx] < u.rank[ry] {
		u.parent[rx] = ry
	} else if u.rank[rx] > u.rank[ry] {
		u.parent[ry] = rx
	} else {
		u.parent[ry] = rx
		u.rank[rx]++
	}
	u.count--
}

func (u *UnionFind) Count() int {
	return u.count
}
