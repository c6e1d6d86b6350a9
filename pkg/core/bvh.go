package core

import (
	"sort"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Leaf bucket (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// The tree is built once and read-only afterwards, so concurrent traversal
// from many workers needs no synchronization.
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: buckets of this size or smaller use a linear scan
const leafThreshold = 4

// bvhPrimitive pairs a shape with its original scene index so the build
// order is deterministic for a fixed input order.
type bvhPrimitive struct {
	shape Shape
	bbox  AABB
	index int
}

// NewBVH constructs a BVH from a slice of shapes. The input slice is not
// modified; the tree owns its own copy.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}

	prims := make([]bvhPrimitive, len(shapes))
	for i, shape := range shapes {
		prims[i] = bvhPrimitive{shape: shape, bbox: shape.BoundingBox(), index: i}
	}

	return &BVH{Root: buildBVH(prims)}
}

// buildBVH recursively builds the tree by median split along the longest axis
func buildBVH(prims []bvhPrimitive) *BVHNode {
	boundingBox := prims[0].bbox
	for i := 1; i < len(prims); i++ {
		boundingBox = boundingBox.Union(prims[i].bbox)
	}

	if len(prims) <= leafThreshold {
		shapes := make([]Shape, len(prims))
		for i, p := range prims {
			shapes[i] = p.shape
		}
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	// Sort by bbox centroid along the longest axis, breaking centroid ties
	// by original index so the tree is identical for a fixed input order
	axis := boundingBox.LongestAxis()
	sort.Slice(prims, func(i, j int) bool {
		ci := prims[i].bbox.AxisValue(axis)
		cj := prims[j].bbox.AxisValue(axis)
		if ci != cj {
			return ci < cj
		}
		return prims[i].index < prims[j].index
	})

	mid := len(prims) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(prims[:mid]),
		Right:       buildBVH(prims[mid:]),
	}
}

// Hit tests if a ray intersects any shape in the BVH. Results are identical
// to a linear scan over all shapes; the tree only prunes the search.
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.hitNode(bvh.Root, ray, tMin, tMax)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.Shapes != nil {
		var closestHit *HitRecord
		hitAnything := false
		closestSoFar := tMax

		for _, shape := range node.Shapes {
			if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
				hitAnything = true
				closestSoFar = hit.T
				closestHit = hit
			}
		}

		return closestHit, hitAnything
	}

	// Internal node: the left result narrows tMax so the right search is
	// pruned by anything the left already found
	var closestHit *HitRecord
	hitAnything := false
	closestSoFar := tMax

	if node.Left != nil {
		if hit, isHit := bvh.hitNode(node.Left, ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	if node.Right != nil {
		if hit, isHit := bvh.hitNode(node.Right, ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	if bvh.Root == nil {
		return bvhStats{}
	}

	stats := bvhStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	if stats.leafNodes > 0 {
		stats.avgDepth = stats.avgDepth / float64(stats.leafNodes)
	}

	return stats
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	leafNodes   int
	maxDepth    int
	avgDepth    float64
	totalShapes int
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++

	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if node.Shapes != nil {
		stats.leafNodes++
		stats.totalShapes += len(node.Shapes)
		stats.avgDepth += float64(depth)
	} else {
		if node.Left != nil {
			bvh.collectStats(node.Left, depth+1, stats)
		}
		if node.Right != nil {
			bvh.collectStats(node.Right, depth+1, stats)
		}
	}
}
