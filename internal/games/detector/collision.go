package detector

// Overlaps reports whether the body touches the item. Both boxes are shrunk
// by margin on every side first, and edges that only touch do not count.
func Overlaps(body *PhysicsBody, item Item, margin float64) bool {
	return body.Box().Shrink(margin).Intersects(item.Box().Shrink(margin))
}
