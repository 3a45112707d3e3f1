package svgtransform

// Point is a 2D coordinate pair. Points are plain values: the mapping
// methods never mutate their argument and always return a fresh Point.
type Point struct {
	X, Y float64
}
