package keymap

import "fmt"

// Direction is a movement vector attached to a direction binding.
type Direction struct {
	Down  int
	Right int
}

// Mul scales the direction by n. Each component saturates at ±MaxCount
// so a huge count never flips the movement.
func (d Direction) Mul(n int) Direction {
	return Direction{Down: scale(d.Down, n), Right: scale(d.Right, n)}
}

func (d Direction) String() string {
	return fmt.Sprintf("{down:%d right:%d}", d.Down, d.Right)
}

func clampCount(v int) int {
	return max(min(v, MaxCount), -MaxCount)
}

// scale returns v*n clamped to ±MaxCount.
func scale(v, n int) int {
	p := int64(clampCount(v)) * int64(clampCount(n))
	return int(max(min(p, MaxCount), -MaxCount))
}
