package component

import "penguin-patrol/internal/ecs"

const (
	CSprite    ecs.ComponentType = 6
	CAnimation ecs.ComponentType = 7
)

// Sprite references a registered texture by key. The key is resolved by
// the presentation layer; the simulation never inspects it.
type Sprite struct {
	Key   string
	Frame int
}

func (Sprite) Type() ecs.ComponentType { return CSprite }

// Animation cycles a sprite through TotalFrames frames, FrameTime seconds each.
type Animation struct {
	TotalFrames int
	FrameTime   float64
	Countdown   float64 // seconds left on the current frame
	Current     int
}

// NewAnimation returns an animation positioned on its first frame.
func NewAnimation(frames int, frameTime float64) Animation {
	return Animation{TotalFrames: frames, FrameTime: frameTime, Countdown: frameTime}
}

func (Animation) Type() ecs.ComponentType { return CAnimation }
