package fraction

// Scene dimensions for the bar, in the same 300×300 user space as the angle
// figure.
const (
	SceneSize   = 300.0
	BarX        = 20.0
	BarY        = 100.0
	BarWidth    = 260.0
	BarHeight   = 100.0
	HandleWidth = 4.0
	MarkerY     = 60.0
	MarkerExtra = 80.0
)

// Dims is the bar layout for one frame.
type Dims struct {
	Width       float64
	Height      float64
	FillWidth   float64
	TargetWidth float64
}

// Bar lays out the filled portion and the target marker.
func Bar(current float64, target Ratio) Dims {
	d := Dims{Width: BarWidth, Height: BarHeight, FillWidth: BarWidth * current}
	if target.Den != 0 {
		d.TargetWidth = BarWidth * float64(target.Num) / float64(target.Den)
	}
	return d
}

// HandleX is the left edge of the drag handle.
func (d Dims) HandleX() float64 { return d.FillWidth + BarX - HandleWidth/2 }

// MarkerX is the left edge of the target marker.
func (d Dims) MarkerX() float64 { return d.TargetWidth + BarX - HandleWidth/2 }

// FromPointer converts a scene x offset into a guess clamped to [0, 1].
func FromPointer(x, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return max(0, min(1, x/width))
}
