package rotator

// Ease names an easing curve. The names follow the animation vocabulary the
// browser client understands, so cues can be forwarded to it unchanged.
type Ease string

const (
	EaseLinear      Ease = "none"
	EasePower2In    Ease = "power2.in"
	EasePower2Out   Ease = "power2.out"
	EasePower2InOut Ease = "power2.inOut"
)

// Apply maps linear progress t in [0,1] onto the curve. Values outside the
// range are clamped. Unknown names fall back to linear.
func (e Ease) Apply(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	switch e {
	case EasePower2In:
		return t * t * t
	case EasePower2Out:
		return 1 - pow(1-t, 3)
	case EasePower2InOut:
		return easeInOutCubic(t)
	default:
		return t
	}
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
