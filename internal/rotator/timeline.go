package rotator

import (
	"sort"
	"time"
)

// Target identifies the visual element a tween animates.
type Target string

const (
	TargetCaption      Target = "caption"
	TargetIncoming     Target = "incoming"
	TargetOutgoing     Target = "outgoing"
	TargetIndicatorOut Target = "indicator-out"
	TargetIndicatorIn  Target = "indicator-in"
)

// Cue names. CueSwap has no tween; it marks the moment the caption text is
// replaced with the target slide's title and subtitle.
const (
	CueContentOut = "content-out"
	CueSwap       = "content-swap"
	CueSlideIn    = "slide-in"
	CueSlideOut   = "slide-out"
	CueContentIn  = "content-in"
	CueIndicator  = "indicator"
)

// Props is the animatable state of one element.
type Props struct {
	Opacity float64 `json:"opacity"`
	Scale   float64 `json:"scale"`
	Y       float64 `json:"y"`
}

// Tween interpolates one target from From to To. Staggered tweens animate
// Count children, child k starting Stagger*k after Start.
type Tween struct {
	Cue      string        `json:"cue"`
	Target   Target        `json:"target"`
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
	Stagger  time.Duration `json:"stagger,omitempty"`
	Count    int           `json:"count,omitempty"`
	From     Props         `json:"from"`
	To       Props         `json:"to"`
	Ease     Ease          `json:"ease"`
}

// Span is the time from the first child starting to the last child ending.
func (tw Tween) Span() time.Duration {
	if tw.Count > 1 {
		return tw.Duration + tw.Stagger*time.Duration(tw.Count-1)
	}
	return tw.Duration
}

// End is the offset at which the tween finishes.
func (tw Tween) End() time.Duration {
	return tw.Start + tw.Span()
}

// At returns the interpolated props at offset t from the transition start.
func (tw Tween) At(t time.Duration) Props {
	span := tw.Span()
	var p float64
	switch {
	case t <= tw.Start:
		p = 0
	case t >= tw.Start+span || span <= 0:
		p = 1
	default:
		p = float64(t-tw.Start) / float64(span)
	}
	e := tw.Ease.Apply(p)
	return Props{
		Opacity: lerp(tw.From.Opacity, tw.To.Opacity, e),
		Scale:   lerp(tw.From.Scale, tw.To.Scale, e),
		Y:       lerp(tw.From.Y, tw.To.Y, e),
	}
}

// Cue is a scheduled point on a timeline.
type Cue struct {
	Name     string        `json:"name"`
	Target   Target        `json:"target,omitempty"`
	At       time.Duration `json:"at"`
	Duration time.Duration `json:"duration"`
	Tween    *Tween        `json:"tween,omitempty"`
}

// Timeline is the ordered set of tweens making up one slide transition.
type Timeline struct {
	Tweens []Tween
	// Swap is the offset at which the caption content is replaced.
	Swap time.Duration
}

// Frame maps each animated target to its props at some instant.
type Frame map[Target]Props

// HeroTimeline is the crossfade used by the home page hero: the caption
// fades up and out, its text swaps while invisible, the incoming slide
// scales down into view while the outgoing one shrinks away, the caption
// returns and the indicator dots trade emphasis.
func HeroTimeline() Timeline {
	const ms = time.Millisecond
	shown := Props{Opacity: 1, Scale: 1, Y: 0}
	lifted := Props{Opacity: 0, Scale: 1, Y: -30}

	contentOut := Tween{
		Cue: CueContentOut, Target: TargetCaption,
		Start: 0, Duration: 500 * ms, Stagger: 100 * ms, Count: 3,
		From: shown, To: lifted, Ease: EasePower2In,
	}
	swap := contentOut.End()

	slideIn := Tween{
		Cue: CueSlideIn, Target: TargetIncoming,
		Start: swap, Duration: 1500 * ms,
		From: Props{Opacity: 0, Scale: 1.05}, To: Props{Opacity: 1, Scale: 1},
		Ease: EasePower2InOut,
	}
	slideOut := Tween{
		Cue: CueSlideOut, Target: TargetOutgoing,
		Start: slideIn.End() - 1500*ms, Duration: 1300 * ms,
		From: Props{Opacity: 1, Scale: 1}, To: Props{Opacity: 0, Scale: 0.95},
		Ease: EasePower2InOut,
	}
	contentIn := Tween{
		Cue: CueContentIn, Target: TargetCaption,
		Start: slideIn.End() - 800*ms, Duration: 700 * ms, Stagger: 100 * ms, Count: 3,
		From: lifted, To: shown, Ease: EasePower2Out,
	}
	indicatorAt := contentIn.End() - 1000*ms
	indicatorOut := Tween{
		Cue: CueIndicator, Target: TargetIndicatorOut,
		Start: indicatorAt, Duration: 400 * ms,
		From: Props{Opacity: 1, Scale: 1.25}, To: Props{Opacity: 0.4, Scale: 1},
		Ease: EaseLinear,
	}
	indicatorIn := Tween{
		Cue: CueIndicator, Target: TargetIndicatorIn,
		Start: indicatorAt, Duration: 400 * ms,
		From: Props{Opacity: 0.4, Scale: 1}, To: Props{Opacity: 1, Scale: 1.25},
		Ease: EaseLinear,
	}

	return Timeline{
		Tweens: []Tween{contentOut, slideIn, slideOut, contentIn, indicatorOut, indicatorIn},
		Swap:   swap,
	}
}

// Duration is the offset of the latest tween end.
func (tl Timeline) Duration() time.Duration {
	d := tl.Swap
	for _, tw := range tl.Tweens {
		if end := tw.End(); end > d {
			d = end
		}
	}
	return d
}

// Scaled returns a copy with every offset and duration multiplied by f.
// A non-positive factor yields a zero-length timeline.
func (tl Timeline) Scaled(f float64) Timeline {
	if f < 0 {
		f = 0
	}
	scale := func(d time.Duration) time.Duration { return time.Duration(float64(d) * f) }
	out := Timeline{Swap: scale(tl.Swap), Tweens: make([]Tween, len(tl.Tweens))}
	for i, tw := range tl.Tweens {
		tw.Start = scale(tw.Start)
		tw.Duration = scale(tw.Duration)
		tw.Stagger = scale(tw.Stagger)
		out.Tweens[i] = tw
	}
	return out
}

// Sample returns the props of every target at offset t. When several tweens
// animate the same target, the latest one that has started wins; before any
// has started the earliest one supplies the starting props.
func (tl Timeline) Sample(t time.Duration) Frame {
	chosen := make(map[Target]Tween)
	for _, tw := range tl.Tweens {
		cur, ok := chosen[tw.Target]
		if !ok || sampleBefore(cur, tw, t) {
			chosen[tw.Target] = tw
		}
	}
	frame := make(Frame, len(chosen))
	for target, tw := range chosen {
		frame[target] = tw.At(t)
	}
	return frame
}

// sampleBefore reports whether next should replace cur when sampling at t.
func sampleBefore(cur, next Tween, t time.Duration) bool {
	curStarted, nextStarted := cur.Start <= t, next.Start <= t
	switch {
	case nextStarted && curStarted:
		return next.Start > cur.Start
	case nextStarted:
		return true
	case curStarted:
		return false
	}
	return next.Start < cur.Start
}

// Cues lists the tween starts and the content swap, ordered by offset.
// Cues sharing an offset keep their declaration order with the swap first.
func (tl Timeline) Cues() []Cue {
	cues := make([]Cue, 0, len(tl.Tweens)+1)
	cues = append(cues, Cue{Name: CueSwap, Target: TargetCaption, At: tl.Swap})
	for i := range tl.Tweens {
		tw := tl.Tweens[i]
		cues = append(cues, Cue{
			Name:     tw.Cue,
			Target:   tw.Target,
			At:       tw.Start,
			Duration: tw.Span(),
			Tween:    &tw,
		})
	}
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].At < cues[j].At })
	return cues
}
