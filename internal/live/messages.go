package live

import "github.com/ppmconsultants/ppmsite/internal/rotator"

// Inbound message types.
const (
	TypeMount = "mount"
	TypeGoTo  = "goto"
	TypeNext  = "next"
	TypePrev  = "prev"
)

// Outbound message types.
const (
	TypeState = "state"
	TypeCue   = "cue"
	TypeError = "error"
)

type request struct {
	Type     string `json:"type"`
	Rendered *int   `json:"rendered,omitempty"`
	Index    *int   `json:"index,omitempty"`
}

// StateMessage reports the rotator state after every change.
type StateMessage struct {
	Type          string `json:"type"`
	Session       string `json:"session"`
	Slides        int    `json:"slides"`
	ActiveIndex   int    `json:"active_index"`
	Transitioning bool   `json:"transitioning"`
	TargetIndex   int    `json:"target_index"`
}

// CueMessage tells the page to start one part of a transition. Times are in
// milliseconds from the start of the transition.
type CueMessage struct {
	Type       string         `json:"type"`
	Cue        string         `json:"cue"`
	Target     rotator.Target `json:"target,omitempty"`
	From       int            `json:"from"`
	To         int            `json:"to"`
	AtMS       int64          `json:"at_ms"`
	DurationMS int64          `json:"duration_ms"`
	Tween      *TweenMessage  `json:"tween,omitempty"`
	Slide      *rotator.Slide `json:"slide,omitempty"`
}

// TweenMessage is a rotator.Tween with durations in milliseconds.
type TweenMessage struct {
	DurationMS int64         `json:"duration_ms"`
	StaggerMS  int64         `json:"stagger_ms,omitempty"`
	Count      int           `json:"count,omitempty"`
	From       rotator.Props `json:"from"`
	To         rotator.Props `json:"to"`
	Ease       rotator.Ease  `json:"ease"`
}

// ErrorMessage reports a request the server could not act on.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func stateMessage(session string, slides int, st rotator.State) StateMessage {
	return StateMessage{
		Type:          TypeState,
		Session:       session,
		Slides:        slides,
		ActiveIndex:   st.ActiveIndex,
		Transitioning: st.Transitioning,
		TargetIndex:   st.Target,
	}
}

func cueMessage(ev rotator.CueEvent) CueMessage {
	m := CueMessage{
		Type:       TypeCue,
		Cue:        ev.Name,
		Target:     ev.Target,
		From:       ev.From,
		To:         ev.To,
		AtMS:       ev.At.Milliseconds(),
		DurationMS: ev.Duration.Milliseconds(),
	}
	if ev.Tween != nil {
		m.Tween = &TweenMessage{
			DurationMS: ev.Tween.Duration.Milliseconds(),
			StaggerMS:  ev.Tween.Stagger.Milliseconds(),
			Count:      ev.Tween.Count,
			From:       ev.Tween.From,
			To:         ev.Tween.To,
			Ease:       ev.Tween.Ease,
		}
	}
	if ev.Name == rotator.CueSwap {
		slide := ev.Slide
		m.Slide = &slide
	}
	return m
}

func errorMessage(msg string) ErrorMessage {
	return ErrorMessage{Type: TypeError, Message: msg}
}
