// Package live drives the home page hero rotator over a WebSocket. Each
// connection owns one rotator; the page reports which slides it rendered and
// the server tells it when to play each part of a transition.
package live

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ppmconsultants/ppmsite/internal/analytics"
	"github.com/ppmconsultants/ppmsite/internal/rotator"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 1024
	sendBuffer     = 64
)

// EventRecorder records visitor interactions. analytics.Tracker satisfies it.
type EventRecorder interface {
	TrackEvent(ctx context.Context, ev analytics.Event) error
}

// Options configures the hero channel.
type Options struct {
	Interval        time.Duration
	Timeline        rotator.Timeline
	Scheduler       rotator.Scheduler
	AllowAllOrigins bool
	Events          EventRecorder
	Logger          *zap.Logger
}

// Hero serves the /ws/hero endpoint.
type Hero struct {
	slides   func() []rotator.Slide
	opts     Options
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[*session]struct{}
}

// NewHero creates the channel. slides is called when a page mounts so every
// connection gets the copy that was live at that moment.
func NewHero(slides func() []rotator.Slide, opts Options) *Hero {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeline.Tweens == nil {
		opts.Timeline = rotator.HeroTimeline()
	}
	h := &Hero{slides: slides, opts: opts, logger: logger, sessions: map[*session]struct{}{}}
	h.upgrader = websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024}
	if opts.AllowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// Active returns the number of open connections.
func (h *Hero) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// CloseAll drops every open connection. Pages reconnect on their own.
func (h *Hero) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.sessions {
		s.conn.Close()
	}
}

func (h *Hero) track(s *session) {
	h.mu.Lock()
	h.sessions[s] = struct{}{}
	h.mu.Unlock()
}

func (h *Hero) untrack(s *session) {
	h.mu.Lock()
	delete(h.sessions, s)
	h.mu.Unlock()
}

func (h *Hero) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("hero websocket upgrade", zap.Error(err))
		return
	}

	s := &session{
		id:     uuid.New().String(),
		hero:   h,
		conn:   conn,
		send:   make(chan any, sendBuffer),
		done:   make(chan struct{}),
		ctx:    r.Context(),
		logger: h.logger,
	}
	s.logger = h.logger.With(zap.String("session", s.id))

	h.track(s)
	defer h.untrack(s)
	s.logger.Debug("hero connected", zap.String("remote", r.RemoteAddr))

	s.wg.Add(1)
	go s.writeLoop()
	s.readLoop()
	s.close()
	s.logger.Debug("hero disconnected")
}

type session struct {
	id     string
	hero   *Hero
	conn   *websocket.Conn
	send   chan any
	done   chan struct{}
	ctx    context.Context
	logger *zap.Logger
	wg     sync.WaitGroup

	// Touched only by the read loop.
	rot      *rotator.Rotator
	rendered int
}

func (s *session) readLoop() {
	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("hero read", zap.Error(err))
			}
			return
		}

		var req request
		if err := json.Unmarshal(data, &req); err != nil {
			s.enqueue(errorMessage("invalid message format"))
			continue
		}
		s.handle(req)
	}
}

func (s *session) handle(req request) {
	switch req.Type {
	case TypeMount:
		s.mount(req)
	case TypeGoTo:
		if s.rot == nil {
			s.enqueue(errorMessage("not mounted"))
			return
		}
		if req.Index == nil {
			s.enqueue(errorMessage("index is required"))
			return
		}
		started, err := s.rot.GoTo(*req.Index)
		if err != nil {
			s.enqueue(errorMessage(err.Error()))
			return
		}
		if started {
			s.record("goto", strconv.Itoa(*req.Index))
		}
	case TypeNext:
		if s.rot == nil {
			s.enqueue(errorMessage("not mounted"))
			return
		}
		if s.rot.Advance() {
			s.record("next", "")
		}
	case TypePrev:
		if s.rot == nil {
			s.enqueue(errorMessage("not mounted"))
			return
		}
		if s.rot.Previous() {
			s.record("prev", "")
		}
	default:
		s.enqueue(errorMessage("unknown message type: " + req.Type))
	}
}

func (s *session) mount(req request) {
	if s.rot != nil {
		s.enqueue(errorMessage("already mounted"))
		return
	}
	slides := s.hero.slides()
	s.rendered = len(slides)
	if req.Rendered != nil {
		if *req.Rendered < 0 {
			s.enqueue(errorMessage("rendered must not be negative"))
			return
		}
		s.rendered = *req.Rendered
	}

	opts := []rotator.Option{
		rotator.WithInterval(s.hero.opts.Interval),
		rotator.WithTimeline(s.hero.opts.Timeline),
		rotator.WithSurface(s),
		rotator.WithLogger(s.logger),
	}
	if s.hero.opts.Scheduler != nil {
		opts = append(opts, rotator.WithScheduler(s.hero.opts.Scheduler))
	}
	n := len(slides)
	opts = append(opts, rotator.WithOnChange(func(st rotator.State) {
		s.enqueue(stateMessage(s.id, n, st))
	}))

	rot, err := rotator.New(slides, opts...)
	if err != nil {
		s.enqueue(errorMessage(err.Error()))
		return
	}
	s.rot = rot
	rot.Start()
	s.logger.Debug("hero mounted", zap.Int("slides", n), zap.Int("rendered", s.rendered))
}

// HasTarget reports whether the page rendered the slide at index.
func (s *session) HasTarget(index int) bool {
	return index >= 0 && index < s.rendered
}

// Cue forwards a timeline cue to the page.
func (s *session) Cue(ev rotator.CueEvent) {
	s.enqueue(cueMessage(ev))
}

// enqueue never blocks; a client that falls this far behind loses messages.
func (s *session) enqueue(msg any) {
	select {
	case s.send <- msg:
	case <-s.done:
	default:
		s.logger.Warn("hero send buffer full, dropping message")
	}
}

func (s *session) record(action, label string) {
	if s.hero.opts.Events == nil {
		return
	}
	ev := analytics.Event{Category: "hero", Action: action, Label: label}
	if err := s.hero.opts.Events.TrackEvent(s.ctx, ev); err != nil {
		s.logger.Warn("recording hero event", zap.Error(err))
	}
}

func (s *session) writeLoop() {
	defer s.wg.Done()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case msg := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(msg); err != nil {
				s.logger.Debug("hero write", zap.Error(err))
				s.conn.Close()
				return
			}
		case <-ping.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.conn.Close()
				return
			}
		}
	}
}

// close unmounts the rotator and stops the writer. No rotator callback can
// enqueue after rot.Close returns.
func (s *session) close() {
	if s.rot != nil {
		s.rot.Close()
	}
	close(s.done)
	s.wg.Wait()
	s.conn.Close()
}
