package gesture

import (
	"log/slog"
	"time"

	"github.com/llehouerou/sheet/internal/snap"
)

// DefaultProjection is how far ahead, in seconds, the release velocity is
// projected when choosing a snap point.
const DefaultProjection = 0.2

// Mover is the position owner a Handler drives. *motion.Machine implements it.
type Mover interface {
	Position() float64
	Geometry() *snap.Geometry
	Track(value float64)
	Interrupt()
	AnimateTo(target float64, now time.Time)
}

// Content is the scrollable side of content drags.
type Content interface {
	ContentOffsetY() float64
	ScrollTo(offset float64)
}

// Handler maps pointer samples onto a Mover. It keeps at most one session
// per source and, like the Mover, belongs to a single goroutine.
type Handler struct {
	mover      Mover
	content    Content
	projection float64
	logger     *slog.Logger
	sessions   map[Source]*Session
}

// NewHandler creates a handler. content may be nil when the sheet has no
// scrollable child; a nil logger discards output.
func NewHandler(mover Mover, content Content, projection float64, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		mover:      mover,
		content:    content,
		projection: projection,
		logger:     logger,
		sessions:   make(map[Source]*Session),
	}
}

// SetProjection changes the release projection window.
func (h *Handler) SetProjection(seconds float64) {
	h.projection = seconds
}

// Active reports whether a drag from src is in progress.
func (h *Handler) Active(src Source) bool {
	_, ok := h.sessions[src]
	return ok
}

// Session returns a copy of the session for src.
func (h *Handler) Session(src Source) (Session, bool) {
	s, ok := h.sessions[src]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Handle applies one sample. A Changed or Ended sample without a preceding
// Began opens a session implicitly.
func (h *Handler) Handle(s Sample, now time.Time) {
	switch s.Phase {
	case PhaseBegan:
		h.begin(s.Source)
	case PhaseChanged:
		sess := h.session(s.Source)
		sess.Phase = PhaseChanged
		h.step(sess, s)
	case PhaseEnded, PhaseCancelled:
		h.release(h.session(s.Source), s, now)
		delete(h.sessions, s.Source)
	}
}

func (h *Handler) session(src Source) *Session {
	if sess, ok := h.sessions[src]; ok {
		return sess
	}
	return h.begin(src)
}

func (h *Handler) begin(src Source) *Session {
	h.mover.Interrupt()
	sess := &Session{
		StartPosition: h.mover.Position(),
		Phase:         PhaseBegan,
	}
	sess.virtual = sess.StartPosition
	if src == SourceContent && h.content != nil {
		sess.StartContentOffset = h.content.ContentOffsetY()
	}
	h.sessions[src] = sess
	return sess
}

// step applies the translation moved since the previous sample and returns
// the sheet position the drag now points at.
//
// For content drags a scrolled list takes the movement first: upward
// movement scrolls it further and leaves the sheet alone, downward
// movement scrolls it back toward the top before the sheet follows. An
// upward overshoot past the top of the sheet continues into the list.
func (h *Handler) step(sess *Session, s Sample) float64 {
	g := h.mover.Geometry()
	delta := s.TranslationY - sess.lastTranslation
	sess.lastTranslation = s.TranslationY
	if delta == 0 {
		return g.Clamp(sess.virtual)
	}

	scrolls := s.Source == SourceContent && h.content != nil
	if scrolls {
		if offset := h.content.ContentOffsetY(); offset > 0 {
			if delta < 0 {
				h.content.ScrollTo(offset - delta)
				return g.Clamp(sess.virtual)
			}
			taken := min(delta, offset)
			h.content.ScrollTo(offset - taken)
			delta -= taken
		}
	}

	sess.virtual += delta
	if scrolls && sess.virtual < 0 {
		h.content.ScrollTo(h.content.ContentOffsetY() - sess.virtual)
		sess.virtual = 0
	}
	pos := g.Clamp(sess.virtual)
	h.mover.Track(pos)
	return pos
}

func (h *Handler) release(sess *Session, s Sample, now time.Time) {
	candidate := h.step(sess, s)
	projected := candidate + s.VelocityY*h.projection
	index, target := h.mover.Geometry().Nearest(projected)

	h.logger.Debug("gesture released",
		"source", s.Source.String(),
		"phase", s.Phase.String(),
		"translation", s.TranslationY,
		"candidate", candidate,
		"velocity", s.VelocityY,
		"projected", projected,
		"index", index,
	)
	h.mover.AnimateTo(target, now)
}
