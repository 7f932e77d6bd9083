package motion

// ChangeEvent is emitted when an animation comes to rest on a snap point.
//
// Emitted by:
//   - Advance: when a tween completes naturally and the rounded index
//     differs from the last reported one (or on every completion when
//     distinct-only reporting is disabled)
//
// NOT emitted by:
//   - an interrupted tween (a new AnimateTo, Track or Interrupt)
//   - SetImmediate and geometry re-mapping
type ChangeEvent struct {
	Index int
}

// AnimateEvent is emitted when an animation toward a snap point starts,
// before the first frame moves the sheet. To is -1 when the target is not
// one of the snap points (the hidden position).
type AnimateEvent struct {
	From int
	To   int
}

// FrameEvent carries the continuously updated position. It is emitted on
// every tween step and every live tracking write.
type FrameEvent struct {
	Position float64
	Index    float64
	Phase    Phase
}
