package scene

// Per-frame animation steps, in radians or world units per frame.
const (
	SpinYStep  float32 = 0.0002
	SpinZStep  float32 = 0.001
	DriftXStep float32 = 0.0002
)

// Behavior tags a model with its per-frame animation rule. Behaviors are
// assigned at construction, so animation no longer depends on a model's
// position in the scene collection.
type Behavior int

const (
	// BehaviorNone leaves the pose untouched.
	BehaviorNone Behavior = iota
	// BehaviorSpinY slowly rotates around the Y axis.
	BehaviorSpinY
	// BehaviorSpinZ slowly rotates around the Z axis.
	BehaviorSpinZ
	// BehaviorDriftX slides along the negative X axis.
	BehaviorDriftX
)

// String returns the behavior name for logs.
func (b Behavior) String() string {
	switch b {
	case BehaviorNone:
		return "none"
	case BehaviorSpinY:
		return "spin-y"
	case BehaviorSpinZ:
		return "spin-z"
	case BehaviorDriftX:
		return "drift-x"
	default:
		return "unknown"
	}
}

// Apply advances the model's pose by one frame step.
func (b Behavior) Apply(m *Model) {
	switch b {
	case BehaviorSpinY:
		o := m.Orientation()
		o.Y += SpinYStep
		m.SetOrientation(o)
	case BehaviorSpinZ:
		o := m.Orientation()
		o.Z += SpinZStep
		m.SetOrientation(o)
	case BehaviorDriftX:
		p := m.Position()
		p.X -= DriftXStep
		m.SetPosition(p)
	}
}
