package params

// State is the surface's pipeline state.
type State uint8

const (
	// StateIdle means the last pipeline run matches the current parameters.
	StateIdle State = iota
	// StateDirty means a mutation happened and the pipeline is rerunning.
	StateDirty
)

func (s State) String() string {
	if s == StateDirty {
		return "dirty"
	}
	return "idle"
}

// Surface owns the current parameters and reruns the pipeline on every
// mutation. It is not safe for concurrent use; callers drive it from a
// single event loop.
type Surface struct {
	p        Parameters
	state    State
	runs     uint64
	onChange func(Parameters) error
}

// NewSurface returns a surface holding p (clamped). onChange is called
// synchronously with the new parameters after every mutation.
func NewSurface(p Parameters, onChange func(Parameters) error) *Surface {
	return &Surface{p: p.Clamp(), onChange: onChange}
}

func (s *Surface) Params() Parameters { return s.p }
func (s *Surface) State() State       { return s.state }

// Runs returns how many times the pipeline ran.
func (s *Surface) Runs() uint64 { return s.runs }

// Set replaces the parameters and reruns the pipeline. Setting a value equal
// to the current one still counts as a mutation.
func (s *Surface) Set(p Parameters) error {
	s.p = p.Clamp()
	return s.run()
}

// Update applies fn to a copy of the current parameters and Sets the result.
func (s *Surface) Update(fn func(*Parameters)) error {
	p := s.p
	fn(&p)
	return s.Set(p)
}

// Step moves one control by one step.
func (s *Surface) Step(c Control, dir int) error {
	return s.Set(c.Step(s.p, dir))
}

// Refresh reruns the pipeline without changing the parameters.
func (s *Surface) Refresh() error {
	return s.run()
}

func (s *Surface) run() error {
	s.state = StateDirty
	defer func() { s.state = StateIdle }()
	s.runs++
	if s.onChange == nil {
		return nil
	}
	return s.onChange(s.p)
}
