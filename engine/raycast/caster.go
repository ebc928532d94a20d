package raycast

// RayCaster runs a whole cast in one call.
type RayCaster struct{}

func NewRayCaster() *RayCaster { return &RayCaster{} }

func (*RayCaster) Cast(world World, p Parameters, shouldContinue ContinueFunc) Result {
	r, t := start(p)
	for shouldContinue(r) {
		r = advance(world, p, t, r)
		if !world.InMap(r.MapHit) {
			break
		}
	}
	r.IsComplete = true
	return r
}

// StepRayCaster advances a single ray by one grid cell per Cast call so the
// traversal can be watched. Parameters after the first call are ignored until
// Stop resets it.
type StepRayCaster struct {
	params  Parameters
	trav    traversal
	result  *Result
	visited []Result
}

func NewStepRayCaster() *StepRayCaster { return &StepRayCaster{} }

func (s *StepRayCaster) Start(p Parameters) {
	r, t := start(p)
	s.params = p
	s.trav = t
	s.result = &r
	s.visited = s.visited[:0]
}

// Stop discards the ray in progress.
func (s *StepRayCaster) Stop() {
	s.result = nil
	s.visited = s.visited[:0]
}

// Result returns the ray in progress, if any.
func (s *StepRayCaster) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

func (s *StepRayCaster) IsComplete() bool {
	return s.result != nil && s.result.IsComplete
}

// MapSquaresTested lists every cell examined so far, in visiting order.
func (s *StepRayCaster) MapSquaresTested() []Result {
	out := make([]Result, len(s.visited))
	copy(out, s.visited)
	return out
}

func (s *StepRayCaster) Cast(world World, p Parameters, shouldContinue ContinueFunc) Result {
	if s.result == nil {
		s.Start(p)
	}
	if s.result.IsComplete {
		return *s.result
	}

	r := *s.result
	if shouldContinue(r) {
		r = advance(world, s.params, s.trav, r)
		s.visited = append(s.visited, r)
	}
	r.IsComplete = !shouldContinue(r) || !world.InMap(r.MapHit)
	s.result = &r
	return r
}
