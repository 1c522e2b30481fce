package profile

// Profiler configures a profiling session.
type Profiler struct {
	Mode  string // one of [Modes]; empty disables profiling
	Path  string // output directory
	Quiet bool   // suppress the profiler's own log output
}

// Option sets a field of a [Profiler].
type Option func(Profiler) Profiler

// New returns a Profiler configured by opts.
func New(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// Start starts profiling and returns a handle for stopping it.
//
// If the binary was built without the pprof tag, or Mode is empty or unknown,
// Start returns a no-op handle. Both Start and Stop are always safely
// callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

// WithMode returns an option that sets the profiling mode.
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.Mode = mode

		return p
	}
}

// WithPath returns an option that sets the profile output directory.
func WithPath(path string) Option {
	return func(p Profiler) Profiler {
		p.Path = path

		return p
	}
}

// WithQuiet returns an option that silences the profiler.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.Quiet = quiet

		return p
	}
}

type ignore struct{}

func (ignore) Stop() {}
