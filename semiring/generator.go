package semiring

// Generator produces sample weights on demand. Implementations may be
// stateful (a seeded source) and are owned by a single caller; they are not
// required to be goroutine-safe.
type Generator[W any] interface {
	Generate() W
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc[W any] func() W

// Generate calls f.
func (f GeneratorFunc[W]) Generate() W {
	return f()
}
