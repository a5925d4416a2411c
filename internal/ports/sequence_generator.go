package ports

// SequenceGenerator produces sequences to search in.
type SequenceGenerator interface {
	Generate(n int) ([]int, error)
}
