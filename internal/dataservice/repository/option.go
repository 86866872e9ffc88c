package repository

// ListOptions selects records of one entity. Results are ordered by id.
type ListOptions struct {
	Entity string
	Equals map[string]any // Field equality pushed down to the store, optional
}
