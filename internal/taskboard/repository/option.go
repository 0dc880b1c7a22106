package repository

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	State   string   // default "open"
	PerPage int      // default 100
	Labels  []string // server-side label filter (pool lookups)
}
