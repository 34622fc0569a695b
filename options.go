package nvmelint

// defaultWorkers sizes the page and table pools when the caller does not
// choose.
const defaultWorkers = 10

// lintOptions holds the configuration accumulated by a Linter chain.
type lintOptions struct {
	// Figure selection
	targets []int // validate only these figures, empty means all
	ignores []int // never validate these figures, wins over targets

	// Processing options
	workers  int
	yamlPath string // dump extracted table content here, empty disables
	ocr      bool   // recover captions from pages without a text layer
}

// defaultOptions returns the default lint options.
func defaultOptions() lintOptions {
	return lintOptions{
		workers: defaultWorkers,
	}
}

// clone creates a deep copy of lintOptions.
func (o lintOptions) clone() lintOptions {
	newOpts := o

	if o.targets != nil {
		newOpts.targets = make([]int, len(o.targets))
		copy(newOpts.targets, o.targets)
	}
	if o.ignores != nil {
		newOpts.ignores = make([]int, len(o.ignores))
		copy(newOpts.ignores, o.ignores)
	}

	return newOpts
}
