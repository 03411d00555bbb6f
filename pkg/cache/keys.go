package cache

// Keyer generates cache keys for the artifact types catwalk stores.
// Implementations must be deterministic: equal inputs yield equal keys.
type Keyer interface {
	// GraphKey identifies a built category graph by its snapshot content
	// hash.
	GraphKey(snapshotHash string) string

	// ReportKey identifies a rendered report by the graph it came from and
	// the report parameters.
	ReportKey(snapshotHash string, opts ReportKeyOpts) string
}

// ReportKeyOpts are the parameters that distinguish one rendered report
// from another over the same graph.
type ReportKeyOpts struct {
	Kind      string   // "tree", "compare", "dot"
	Roots     []string // one root for tree/dot, two for compare
	Format    string   // output format
	Languages []string // language ordering in effect
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a built graph.
func (k *DefaultKeyer) GraphKey(snapshotHash string) string {
	return hashKey("graph", snapshotHash)
}

// ReportKey generates a key for a rendered report.
func (k *DefaultKeyer) ReportKey(snapshotHash string, opts ReportKeyOpts) string {
	return hashKey("report", snapshotHash, opts.Kind, opts.Roots, opts.Format, opts.Languages)
}

// ScopedKeyer wraps a Keyer with a prefix so multiple wikis can share one
// cache backend without key collisions.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "archwiki:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed graph key.
func (k *ScopedKeyer) GraphKey(snapshotHash string) string {
	return k.prefix + k.inner.GraphKey(snapshotHash)
}

// ReportKey generates a prefixed report key.
func (k *ScopedKeyer) ReportKey(snapshotHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(snapshotHash, opts)
}
