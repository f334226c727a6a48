package assets

// Usage describes a single place in the hosting system that references an
// asset. Usages are reported by an external lookup collaborator; the core
// never computes them itself.
type Usage struct {
	Label    string
	URL      string
	Metadata map[string]string
}

// UsageDetailsGroup bundles the usages reported by one service for an asset
type UsageDetailsGroup struct {
	ServiceID string
	Label     string
	Usages    []Usage
}
