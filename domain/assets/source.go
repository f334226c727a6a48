package assets

// Source is an external origin of assets (local storage, an external DAM,
// ...). The core only cares about its id and capability flags.
type Source struct {
	ID                  string
	Label               string
	Description         string
	IconURI             string
	ReadOnly            bool
	SupportsTagging     bool
	SupportsCollections bool
}

// DefaultSourceID is the id of the built-in local source. Queries that omit
// an assetSourceId default to it.
const DefaultSourceID = "neos"
