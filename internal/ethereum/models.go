package ethereum

import "txwatch/internal/core"

// LookupResult describes a transaction as the node reports it.
type LookupResult struct {
	Params  core.TxParams
	Hash    string
	Pending bool
}
