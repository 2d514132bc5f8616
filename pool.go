package keccak

import "sync"

// scratch is the per-call working set of the one-shot path.
type scratch struct {
	state [25]uint64
	pad   [scratchSize]byte
}

var scratchPool = sync.Pool{
	New: func() any {
		return new(scratch)
	},
}

// getScratch returns a zeroed scratch from the pool. The caller owns it
// until putScratch.
func getScratch() *scratch {
	s := scratchPool.Get().(*scratch)
	s.state = [25]uint64{}
	s.pad = [scratchSize]byte{}
	return s
}

func putScratch(s *scratch) { scratchPool.Put(s) }
