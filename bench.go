package chainmap

import "time"

// Op selects which table operation a benchmark batch exercises.
type Op uint8

const (
	OpInsert Op = iota
	OpSearch
	OpUpdate
	OpDelete
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpSearch:
		return "search"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Pair is the batch currency: one key with the value to insert or update.
// Search and delete batches ignore the value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Sample is one timed call. Err carries the table's outcome verbatim;
// a search miss is reported as ErrNotFound.
type Sample struct {
	Elapsed time.Duration
	Err     error
}

// Result aggregates one batch run. Before and After are table snapshots
// taken around the batch, so collision and chain-length deltas attribute
// cleanly to it.
type Result struct {
	Op      Op
	Calls   int
	Failed  int
	Total   time.Duration
	Samples []Sample
	Before  Stats
	After   Stats
}

// Collector times table operations in batches. It adds no behavior of its
// own: outcomes pass through unmodified, and the table is only mutated by
// the calls themselves.
type Collector[K comparable, V any] struct {
	m *ChainMap[K, V]
}

func NewCollector[K comparable, V any](m *ChainMap[K, V]) *Collector[K, V] {
	return &Collector[K, V]{m: m}
}

// Runs the batch against the wrapped table, timing every call. Failures
// are recorded and counted, never short-circuited: the rest of the batch
// still runs.
func (c *Collector[K, V]) Run(op Op, batch []Pair[K, V]) Result {
	res := Result{
		Op:      op,
		Calls:   len(batch),
		Samples: make([]Sample, 0, len(batch)),
		Before:  c.m.Stats(),
	}

	for _, p := range batch {
		var err error

		start := time.Now()
		switch op {
		case OpInsert:
			err = c.m.Insert(p.Key, p.Value)
		case OpSearch:
			if _, ok := c.m.Get(p.Key); !ok {
				err = ErrNotFound
			}
		case OpUpdate:
			err = c.m.Update(p.Key, p.Value)
		case OpDelete:
			_, err = c.m.Delete(p.Key)
		}
		elapsed := time.Since(start)

		res.Samples = append(res.Samples, Sample{Elapsed: elapsed, Err: err})
		res.Total += elapsed

		if err != nil {
			res.Failed++
		}
	}

	res.After = c.m.Stats()

	return res
}

// Bulk-loads a batch, as the ingestion path does after parsing an external
// source. Returns the number of records inserted; ErrDuplicateKey if any
// key was already present.
func (c *Collector[K, V]) InsertAll(batch []Pair[K, V]) (int, error) {
	res := c.Run(OpInsert, batch)
	if res.Failed > 0 {
		return res.Calls - res.Failed, ErrDuplicateKey
	}

	return res.Calls, nil
}
