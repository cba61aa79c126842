package chainmap

type Stats struct {
	Size            int
	Capacity        int
	LoadFactor      float64
	Collisions      uint64
	OccupiedBuckets int
	MaxChainLength  int
	MeanChainLength float64
}
