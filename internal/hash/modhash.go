package hash

// charWeight - The fixed multiplier applied to every character code point before it enters the running sum.
// A small prime chosen for distribution quality, not configurable.
const charWeight int64 = 17

// ModSumAlgorithm - The internally used bucket selection algorithm. It accumulates a running sum over the
// characters in the key, each character code point weighted by charWeight, and reduces the sum modulo the
// table size after every addition. The running reduction keeps the sum from ever overflowing and yields the
// same bucket as a single reduction over the full sum, by the identity (a+b) mod n = ((a mod n)+(b mod n)) mod n.
type ModSumAlgorithm struct {
	tableSize int64
}

// NewModSumAlgorithm - Returns a pointer to a new ModSumAlgorithm instance
func NewModSumAlgorithm(tableSize int64) *ModSumAlgorithm {
	ha := &ModSumAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (M *ModSumAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// BucketNumber - Given key it generates an index (bucket) between 0 and table size - 1.
// An empty key always ends up in bucket 0. Cost is linear in the length of the key and independent of
// both the table size and the number of stored records.
func (M *ModSumAlgorithm) BucketNumber(key string) int64 {
	var sum int64
	for _, r := range key {
		sum = (sum + int64(r)*charWeight) % M.tableSize
	}
	return sum
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (M *ModSumAlgorithm) GetTableSize() int64 {
	return M.tableSize
}
