package hash

import (
	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - An alternative bucket selection algorithm implemented using xxhash.Sum64String to
// create a hash value over the key and then applying bucket = hash % tableSize to get the bucket number.
// Compared to ModSumAlgorithm it gives a more even spread for short or similar keys, at the price of a
// bucket number that is harder to reason about by hand.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// BucketNumber - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) BucketNumber(key string) int64 {
	h := xxhash.Sum64String(key)
	return int64(h % uint64(X.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
