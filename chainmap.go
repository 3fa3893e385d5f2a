package chainmap

import (
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/hash"
	"github.com/gostonefire/chainmap/internal/storage/separatechaining"
)

// DefaultBucketCount - The bucket count used by NewDefault. Being a small prime it spreads keys evenly
// through the internal bucket selection algorithm for the modest tables the default is meant for.
const DefaultBucketCount int64 = 7

// TableInfo - Information structure containing some information about the hash table created
//   - NumberOfBuckets is the total number of available buckets in the hash table
//   - InternalAlgorithm is true if the table uses the built-in bucket selection algorithm
type TableInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - BucketDistribution is the number of records stored in each available bucket
type TableStat struct {
	Records            int64
	BucketDistribution []int64
}

// HashTable - The main implementation struct.
// The table is not safe for concurrent use; callers sharing a table between goroutines are responsible
// for external synchronization.
type HashTable[V any] struct {
	store             *separatechaining.SCStore[V]
	hashAlgorithm     hashfunc.HashAlgorithm
	numberOfBuckets   int64
	internalAlgorithm bool
}

// New - Returns a new in-memory hash table using separate chaining for collision resolution and the
// internal bucket selection algorithm. The bucket count is fixed for the lifetime of the table, there
// is no resizing or rehashing, so choose a count generous enough to keep chains short for the number
// of unique keys expected.
//   - bucketCount is the number of buckets, it has to be a positive value higher than 0 (zero)
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the hash table created
//   - err is of type InvalidConfiguration if bucketCount is invalid
func New[V any](bucketCount int64) (hashTable *HashTable[V], tableInfo TableInfo, err error) {
	return NewWithAlgorithm[V](bucketCount, nil)
}

// NewDefault - Returns a new in-memory hash table with DefaultBucketCount buckets.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the hash table created
func NewDefault[V any]() (hashTable *HashTable[V], tableInfo TableInfo) {
	hashTable, tableInfo, _ = New[V](DefaultBucketCount)
	return
}

// NewWithAlgorithm - Returns a new in-memory hash table using a custom bucket selection algorithm
// following the hashfunc.HashAlgorithm interface. A nil hashAlgorithm selects the internal one.
// The number of buckets in the table is taken from the algorithm's GetTableSize after it has been
// given bucketCount through SetTableSize, so an algorithm that rounds the table size up will get a
// correspondingly larger bucket store.
//   - bucketCount is the requested number of buckets, it has to be a positive value higher than 0 (zero)
//   - hashAlgorithm is an optional custom bucket selection algorithm
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the hash table created
//   - err is of type InvalidConfiguration if bucketCount or the algorithm's table size is invalid
func NewWithAlgorithm[V any](bucketCount int64, hashAlgorithm hashfunc.HashAlgorithm) (hashTable *HashTable[V], tableInfo TableInfo, err error) {
	// Check if bucketCount is valid
	if bucketCount <= 0 {
		err = InvalidConfiguration{}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewModSumAlgorithm(bucketCount)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(bucketCount)
	}

	numberOfBuckets := hashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = InvalidConfiguration{}
		return
	}

	hashTable = &HashTable[V]{
		store:             separatechaining.NewSCStore[V](numberOfBuckets),
		hashAlgorithm:     hashAlgorithm,
		numberOfBuckets:   numberOfBuckets,
		internalAlgorithm: internalAlg,
	}

	tableInfo = TableInfo{
		NumberOfBuckets:   numberOfBuckets,
		InternalAlgorithm: internalAlg,
	}

	return
}
