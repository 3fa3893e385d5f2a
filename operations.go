package chainmap

import (
	"errors"
	"fmt"
	"github.com/gostonefire/chainmap/crt"
)

// Set - Appends a record holding the given key and value to the chain of the bucket the key hashes to.
// An existing record with the same key is deliberately not updated in place; setting a key a second time
// leaves two records in the same chain and Get keeps returning the value from the first of them. Callers
// that need update semantics have to track key uniqueness themselves.
//
// It returns the table itself, which supports call chaining:
//
//	table.Set("MacBook", 1200).Set("Asus", 800)
//
// Set never fails for any key/value pair. A custom hash algorithm producing a bucket number outside the
// table range violates the hashfunc.HashAlgorithm contract and results in a panic.
func (T *HashTable[V]) Set(key string, value V) *HashTable[V] {
	bucketNo := T.hashAlgorithm.BucketNumber(key)
	err := T.store.Append(bucketNo, key, value)
	if err != nil {
		panic(fmt.Sprintf("chainmap: hash algorithm returned bucket %d, valid range is 0 to %d", bucketNo, T.numberOfBuckets-1))
	}

	return T
}

// Get - Gets the value that was first stored under the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the first matching record in chain order, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound, or of type crt.BucketOutOfRange should a custom hash algorithm misbehave
func (T *HashTable[V]) Get(key string) (value V, err error) {
	bucketNo := T.hashAlgorithm.BucketNumber(key)
	record, err := T.store.Get(bucketNo, key)
	if err != nil {
		if errors.Is(err, crt.NoRecordFound{}) {
			err = NoRecordFound{}
		}
		return
	}

	value = record.Value

	return
}

// Keys - Returns the keys of all stored records, traversing buckets in index order 0 to bucket count - 1
// and each chain in insertion order. Since Set never removes or de-duplicates, the returned slice has one
// entry per Set call ever made, duplicates included.
func (T *HashTable[V]) Keys() (keys []string) {
	return T.store.Keys()
}

// BucketNumber - Returns which bucket number the given key results in.
//   - key is the identifier of a record
//
// It returns:
//   - bucketNo is the bucket the key hashes to
//   - err is of type crt.BucketOutOfRange if a custom hash algorithm produced a number outside the permitted range
func (T *HashTable[V]) BucketNumber(key string) (bucketNo int64, err error) {
	bucketNo = T.hashAlgorithm.BucketNumber(key)
	if bucketNo < 0 || bucketNo >= T.numberOfBuckets {
		err = crt.BucketOutOfRange{}
		return
	}

	return
}

// Len - Returns the total number of records stored in the table
func (T *HashTable[V]) Len() int64 {
	return T.store.GetStorageParameters().Records
}

// Stat - Walks through the entire set of buckets and produces a TableStat struct with information.
// For a table with very many buckets the TableStat.BucketDistribution slice can be memory heavy
// (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set TableStat.BucketDistribution to nil.
func (T *HashTable[V]) Stat(includeDistribution bool) (tableStat *TableStat) {
	tableStat = &TableStat{
		Records: T.store.GetStorageParameters().Records,
	}

	if includeDistribution {
		tableStat.BucketDistribution = T.store.BucketDistribution()
	}

	return
}
