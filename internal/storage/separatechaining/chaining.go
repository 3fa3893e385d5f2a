package separatechaining

import (
	"github.com/gostonefire/chainmap/crt"
	"github.com/gostonefire/chainmap/internal/model"
)

// SCStore - Represents an in-memory implementation of the Separate Chaining Collision Resolution Technique.
// It holds a fixed number of directly addressable buckets where each bucket keeps its records in an
// append-ordered chain. A chain is left unallocated until the first record lands in its bucket.
type SCStore[V any] struct {
	buckets [][]model.Record[V]
	records int64
}

// NewSCStore - Returns a pointer to a new instance of the Separate Chaining store
//   - numberOfBuckets is the fixed number of buckets, it never changes after creation
func NewSCStore[V any](numberOfBuckets int64) *SCStore[V] {
	return &SCStore[V]{
		buckets: make([][]model.Record[V], numberOfBuckets),
	}
}

// Append - Adds a record to the end of the chain in the given bucket. Records are never updated in place
// or removed, so a key that is appended twice occupies two spots in the same chain and Get will keep
// returning the older of the two.
//   - bucketNo is the bucket to add the record to
//   - key and value form the record to add
//
// It returns:
//   - err which is of type crt.BucketOutOfRange if bucketNo is outside the store, otherwise nil
func (S *SCStore[V]) Append(bucketNo int64, key string, value V) (err error) {
	if bucketNo < 0 || bucketNo >= int64(len(S.buckets)) {
		err = crt.BucketOutOfRange{}
		return
	}

	S.buckets[bucketNo] = append(S.buckets[bucketNo], model.Record[V]{Key: key, Value: value})
	S.records++

	return
}

// Get - Gets the first record in the chain of the given bucket whose key is equal to the given key.
//   - bucketNo is the bucket to search
//   - key is the identifier of a record
//
// It returns:
//   - record is the first matching record in chain order, if found
//   - err is of type crt.NoRecordFound if no record matched, or crt.BucketOutOfRange if bucketNo is outside the store
func (S *SCStore[V]) Get(bucketNo int64, key string) (record model.Record[V], err error) {
	if bucketNo < 0 || bucketNo >= int64(len(S.buckets)) {
		err = crt.BucketOutOfRange{}
		return
	}

	for _, record = range S.buckets[bucketNo] {
		if record.Key == key {
			return
		}
	}

	record = model.Record[V]{}
	err = crt.NoRecordFound{}

	return
}

// Keys - Returns the keys of all stored records, traversing buckets in index order and each chain in
// insertion order. Since Append never removes or de-duplicates, a key appended more than once appears
// more than once.
func (S *SCStore[V]) Keys() (keys []string) {
	keys = make([]string, 0, S.records)
	for _, chain := range S.buckets {
		for _, record := range chain {
			keys = append(keys, record.Key)
		}
	}

	return
}

// BucketDistribution - Returns the number of records stored in each available bucket
func (S *SCStore[V]) BucketDistribution() (distribution []int64) {
	distribution = make([]int64, len(S.buckets))
	for i, chain := range S.buckets {
		distribution[i] = int64(len(chain))
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from the store
func (S *SCStore[V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets: int64(len(S.buckets)),
		Records:         S.records,
	}

	return
}
