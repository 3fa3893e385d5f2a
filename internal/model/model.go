package model

// Record - Represents one stored key/value pair in a chain
type Record[V any] struct {
	Key   string
	Value V
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	NumberOfBuckets int64
	Records         int64
}
