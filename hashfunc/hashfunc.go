package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash table. Hence, if a custom hash algorithm is supplied and the
	// instance is already having a table size, it will be overwritten by the bucket count that is supplied
	// when creating the hash table.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// BucketNumber - Given key it generates an index (bucket) between 0 and table size - 1.
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	BucketNumber(key string) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// It is very important that this function return the actual table size and not just the table size given
	// at instantiating time or in a call to SetTableSize. Some algorithms are implemented by rounding up to
	// nearest 2 to the power of x, or to the nearest prime, and if such operations are built in the
	// implementation of this interface it must be covered in the GetTableSize.
	GetTableSize() int64
}
