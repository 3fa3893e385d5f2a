package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// BucketOutOfRange - Custom error to inform that a bucket selection algorithm produced a bucket number
// outside the range of buckets the store holds
type BucketOutOfRange struct {
	msg string
}

// Error - Used to notify that a bucket number is out of range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket number out of range"
	}
	return B.msg
}
