package chainmap

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

// InvalidConfiguration - Custom error to inform that the hash table was given invalid construction parameters
type InvalidConfiguration struct {
	msg string
}

// Error - Used to notify that construction parameters are invalid
func (I InvalidConfiguration) Error() string {
	if I.msg == "" {
		return "invalid configuration"
	}
	return I.msg
}
