package cache

// SetWriteFileForTest replaces the function used to write the state file.
func (s *Store) SetWriteFileForTest(fn func(path string, data []byte) error) {
	s.writeFile = fn
}

// EncodeForTest exposes the state file encoder.
var EncodeForTest = encode

// DecodeForTest exposes the state file decoder.
var DecodeForTest = decode
