package cache

import (
	"bytes"
	"encoding/gob"
)

// cachedOutcome is the stored form of a resolved size. Pending outcomes
// are never written, so two booleans and a count cover the whole space.
type cachedOutcome struct {
	IsDir  bool
	Failed bool
	Bytes  uint64
}

// encode serializes the outcome using gob.
func (e *cachedOutcome) encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decode deserializes bytes into the outcome.
func (e *cachedOutcome) decode(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(e)
}

// makeKey creates a store key from an absolute path. Paths are unique
// process-wide, so the path itself is the key.
func makeKey(path string) []byte {
	return []byte(path)
}
