package feed

import (
	"encoding/json"

	"github.com/a17hq/btviz/pkg/behaviour"
	"github.com/a17hq/btviz/pkg/errors"
)

// Encode serializes a snapshot for the wire.
func Encode(t behaviour.Tree) ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot")
	}
	return data, nil
}

// Decode deserializes a wire payload into a snapshot.
// Malformed payloads return an error with code DECODE_FAILED; subscribers
// log and skip them rather than tearing down the feed.
func Decode(data []byte) (behaviour.Tree, error) {
	var t behaviour.Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return behaviour.Tree{}, errors.Wrap(errors.ErrCodeDecodeFailed, err, "decode snapshot")
	}
	return t, nil
}
