package phonenumber

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// imageVersion guards the binary metadata layout. Bump it when the record
// shape changes.
const imageVersion = 1

// EncodeImage writes records as the compact binary image the generator
// bundles and LoadImage reads back.
func EncodeImage(w io.Writer, records []RawMetadata) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(imageVersion); err != nil {
		return err
	}
	return enc.Encode(records)
}

// DecodeImage reads records from a binary metadata image.
func DecodeImage(r io.Reader) ([]RawMetadata, error) {
	dec := msgpack.NewDecoder(r)

	var version int
	if err := dec.Decode(&version); err != nil {
		return nil, err
	}
	if version != imageVersion {
		return nil, &MissingValueError{Phase: "image", Name: "supported version"}
	}

	var records []RawMetadata
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
