package importraw

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"

	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/rollup"
	"github.com/rollup-vm/multivm/storage"
)

// Record is a raw result of a batch as exchanged in import files. The result
// is the CBOR encoding of the concrete shape of the named version.
type Record struct {
	Batch   uint32          `cbor:"batch"`
	Version string          `cbor:"version"`
	Result  cbor.RawMessage `cbor:"result"`
}

// NewRecord encodes the raw result of a batch.
func NewRecord(batch rollup.L1BatchNumber, raw legacy.BlockResult) (Record, error) {
	if legacy.IsNil(raw) {
		return Record{}, fmt.Errorf("missing raw result for batch %d", batch)
	}
	result, err := cbor.Marshal(raw)
	if err != nil {
		return Record{}, fmt.Errorf("could not encode raw result of batch %d: %w", batch, err)
	}
	return Record{
		Batch:   uint32(batch),
		Version: raw.Version().String(),
		Result:  result,
	}, nil
}

// BlockResult decodes the raw result held by the record.
func (r Record) BlockResult() (legacy.BlockResult, error) {
	version, err := legacy.ParseVersion(r.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid record for batch %d: %w", r.Batch, err)
	}
	raw, err := legacy.Decode(version, func(v interface{}) error {
		return cbor.Unmarshal(r.Result, v)
	})
	if err != nil {
		return nil, fmt.Errorf("could not decode raw result of batch %d: %w", r.Batch, err)
	}
	return raw, nil
}

// WriteRecords writes the records as a single CBOR array.
func WriteRecords(w io.Writer, records []Record) error {
	return cbor.NewEncoder(w).Encode(records)
}

// ReadRecords reads a CBOR array of records.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	err := cbor.NewDecoder(r).Decode(&records)
	if err != nil {
		return nil, fmt.Errorf("could not decode records: %w", err)
	}
	return records, nil
}

// Import stores the raw result of every record. Records of batches that are
// already stored are skipped, unless overwrite is set.
func Import(log zerolog.Logger, raws storage.RawBlockResults, records []Record, overwrite bool) (imported int, skipped int, err error) {
	for _, record := range records {
		raw, err := record.BlockResult()
		if err != nil {
			return imported, skipped, err
		}

		batch := rollup.L1BatchNumber(record.Batch)
		if overwrite {
			err = raws.Replace(batch, raw)
		} else {
			err = raws.Store(batch, raw)
		}
		if errors.Is(err, storage.ErrAlreadyExists) {
			log.Warn().Uint32("batch", record.Batch).Msg("raw result already stored, skipping")
			skipped++
			continue
		}
		if err != nil {
			return imported, skipped, fmt.Errorf("could not store raw result of batch %d: %w", record.Batch, err)
		}

		log.Debug().Uint32("batch", record.Batch).Str("version", record.Version).Msg("raw result imported")
		imported++
	}
	return imported, skipped, nil
}
