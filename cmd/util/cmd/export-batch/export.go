package exportbatch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/rollup-vm/multivm/model/execution"
)

const (
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// Export writes the sealed batch to w in the given format.
func Export(w io.Writer, finished *execution.FinishedL1Batch, format string) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(finished); err != nil {
			return fmt.Errorf("could not encode batch as json: %w", err)
		}
		return nil
	case FormatCBOR:
		encMode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return fmt.Errorf("could not create cbor encoder: %w", err)
		}
		if err := encMode.NewEncoder(w).Encode(finished); err != nil {
			return fmt.Errorf("could not encode batch as cbor: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
