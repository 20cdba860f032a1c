package inventory

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"

	"github.com/thaumic/aspectpath/pkg/aspect"
)

// aspectsListTag is the player-data entry holding the research pool.
const aspectsListTag = "THAUMCRAFT.ASPECTS"

// playerData mirrors the slice of the player NBT blob we consume. Pointer
// fields distinguish a missing tag from a zero value so each omission can
// be reported as its own validation error.
type playerData struct {
	Aspects []aspectRecord `nbt:"THAUMCRAFT.ASPECTS"`
}

type aspectRecord struct {
	Key    *string `nbt:"key"`
	Amount *int16  `nbt:"amount"`
}

// Decode reads a gzip-compressed player-data blob and builds the
// inventory from its THAUMCRAFT.ASPECTS list. Every structural defect is
// reported as a distinct error wrapping ErrMalformed: missing list,
// missing key or amount fields, mistyped tags, negative amounts, and
// aspect keys outside the vocabulary.
func Decode(r io.Reader) (*Inventory, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: not gzip-compressed: %v", ErrMalformed, err)
	}
	defer gz.Close()

	var data playerData
	if _, err := nbt.NewDecoder(gz).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decoding NBT: %v", ErrMalformed, err)
	}
	if data.Aspects == nil {
		return nil, fmt.Errorf("%w: no %s list in player data", ErrMalformed, aspectsListTag)
	}

	amounts := make(map[aspect.Aspect]int, len(data.Aspects))
	for i, rec := range data.Aspects {
		if rec.Key == nil {
			return nil, fmt.Errorf("%w: record %d has no key", ErrMalformed, i)
		}
		if rec.Amount == nil {
			return nil, fmt.Errorf("%w: record %d (%s) has no amount", ErrMalformed, i, *rec.Key)
		}
		a, ok := aspect.ByKey(*rec.Key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown aspect key %q", ErrMalformed, *rec.Key)
		}
		if *rec.Amount < 0 {
			return nil, fmt.Errorf("%w: aspect %s has negative amount %d", ErrMalformed, a, *rec.Amount)
		}
		amounts[a] = int(*rec.Amount)
	}
	return New(amounts)
}

// DecodeBytes is Decode over an in-memory blob, as returned by the FTP
// fetcher or the snapshot cache.
func DecodeBytes(blob []byte) (*Inventory, error) {
	return Decode(bytes.NewReader(blob))
}
