package inventory

import (
	"bytes"
	"compress/gzip"
	"errors"
	"strings"
	"testing"

	"github.com/Tnze/go-mc/nbt"

	"github.com/thaumic/aspectpath/pkg/aspect"
)

type testRecord struct {
	Key    string `nbt:"key"`
	Amount int16  `nbt:"amount"`
}

func gzipNBT(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := nbt.Marshal(v)
	if err != nil {
		t.Fatalf("marshal NBT fixture: %v", err)
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(raw); err != nil {
		t.Fatalf("gzip fixture: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip fixture: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_Valid(t *testing.T) {
	blob := gzipNBT(t, struct {
		Aspects []testRecord `nbt:"THAUMCRAFT.ASPECTS"`
	}{
		Aspects: []testRecord{
			{Key: "aqua", Amount: 12},
			{Key: "IGNIS", Amount: 3},
			{Key: "custom3", Amount: 1},
		},
	})

	inv, err := DecodeBytes(blob)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if got := inv.AmountOf(aspect.Aqua); got != 12 {
		t.Errorf("AmountOf(aqua) = %d, want 12", got)
	}
	if got := inv.AmountOf(aspect.Ignis); got != 3 {
		t.Errorf("AmountOf(ignis) = %d, want 3", got)
	}
	if got := inv.AmountOf(aspect.Primordium); got != 1 {
		t.Errorf("AmountOf(primordium) = %d, want 1", got)
	}
	if got := inv.MaxAmount(); got != 12 {
		t.Errorf("MaxAmount = %d, want 12", got)
	}
}

func TestDecode_NotGzip(t *testing.T) {
	_, err := DecodeBytes([]byte("plainly not gzip"))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestDecode_MissingAspectList(t *testing.T) {
	blob := gzipNBT(t, struct {
		Other int32 `nbt:"SomethingElse"`
	}{Other: 1})

	_, err := DecodeBytes(blob)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if !strings.Contains(err.Error(), "THAUMCRAFT.ASPECTS") {
		t.Errorf("error %q does not name the missing list", err)
	}
}

func TestDecode_MissingAmount(t *testing.T) {
	blob := gzipNBT(t, struct {
		Aspects []struct {
			Key string `nbt:"key"`
		} `nbt:"THAUMCRAFT.ASPECTS"`
	}{
		Aspects: []struct {
			Key string `nbt:"key"`
		}{{Key: "aqua"}},
	})

	_, err := DecodeBytes(blob)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if !strings.Contains(err.Error(), "amount") {
		t.Errorf("error %q does not name the missing field", err)
	}
}

func TestDecode_MissingKey(t *testing.T) {
	blob := gzipNBT(t, struct {
		Aspects []struct {
			Amount int16 `nbt:"amount"`
		} `nbt:"THAUMCRAFT.ASPECTS"`
	}{
		Aspects: []struct {
			Amount int16 `nbt:"amount"`
		}{{Amount: 4}},
	})

	_, err := DecodeBytes(blob)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if !strings.Contains(err.Error(), "key") {
		t.Errorf("error %q does not name the missing field", err)
	}
}

func TestDecode_NegativeAmount(t *testing.T) {
	blob := gzipNBT(t, struct {
		Aspects []testRecord `nbt:"THAUMCRAFT.ASPECTS"`
	}{
		Aspects: []testRecord{{Key: "aqua", Amount: -2}},
	})

	_, err := DecodeBytes(blob)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if !strings.Contains(err.Error(), "negative") {
		t.Errorf("error %q does not mention the negative amount", err)
	}
}

func TestDecode_UnknownAspect(t *testing.T) {
	blob := gzipNBT(t, struct {
		Aspects []testRecord `nbt:"THAUMCRAFT.ASPECTS"`
	}{
		Aspects: []testRecord{{Key: "fakeaspect", Amount: 1}},
	})

	_, err := DecodeBytes(blob)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if !strings.Contains(err.Error(), "fakeaspect") {
		t.Errorf("error %q does not name the unknown key", err)
	}
}
