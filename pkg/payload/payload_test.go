package payload

import (
	"bytes"
	"errors"
	"testing"

	"github.com/chainsafe/cat-bridge/pkg/amount"
	"github.com/chainsafe/cat-bridge/pkg/chain"
)

func sampleTransfer() *Transfer {
	return &Transfer{
		Amount:             amount.NewWide(150_000_000),
		TokenDecimals:      9,
		SourceToken:        chain.MustParseAddress("0x11"),
		SourceAccount:      chain.MustParseAddress("0x22"),
		SourceChainID:      1,
		DestinationToken:   chain.MustParseAddress("0x33"),
		DestinationAccount: chain.MustParseAddress("0x44"),
		DestinationChainID: 10002,
	}
}

func TestTransfer_EncodeLayout(t *testing.T) {
	b := sampleTransfer().Encode()
	if len(b) != TransferSize {
		t.Fatalf("Expected %d bytes, got %d", TransferSize, len(b))
	}
	if TransferSize != 226 {
		t.Fatalf("Expected transfer size 226, got %d", TransferSize)
	}

	checks := []struct {
		name   string
		offset int
		want   byte
	}{
		{"tag", 0, 0},
		{"amount low byte", 32, 0x80},
		{"token decimals", 33, 9},
		{"source token", 65, 0x11},
		{"source account", 97, 0x22},
		{"source chain", 129, 1},
		{"destination token", 161, 0x33},
		{"destination account", 193, 0x44},
		{"destination chain low byte", 225, 0x12},
		{"destination chain high byte", 224, 0x27},
	}
	for _, c := range checks {
		if b[c.offset] != c.want {
			t.Errorf("%s: expected %#x at offset %d, got %#x", c.name, c.want, c.offset, b[c.offset])
		}
	}

	// 150_000_000 = 0x08F0D180
	if !bytes.Equal(b[29:33], []byte{0x08, 0xf0, 0xd1, 0x80}) {
		t.Errorf("Expected big-endian amount, got %x", b[29:33])
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	want := sampleTransfer()
	got, err := DecodeTransfer(want.Encode())
	if err != nil {
		t.Fatalf("DecodeTransfer() failed: %v", err)
	}
	if *got != *want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestDecode_UnknownTag(t *testing.T) {
	b := sampleTransfer().Encode()
	b[0] = 1
	if _, err := Decode(b); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
}

func TestDecode_WrongLength(t *testing.T) {
	b := sampleTransfer().Encode()
	cases := map[string][]byte{
		"empty": {},
		"short": b[:TransferSize-1],
		"long":  append(append([]byte{}, b...), 0),
	}
	for name, in := range cases {
		if _, err := Decode(in); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestDecode_ChainIDOverflow(t *testing.T) {
	b := sampleTransfer().Encode()
	b[98+1] = 0x01 // source chain word gets a high-order byte
	if _, err := Decode(b); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestDecode_WideAmountPreserved(t *testing.T) {
	tr := sampleTransfer()
	wide, err := amount.ParseWide("18446744073709551616000")
	if err != nil {
		t.Fatalf("ParseWide() failed: %v", err)
	}
	tr.Amount = wide
	got, err := DecodeTransfer(tr.Encode())
	if err != nil {
		t.Fatalf("DecodeTransfer() failed: %v", err)
	}
	if got.Amount.Cmp(wide) != 0 {
		t.Errorf("Expected %s, got %s", wide, got.Amount)
	}
}
