package market

import (
	"encoding/json"
	"testing"
)

func TestEventShapes(t *testing.T) {
	lst := Listing{
		ID:     3,
		Asset:  AssetRef{Registry: "AGR", TokenID: 9},
		Price:  150,
		Seller: "alice",
	}

	off := NewOffered(lst)
	if off.Type != EventOffered || off.Listing != 3 || off.Seller != "alice" || off.Buyer != "" {
		t.Fatalf("offered event wrong: %+v", off)
	}

	rcpt := Receipt{
		ID:        "r-1",
		ListingID: 3,
		Asset:     lst.Asset,
		Price:     150,
		Seller:    "alice",
		Buyer:     "bob",
	}
	bought := NewBought(rcpt)
	if bought.Type != EventBought || bought.Buyer != "bob" || bought.Price != 150 {
		t.Fatalf("bought event wrong: %+v", bought)
	}

	// Offered events omit the buyer on the wire.
	raw, err := json.Marshal(off)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["buyer"]; ok {
		t.Fatal("offered event carried a buyer field")
	}
}
