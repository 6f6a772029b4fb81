package ledgerline

import (
	"encoding/json"
	"testing"
)

func TestSide(t *testing.T) {
	if Debit.String() != "debit" || Credit.String() != "credit" {
		t.Errorf("String() = %q, %q", Debit, Credit)
	}
	if Debit.Other() != Credit || Credit.Other() != Debit {
		t.Error("Other() must swap sides")
	}
	if s, err := ParseSide("credit"); err != nil || s != Credit {
		t.Errorf("ParseSide(credit) = %v, %v", s, err)
	}
	if _, err := ParseSide("middle"); err == nil {
		t.Error("ParseSide must reject unknown sides")
	}
}

func TestSide_JSON(t *testing.T) {
	data, err := json.Marshal([]Side{Debit, Credit})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `["debit","credit"]`; string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
	var got []Side
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got[0] != Debit || got[1] != Credit {
		t.Errorf("round trip = %v", got)
	}
	var s Side
	if err := json.Unmarshal([]byte(`"middle"`), &s); err == nil {
		t.Error("unmarshal must reject unknown sides")
	}
}
