package ledgerline

import "fmt"

// Side identifies one leg of a double-entry transaction.
type Side int

const (
	// Debit is the left leg of an entry.
	Debit Side = iota
	// Credit is the right leg of an entry.
	Credit
)

// Sides lists both sides in their canonical order.
var Sides = [2]Side{Debit, Credit}

func (s Side) String() string {
	switch s {
	case Debit:
		return "debit"
	case Credit:
		return "credit"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Debit {
		return Credit
	}
	return Debit
}

// ParseSide parses "debit" or "credit".
func ParseSide(v string) (Side, error) {
	switch v {
	case "debit":
		return Debit, nil
	case "credit":
		return Credit, nil
	}
	return Debit, fmt.Errorf("invalid side %q: must be \"debit\" or \"credit\"", v)
}

func (s Side) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Side) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid side %s", string(data))
	}
	v, err := ParseSide(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
