package decision

import "fmt"

// Choice is the placement picked for one task.
type Choice int

const (
	// Undecided marks an empty history slot or a step where no placement was legal.
	Undecided Choice = iota
	Local
	Offload
)

// String returns string representation.
func (c Choice) String() string {
	switch c {
	case Undecided:
		return "undecided"
	case Local:
		return "local"
	case Offload:
		return "offload"
	}
	return fmt.Sprintf("choice(%d)", int(c))
}

// IsReal reports whether c is an actual placement.
func (c Choice) IsReal() bool {
	return c == Local || c == Offload
}

// MarshalText implements encoding.TextMarshaler.
func (c Choice) MarshalText() ([]byte, error) {
	switch c {
	case Undecided, Local, Offload:
		return []byte(c.String()), nil
	}
	return nil, fmt.Errorf("invalid choice %d", int(c))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Choice) UnmarshalText(text []byte) error {
	parsed, err := ParseChoice(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseChoice converts a name produced by String back into a Choice.
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "undecided":
		return Undecided, nil
	case "local":
		return Local, nil
	case "offload":
		return Offload, nil
	}
	return Undecided, fmt.Errorf("unknown choice: %q", s)
}
