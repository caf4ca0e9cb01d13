package eqtheory

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/ghodss/yaml"
	"github.com/mitchellh/hashstructure"
	"github.com/pkg/errors"
)

// Constraint asserts that two terms denote the same type. Terms that
// begin with an upper-case letter name concrete types; all others are
// type variables. Constraints are compared structurally.
type Constraint struct {
	ID   string
	LHS  string
	RHS  string
	Line int
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s = %s", c.LHS, c.RHS)
}

// IsConcrete reports whether term names a concrete type.
func IsConcrete(term string) bool {
	r, _ := utf8.DecodeRuneInString(term)
	return unicode.IsUpper(r)
}

type DuplicateIdentifier string

func (e DuplicateIdentifier) Error() string {
	return fmt.Sprintf("duplicate constraint identifier %q in input", string(e))
}

// Problem is a set of typing constraints, split into those that must
// hold and those that may be blamed for a type error.
type Problem struct {
	Hard []Constraint
	Soft []Constraint
	// Redundant maps the identifier of each constraint that equates
	// the same pair of terms as an earlier one to the identifier of
	// that earlier constraint.
	Redundant map[string]string
}

type entry struct {
	ID   string `json:"id"`
	LHS  string `json:"lhs"`
	RHS  string `json:"rhs"`
	Hard bool   `json:"hard,omitempty"`
	Line int    `json:"line,omitempty"`
}

type document struct {
	Constraints []entry `json:"constraints"`
}

// LoadFile reads a problem from a YAML file.
func LoadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return p, nil
}

// Load reads a problem in YAML form:
//
//	constraints:
//	- id: c1
//	  lhs: x
//	  rhs: Int
//	  hard: true
//	  line: 3
func Load(r io.Reader) (*Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding constraints")
	}

	p := &Problem{Redundant: make(map[string]string)}
	ids := make(map[string]struct{}, len(doc.Constraints))
	seen := make(map[uint64]string, len(doc.Constraints))
	for i, e := range doc.Constraints {
		if e.ID == "" || e.LHS == "" || e.RHS == "" {
			return nil, errors.Errorf("constraint %d: id, lhs and rhs are required", i)
		}
		if _, ok := ids[e.ID]; ok {
			return nil, DuplicateIdentifier(e.ID)
		}
		ids[e.ID] = struct{}{}

		c := Constraint{ID: e.ID, LHS: e.LHS, RHS: e.RHS, Line: e.Line}
		fp, err := Fingerprint(c)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %s", e.ID)
		}
		if first, ok := seen[fp]; ok {
			p.Redundant[e.ID] = first
		} else {
			seen[fp] = e.ID
		}

		if e.Hard {
			p.Hard = append(p.Hard, c)
		} else {
			p.Soft = append(p.Soft, c)
		}
	}
	return p, nil
}

// Fingerprint hashes the equation stated by c, ignoring its identifier
// and position and the orientation of its sides.
func Fingerprint(c Constraint) (uint64, error) {
	lhs, rhs := c.LHS, c.RHS
	if rhs < lhs {
		lhs, rhs = rhs, lhs
	}
	return hashstructure.Hash(struct{ LHS, RHS string }{lhs, rhs}, nil)
}
