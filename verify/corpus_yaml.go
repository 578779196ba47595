package verify

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/sumreach/reach"
)

// corpusDoc is the YAML shape of an external corpus file:
//
//	cases:
//	  - name: "8 = 1·3 + 1·5"
//	    a: "3"
//	    b: "5"
//	    c: "8"
//	    expect: true
//	  - name: "huge target"
//	    a: "1"
//	    b: "2"
//	    c: "12345678901234567890123456789"
//	    expect: true
//	    skip_search: true
//
// Integers are unsigned decimal strings so targets of any length survive
// the trip; expect is optional, and without it the case only asserts engine
// agreement.
type corpusDoc struct {
	Cases []corpusEntry `yaml:"cases"`
}

type corpusEntry struct {
	Name       string `yaml:"name"`
	A          string `yaml:"a"`
	B          string `yaml:"b"`
	C          string `yaml:"c"`
	Expect     *bool  `yaml:"expect"`
	SkipSearch bool   `yaml:"skip_search"`
}

// LoadCorpus decodes cases from a YAML document. Returns ErrMalformedCase
// (with the entry's position and field) for integers that are not plain
// unsigned decimals.
func LoadCorpus(r io.Reader) ([]Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("verify: read corpus: %w", err)
	}
	var doc corpusDoc
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("verify: decode corpus: %w", err)
	}

	cases := make([]Case, 0, len(doc.Cases))
	for i, e := range doc.Cases {
		cs := Case{Name: e.Name, SkipSearch: e.SkipSearch}
		if cs.Name == "" {
			cs.Name = fmt.Sprintf("case #%d", i+1)
		}
		if cs.A, err = reach.ParseDecimal(e.A); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s), field a: %v", ErrMalformedCase, i+1, cs.Name, err)
		}
		if cs.B, err = reach.ParseDecimal(e.B); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s), field b: %v", ErrMalformedCase, i+1, cs.Name, err)
		}
		if cs.C, err = reach.ParseDecimal(e.C); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s), field c: %v", ErrMalformedCase, i+1, cs.Name, err)
		}
		if e.Expect != nil {
			cs.Expect = *e.Expect
			cs.HasExpect = true
		}
		cases = append(cases, cs)
	}
	return cases, nil
}
