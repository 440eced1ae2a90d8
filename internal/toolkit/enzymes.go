package toolkit

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
)

// Enzyme is one restriction enzyme from the canonical table.
type Enzyme struct {
	Name string

	// recognition sequence with ^/_ cut markers stripped
	Recog string

	// top-strand cut offset within Recog
	CutInd int

	// bottom-strand cut offset within Recog
	HangInd int

	// recommended reaction buffer
	Buffer string

	// cuts outside its recognition site (Golden Gate class)
	TypeIIS bool

	// compiled recognition pattern, shared and read-only
	pattern *regexp.Regexp
}

// OverhangLength is the length of the single-stranded overhang the
// enzyme leaves; 0 means blunt.
func (e Enzyme) OverhangLength() int {
	d := e.CutInd - e.HangInd
	if d < 0 {
		d = -d
	}
	return d
}

//go:embed enzymes.yaml
var enzymesYAML []byte

var (
	enzymeOnce  sync.Once
	enzymeTable []Enzyme
)

// newEnzyme parses a ^/_ marked recognition sequence into cut and hang
// offsets for overhang calculation.
func newEnzyme(name, recogSeq, buffer string, typeIIS bool) Enzyme {
	cutIndex := strings.Index(recogSeq, "^")
	hangIndex := strings.Index(recogSeq, "_")

	if cutIndex < hangIndex {
		hangIndex--
	} else {
		cutIndex--
	}

	recogSeq = strings.ReplaceAll(recogSeq, "^", "")
	recogSeq = strings.ReplaceAll(recogSeq, "_", "")

	return Enzyme{
		Name:    name,
		Recog:   recogSeq,
		CutInd:  cutIndex,
		HangInd: hangIndex,
		Buffer:  buffer,
		TypeIIS: typeIIS,
		pattern: regexp.MustCompile(seq.RecogRegex(recogSeq)),
	}
}

// Enzymes returns the canonical enzyme table, loaded once from the
// embedded YAML and never mutated thereafter.
func Enzymes() []Enzyme {
	enzymeOnce.Do(func() {
		var table struct {
			Enzymes []struct {
				Name        string `yaml:"name"`
				Recognition string `yaml:"recognition"`
				Buffer      string `yaml:"buffer"`
				TypeIIS     bool   `yaml:"type_iis"`
			} `yaml:"enzymes"`
		}
		if err := yaml.Unmarshal(enzymesYAML, &table); err != nil {
			panic("toolkit: embedded enzyme table is malformed: " + err.Error())
		}

		for _, e := range table.Enzymes {
			enzymeTable = append(enzymeTable, newEnzyme(e.Name, e.Recognition, e.Buffer, e.TypeIIS))
		}
		sort.Slice(enzymeTable, func(i, j int) bool {
			return enzymeTable[i].Name < enzymeTable[j].Name
		})
	})
	return enzymeTable
}

// EnzymeByName resolves one enzyme from the table; ok is false when the
// name is unknown.
func EnzymeByName(name string) (Enzyme, bool) {
	for _, e := range Enzymes() {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Enzyme{}, false
}

// CutSites returns the 1-based positions at which an enzyme's
// recognition site occurs in a template, scanning both strands.
// Positions refer to the start of the recognition match on the
// template strand.
func (e Enzyme) CutSites(template string) []int {
	template = strings.ToUpper(template)

	sites := []int{}
	for _, loc := range e.pattern.FindAllStringIndex(template, -1) {
		sites = append(sites, loc[0]+1)
	}

	// sites on the reverse complement strand, flipped back onto
	// template coordinates
	rc := seq.RevComp(template)
	for _, loc := range e.pattern.FindAllStringIndex(rc, -1) {
		pos := len(template) - loc[0] - len(e.Recog) + 1
		if pos < 1 {
			continue
		}
		sites = append(sites, pos)
	}

	sort.Ints(sites)

	// palindromic sites match both strands at the same position
	dedup := sites[:0]
	for i, s := range sites {
		if i > 0 && sites[i-1] == s {
			continue
		}
		dedup = append(dedup, s)
	}
	return dedup
}
