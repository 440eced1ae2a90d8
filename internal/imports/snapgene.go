package imports

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"

	"github.com/Mvgnu/BioLabs-sub002/internal/model"
	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
)

// SnapGene container block types we care about.
const (
	snapBlockSequence = 0x00
	snapBlockHeader   = 0x09
	snapBlockFeatures = 0x0a
)

// snapgeneRange matches feature ranges like "12-840".
var snapgeneRange = regexp.MustCompile(`^(\d+)-(\d+)$`)

// ParseSnapGene parses a SnapGene input. The primary path reads the
// native binary container; when that fails, or when the input is
// already JSON, it falls back to the JSON bundle schema
// {sequence, features[], topology}. Results always carry the
// "snapgene" tag.
func ParseSnapGene(content []byte, filename string) (*ImportResult, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return parseSnapGeneJSON(trimmed, filename)
	}

	result, err := parseSnapGeneBinary(content, filename)
	if err == nil {
		return result, nil
	}

	// binary layout unsupported; try the bundle schema before failing
	if jsonResult, jsonErr := parseSnapGeneJSON(trimmed, filename); jsonErr == nil {
		return jsonResult, nil
	}
	return nil, err
}

// parseSnapGeneBinary walks the TLV container: a 1-byte block type and
// a big-endian uint32 length per block. Block 9 opens the file with the
// "SnapGene" cookie, block 0 carries the sequence behind a topology
// flag byte, block 10 carries the features XML.
func parseSnapGeneBinary(content []byte, filename string) (*ImportResult, error) {
	if len(content) < 14 || content[0] != snapBlockHeader {
		return nil, importErr("snapgene", "not a SnapGene binary container")
	}

	headerLen := binary.BigEndian.Uint32(content[1:5])
	if int(headerLen) > len(content)-5 || !bytes.Contains(content[5:5+int(headerLen)], []byte("SnapGene")) {
		return nil, importErr("snapgene", "missing SnapGene cookie in header block")
	}

	var (
		sequence    string
		topology    = "linear"
		annotations []model.Annotation
		sawSequence bool
	)

	offset := 0
	for offset+5 <= len(content) {
		blockType := content[offset]
		blockLen := int(binary.BigEndian.Uint32(content[offset+1 : offset+5]))
		offset += 5
		if blockLen < 0 || offset+blockLen > len(content) {
			return nil, importErr("snapgene", "truncated block %d", blockType)
		}
		data := content[offset : offset+blockLen]
		offset += blockLen

		switch blockType {
		case snapBlockSequence:
			if len(data) < 1 {
				return nil, importErr("snapgene", "empty sequence block")
			}
			// low bit of the flag byte marks a circular construct
			if data[0]&0x01 != 0 {
				topology = "circular"
			}
			validated, err := seq.Validate(string(data[1:]))
			if err != nil {
				return nil, importErr("snapgene", "bad sequence block: %v", err)
			}
			sequence = validated
			sawSequence = true

		case snapBlockFeatures:
			parsed, err := parseSnapGeneFeatures(data)
			if err != nil {
				return nil, err
			}
			annotations = parsed
		}
	}

	if !sawSequence {
		return nil, importErr("snapgene", "container has no sequence block")
	}

	name := strings.TrimSuffix(filename, ".dna")
	if name == "" {
		name = "snapgene_import"
	}

	return &ImportResult{
		Name:        name,
		Sequence:    sequence,
		Topology:    topology,
		Tags:        []string{"snapgene"},
		Metadata:    map[string]string{"format": "snapgene"},
		Annotations: clipAnnotations(annotations, len(sequence)),
	}, nil
}

// snapFeatureXML mirrors the features XML inside block 10.
type snapFeatureXML struct {
	Features []struct {
		Name           string `xml:"name,attr"`
		Type           string `xml:"type,attr"`
		Directionality int    `xml:"directionality,attr"`
		Segments       []struct {
			Range string `xml:"range,attr"`
		} `xml:"Segment"`
	} `xml:"Feature"`
}

func parseSnapGeneFeatures(data []byte) ([]model.Annotation, error) {
	var doc snapFeatureXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, importErr("snapgene", "malformed features XML: %v", err)
	}

	annotations := []model.Annotation{}
	for i, f := range doc.Features {
		strand := 1
		if f.Directionality == 2 {
			strand = -1
		}

		segments := []model.Segment{}
		for _, s := range f.Segments {
			m := snapgeneRange.FindStringSubmatch(s.Range)
			if m == nil {
				continue
			}
			start, _ := strconv.Atoi(m[1])
			end, _ := strconv.Atoi(m[2])
			segments = append(segments, model.Segment{Start: start, End: end, Strand: strand})
		}
		if len(segments) == 0 {
			continue
		}

		label := f.Name
		if label == "" {
			label = "feature_" + strconv.Itoa(i+1)
		}
		featureType := f.Type
		if featureType == "" {
			featureType = "misc_feature"
		}

		annotations = append(annotations, model.Annotation{
			Label:          label,
			FeatureType:    featureType,
			Start:          segments[0].Start,
			End:            segments[len(segments)-1].End,
			Segments:       segments,
			Qualifiers:     map[string]string{},
			ProvenanceTags: provenanceTags(featureType, nil),
		})
	}
	return annotations, nil
}

// snapgeneBundle is the JSON fallback schema.
type snapgeneBundle struct {
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
	Topology string `json:"topology"`
	Features []struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Start  int    `json:"start"`
		End    int    `json:"end"`
		Strand int    `json:"strand"`
	} `json:"features"`
}

func parseSnapGeneJSON(content []byte, filename string) (*ImportResult, error) {
	var bundle snapgeneBundle
	if err := json.Unmarshal(content, &bundle); err != nil {
		return nil, importErr("snapgene", "bad JSON bundle: %v", err)
	}

	validated, err := seq.Validate(bundle.Sequence)
	if err != nil {
		return nil, importErr("snapgene", "bad bundle sequence: %v", err)
	}

	name := bundle.Name
	if name == "" {
		name = strings.TrimSuffix(filename, ".json")
	}
	if name == "" {
		name = "snapgene_import"
	}

	annotations := []model.Annotation{}
	for i, f := range bundle.Features {
		if f.Start < 1 || f.End < f.Start {
			return nil, importErr("snapgene", "feature %q has invalid range %d-%d", f.Name, f.Start, f.End)
		}
		strand := f.Strand
		if strand != -1 {
			strand = 1
		}
		label := f.Name
		if label == "" {
			label = "feature_" + strconv.Itoa(i+1)
		}
		featureType := f.Type
		if featureType == "" {
			featureType = "misc_feature"
		}
		annotations = append(annotations, model.Annotation{
			Label:          label,
			FeatureType:    featureType,
			Start:          f.Start,
			End:            f.End,
			Segments:       []model.Segment{{Start: f.Start, End: f.End, Strand: strand}},
			Qualifiers:     map[string]string{},
			ProvenanceTags: provenanceTags(featureType, nil),
		})
	}

	return &ImportResult{
		Name:        name,
		Sequence:    validated,
		Topology:    normalizeTopology(bundle.Topology),
		Tags:        []string{"snapgene"},
		Metadata:    map[string]string{"format": "snapgene"},
		Annotations: clipAnnotations(annotations, len(validated)),
	}, nil
}

// clipAnnotations drops annotations whose segments fall outside the
// sequence; the model would reject the whole payload otherwise.
func clipAnnotations(annotations []model.Annotation, seqLen int) []model.Annotation {
	kept := make([]model.Annotation, 0, len(annotations))
	for _, a := range annotations {
		inBounds := true
		for _, s := range a.Segments {
			if s.Start < 1 || s.End > seqLen {
				inBounds = false
			}
		}
		if inBounds {
			kept = append(kept, a)
		}
	}
	return kept
}
