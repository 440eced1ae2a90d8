package imports

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/Mvgnu/BioLabs-sub002/internal/model"
	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
)

// circularityRoles are the sequence-ontology terms that mark a circular
// construct in an SBOL document.
var circularityRoles = []string{"SO:0000988", "circular"}

// ParseSBOL parses an SBOL XML document: Sequence elements into the
// sequence, SequenceAnnotation ranges into annotation tracks, and role
// terms into metadata. Topology defaults to linear unless a
// circularity role is present.
func ParseSBOL(content []byte, filename string) (*ImportResult, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	var (
		name       string
		sequence   string
		roles      []string
		annotation *model.Annotation
		anns       []model.Annotation
	)

	var charData strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, importErr("sbol", "malformed XML in %s: %v", filename, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			charData.Reset()

			switch t.Name.Local {
			case "SequenceAnnotation":
				annotation = &model.Annotation{
					FeatureType:    "misc_feature",
					Qualifiers:     map[string]string{},
					ProvenanceTags: []string{},
				}
				for _, attr := range t.Attr {
					if attr.Name.Local == "displayId" {
						annotation.Label = attr.Value
					}
				}
			case "role":
				for _, attr := range t.Attr {
					if attr.Name.Local == "resource" {
						roles = append(roles, roleTerm(attr.Value))
					}
				}
			case "displayId":
				// captured via CharData below
			}

		case xml.CharData:
			charData.Write(t)

		case xml.EndElement:
			value := strings.TrimSpace(charData.String())
			charData.Reset()

			switch t.Name.Local {
			case "elements":
				if sequence == "" {
					sequence = value
				}
			case "displayId":
				if annotation != nil && annotation.Label == "" {
					annotation.Label = value
				} else if name == "" && annotation == nil {
					name = value
				}
			case "start":
				if annotation != nil {
					annotation.Start, _ = strconv.Atoi(value)
				}
			case "end":
				if annotation != nil {
					annotation.End, _ = strconv.Atoi(value)
				}
			case "role":
				if value != "" {
					roles = append(roles, roleTerm(value))
				}
			case "SequenceAnnotation":
				if annotation != nil && annotation.Start > 0 && annotation.End >= annotation.Start {
					strand := 1
					annotation.Segments = []model.Segment{{
						Start:  annotation.Start,
						End:    annotation.End,
						Strand: strand,
					}}
					if annotation.Label == "" {
						annotation.Label = "annotation_" + strconv.Itoa(len(anns)+1)
					}
					anns = append(anns, *annotation)
				}
				annotation = nil
			}
		}
	}

	if sequence == "" {
		return nil, importErr("sbol", "no sequence elements in %s", filename)
	}

	validated, err := seq.Validate(sequence)
	if err != nil {
		return nil, importErr("sbol", "bad sequence elements: %v", err)
	}

	topology := "linear"
	for _, role := range roles {
		for _, marker := range circularityRoles {
			if strings.Contains(strings.ToLower(role), strings.ToLower(marker)) {
				topology = "circular"
			}
		}
	}

	// annotations outside the validated sequence are dropped the same
	// way a viewer would clip them; the model would reject the payload
	kept := make([]model.Annotation, 0, len(anns))
	for _, a := range anns {
		if a.End <= len(validated) {
			kept = append(kept, a)
		}
	}

	if name == "" {
		name = strings.TrimSuffix(filename, ".xml")
		if name == "" {
			name = "sbol_import"
		}
	}

	metadata := map[string]string{"format": "sbol"}
	if len(roles) > 0 {
		metadata["roles"] = strings.Join(roles, ",")
	}

	return &ImportResult{
		Name:        name,
		Sequence:    validated,
		Topology:    topology,
		Tags:        []string{"sbol"},
		Metadata:    metadata,
		Annotations: kept,
	}, nil
}

// roleTerm shortens a role URI to its trailing ontology term.
func roleTerm(uri string) string {
	if i := strings.LastIndexAny(uri, "/#"); i >= 0 && i+1 < len(uri) {
		return uri[i+1:]
	}
	return uri
}
