// Package model is the canonical sequence entity graph: Asset,
// AssetVersion, Annotation, and Segment, plus the diff engine and the
// payload contracts the engine exchanges with its storage and
// presentation collaborators. The graph is a strict tree: each asset
// owns its versions, each version owns its annotations outright.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/Mvgnu/BioLabs-sub002/internal/analytics"
	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
	"github.com/Mvgnu/BioLabs-sub002/internal/thermo"
	"github.com/Mvgnu/BioLabs-sub002/internal/toolkit"
)

// Segment is one contiguous span of an annotation, 1-based inclusive.
// Strand is +1 or -1.
type Segment struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Strand int `json:"strand"`
}

// Annotation is a labeled feature over one or more segments. Joined
// features (multi-exon, wrapped origins) carry several segments under
// one annotation.
type Annotation struct {
	Label          string            `json:"label"`
	FeatureType    string            `json:"feature_type"`
	Start          int               `json:"start"`
	End            int               `json:"end"`
	Segments       []Segment         `json:"segments"`
	Qualifiers     map[string]string `json:"qualifiers"`
	ProvenanceTags []string          `json:"provenance_tags"`
}

// Attachment is a raw source file carried alongside an import.
type Attachment struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
}

// AssetPayload is the sole input the sequence model accepts for asset
// creation and versioning.
type AssetPayload struct {
	Name        string            `json:"name"`
	Sequence    string            `json:"sequence"`
	Topology    string            `json:"topology"`
	Tags        []string          `json:"tags"`
	Metadata    map[string]string `json:"metadata"`
	Annotations []Annotation      `json:"annotations"`
	Attachments []Attachment      `json:"attachments"`
}

// KineticsSummary estimates how the construct's termini behave in a
// polymerase reaction: annealing Tm of each end and the resulting
// extension probability.
type KineticsSummary struct {
	TmForward            float64 `json:"tm_forward"`
	TmReverse            float64 `json:"tm_reverse"`
	ExtensionProbability float64 `json:"extension_probability"`
	State                string  `json:"state"`
}

// AssetVersion is one immutable snapshot of an asset's sequence.
// VersionIndex is 1-based, strictly increasing, and never reused.
type AssetVersion struct {
	ID                  string               `json:"id"`
	VersionIndex        int                  `json:"version_index"`
	Sequence            string               `json:"sequence"`
	SequenceLength      int                  `json:"sequence_length"`
	GCContent           float64              `json:"gc_content"`
	GuardrailHeuristics analytics.Guardrails `json:"guardrail_heuristics"`
	KineticsSummary     KineticsSummary      `json:"kinetics_summary"`
	AssemblyPresets     []string             `json:"assembly_presets"`
	Annotations         []Annotation         `json:"annotations"`
	CreatedAt           time.Time            `json:"created_at"`
}

// Asset is a named logical construct owning an ordered, append-only
// collection of versions.
type Asset struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Topology  string            `json:"topology"`
	Tags      []string          `json:"tags"`
	Metadata  map[string]string `json:"metadata"`
	CreatedBy string            `json:"created_by"`
	CreatedAt time.Time         `json:"created_at"`
	Versions  []*AssetVersion   `json:"versions"`
}

// LatestVersion returns the newest version, nil for an empty asset.
func (a *Asset) LatestVersion() *AssetVersion {
	if len(a.Versions) == 0 {
		return nil
	}
	return a.Versions[len(a.Versions)-1]
}

// Version returns the version with the given index or ErrNotFound.
func (a *Asset) Version(index int) (*AssetVersion, error) {
	if index < 1 || index > len(a.Versions) {
		return nil, fmt.Errorf("%w: version %d of asset %s", ErrNotFound, index, a.Name)
	}
	return a.Versions[index-1], nil
}

// newVersion validates a payload and computes the version's derived
// fields. Annotations are copied fresh: versions never share them.
func newVersion(payload AssetPayload, index int) (*AssetVersion, error) {
	sequence, err := seq.Validate(payload.Sequence)
	if err != nil {
		return nil, fmt.Errorf("invalid sequence for %s: %v", payload.Name, err)
	}

	annotations := make([]Annotation, 0, len(payload.Annotations))
	for _, a := range payload.Annotations {
		if len(a.Segments) == 0 {
			return nil, fmt.Errorf("annotation %q of %s has no segments", a.Label, payload.Name)
		}
		for _, s := range a.Segments {
			if s.Start < 1 || s.End > len(sequence) || s.Start > s.End {
				return nil, fmt.Errorf(
					"annotation %q of %s: segment %d..%d outside [1, %d]",
					a.Label, payload.Name, s.Start, s.End, len(sequence))
			}
		}
		annotations = append(annotations, copyAnnotation(a))
	}

	return &AssetVersion{
		ID:                  ulid.Make().String(),
		VersionIndex:        index,
		Sequence:            sequence,
		SequenceLength:      len(sequence),
		GCContent:           analytics.GCContent(sequence),
		GuardrailHeuristics: analytics.GuardrailHeuristics(sequence),
		KineticsSummary:     kineticsSummary(sequence),
		AssemblyPresets:     toolkit.PresetIDs(),
		Annotations:         annotations,
		CreatedAt:           time.Now().UTC(),
	}, nil
}

// kineticsSummary estimates terminal annealing behavior. Degrades to
// review instead of failing when the sequence is too short to anneal.
func kineticsSummary(sequence string) KineticsSummary {
	const (
		anchor    = 20
		annealing = 55.0
		alpha     = 0.8
	)

	if len(sequence) < anchor {
		return KineticsSummary{State: analytics.StateReview}
	}

	fwd, errF := thermo.Tm(sequence[:anchor], thermo.DefaultConditions)
	rev, errR := thermo.Tm(seq.RevComp(sequence)[:anchor], thermo.DefaultConditions)
	if errF != nil || errR != nil {
		// ambiguity codes at a terminus have no single Tm
		return KineticsSummary{State: analytics.StateReview}
	}

	margin := fwd
	if rev < margin {
		margin = rev
	}
	prob := thermo.ExtensionProb(margin-annealing, alpha)

	state := analytics.StateOK
	if prob < 0.5 {
		state = analytics.StateReview
	}

	return KineticsSummary{
		TmForward:            fwd,
		TmReverse:            rev,
		ExtensionProbability: prob,
		State:                state,
	}
}

func copyAnnotation(a Annotation) Annotation {
	out := Annotation{
		Label:          a.Label,
		FeatureType:    a.FeatureType,
		Start:          a.Start,
		End:            a.End,
		Segments:       append([]Segment(nil), a.Segments...),
		Qualifiers:     map[string]string{},
		ProvenanceTags: append([]string(nil), a.ProvenanceTags...),
	}
	for k, v := range a.Qualifiers {
		out.Qualifiers[k] = v
	}
	return out
}
