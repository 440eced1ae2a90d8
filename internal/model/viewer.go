package model

import (
	"strings"

	"github.com/Mvgnu/BioLabs-sub002/internal/analytics"
	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
)

// Track is one annotation rendered for the sequence viewer.
type Track struct {
	Label          string    `json:"label"`
	FeatureType    string    `json:"feature_type"`
	Segments       []Segment `json:"segments"`
	ProvenanceTags []string  `json:"provenance_tags"`
}

// Translation is the amino-acid rendering of one coding feature.
type Translation struct {
	Label      string `json:"label"`
	AminoAcids string `json:"amino_acids"`
}

// ViewerAnalytics is the analytics block of the viewer payload.
type ViewerAnalytics struct {
	CodonUsage           map[string]int        `json:"codon_usage"`
	GCSkew               []analytics.SkewPoint `json:"gc_skew"`
	ThermodynamicRisk    analytics.RiskReport  `json:"thermodynamic_risk"`
	TranslationFrames    analytics.FrameScan   `json:"translation_frames"`
	CodonAdaptationIndex float64               `json:"codon_adaptation_index"`
	MotifHotspots        []analytics.Hotspot   `json:"motif_hotspots"`
}

// ViewerPayload is the DTO consumed by the presentation collaborator.
type ViewerPayload struct {
	Sequence     string               `json:"sequence"`
	Tracks       []Track              `json:"tracks"`
	Translations []Translation        `json:"translations"`
	Guardrails   analytics.Guardrails `json:"guardrails"`
	Analytics    ViewerAnalytics      `json:"analytics"`
}

// BuildViewerPayload renders one version for the viewer: annotation
// tracks, translations of coding features, and the full analytics
// block. window sizes the GC-skew sliding window; 0 uses the default.
func BuildViewerPayload(version *AssetVersion, window int) ViewerPayload {
	payload := ViewerPayload{
		Sequence:     version.Sequence,
		Tracks:       []Track{},
		Translations: []Translation{},
		Guardrails:   version.GuardrailHeuristics,
		Analytics: ViewerAnalytics{
			CodonUsage:           analytics.CodonUsage(version.Sequence, 0),
			GCSkew:               analytics.GCSkew(version.Sequence, window),
			ThermodynamicRisk:    analytics.ThermodynamicRisk(version.Sequence),
			TranslationFrames:    analytics.TranslationFrames(version.Sequence),
			CodonAdaptationIndex: analytics.CodonAdaptationIndex(version.Sequence, nil),
			MotifHotspots:        analytics.MotifHotspots(version.Sequence),
		},
	}

	for _, a := range version.Annotations {
		payload.Tracks = append(payload.Tracks, Track{
			Label:          a.Label,
			FeatureType:    a.FeatureType,
			Segments:       append([]Segment(nil), a.Segments...),
			ProvenanceTags: append([]string(nil), a.ProvenanceTags...),
		})

		if isCoding(a) {
			payload.Translations = append(payload.Translations, Translation{
				Label:      a.Label,
				AminoAcids: translateAnnotation(version.Sequence, a),
			})
		}
	}

	return payload
}

func isCoding(a Annotation) bool {
	if strings.EqualFold(a.FeatureType, "CDS") {
		return true
	}
	for _, tag := range a.ProvenanceTags {
		if tag == "cds" {
			return true
		}
	}
	return false
}

// translateAnnotation joins an annotation's segments in order and
// translates the spliced frame. Minus-strand features translate the
// reverse complement of the joined span.
func translateAnnotation(sequence string, a Annotation) string {
	var joined strings.Builder
	minus := false
	for _, s := range a.Segments {
		joined.WriteString(sequence[s.Start-1 : s.End])
		if s.Strand < 0 {
			minus = true
		}
	}

	spliced := joined.String()
	if minus {
		spliced = seq.RevComp(spliced)
	}
	return analytics.Translate(spliced, 0)
}
