// Package imports parses GenBank, SBOL, and SnapGene inputs into one
// canonical ImportResult. Each format is a pure parsing function behind
// explicit format detection; there is no parser class hierarchy and no
// runtime type inspection. Parsers fail atomically: a malformed input
// yields an error and no partial result.
package imports

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Mvgnu/BioLabs-sub002/internal/model"
)

// ImportError is the failure type for every importer, carrying the
// format attempted and the reason parsing stopped.
type ImportError struct {
	Format string
	Reason string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%s import failed: %s", e.Format, e.Reason)
}

func importErr(format, reason string, args ...interface{}) *ImportError {
	return &ImportError{Format: format, Reason: fmt.Sprintf(reason, args...)}
}

// Format is one recognized input format.
type Format string

const (
	FormatGenBank  Format = "genbank"
	FormatSBOL     Format = "sbol"
	FormatSnapGene Format = "snapgene"
)

// ImportResult is the canonical output shared by every importer.
type ImportResult struct {
	Name        string             `json:"name"`
	Sequence    string             `json:"sequence"`
	Topology    string             `json:"topology"` // circular | linear
	Tags        []string           `json:"tags"`
	Metadata    map[string]string  `json:"metadata"`
	Attachments []model.Attachment `json:"attachments"`
	Annotations []model.Annotation `json:"annotations"`
}

// ToAssetPayload converts the result into the sole input the sequence
// model accepts. Topology is mirrored into the payload metadata.
func (r *ImportResult) ToAssetPayload() model.AssetPayload {
	metadata := map[string]string{}
	for k, v := range r.Metadata {
		metadata[k] = v
	}
	metadata["topology"] = r.Topology

	return model.AssetPayload{
		Name:        r.Name,
		Sequence:    r.Sequence,
		Topology:    r.Topology,
		Tags:        append([]string(nil), r.Tags...),
		Metadata:    metadata,
		Annotations: append([]model.Annotation(nil), r.Annotations...),
		Attachments: append([]model.Attachment(nil), r.Attachments...),
	}
}

// Detect picks the format for a raw input from its filename extension,
// falling back to content sniffing for extensionless input.
func Detect(content []byte, filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gb", ".gbk", ".genbank", ".ape":
		return FormatGenBank
	case ".xml", ".sbol", ".rdf":
		return FormatSBOL
	case ".dna":
		return FormatSnapGene
	}

	trimmed := strings.TrimSpace(string(content))
	switch {
	case strings.HasPrefix(trimmed, "LOCUS"):
		return FormatGenBank
	case strings.HasPrefix(trimmed, "<"):
		return FormatSBOL
	default:
		// SnapGene covers both its binary container and its JSON bundle
		return FormatSnapGene
	}
}

// Parse dispatches to the parser matching the detected format.
func Parse(content []byte, filename string) (*ImportResult, error) {
	switch Detect(content, filename) {
	case FormatGenBank:
		return ParseGenBank(content, filename)
	case FormatSBOL:
		return ParseSBOL(content, filename)
	default:
		return ParseSnapGene(content, filename)
	}
}

// normalizeTopology maps unrecognized topologies to linear rather than
// failing the import.
func normalizeTopology(topology string) string {
	if strings.EqualFold(strings.TrimSpace(topology), "circular") {
		return "circular"
	}
	return "linear"
}
