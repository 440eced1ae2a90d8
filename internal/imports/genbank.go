package imports

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Mvgnu/BioLabs-sub002/internal/model"
	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
)

var (
	// digits and whitespace in the ORIGIN block
	originNoise = regexp.MustCompile(`[\s0-9/]+`)

	// a..b with optional fuzzy markers, or a single base position
	rangeRegex = regexp.MustCompile(`^[<>]?(\d+)(?:\.\.[<>]?(\d+))?$`)
)

// ParseGenBank parses a GenBank flat file: the LOCUS line for name,
// length, and topology, the FEATURES table into annotations, and the
// ORIGIN block into the sequence.
func ParseGenBank(content []byte, filename string) (*ImportResult, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	locus, rest, found := strings.Cut(text, "\n")
	if !found || !strings.HasPrefix(locus, "LOCUS") {
		return nil, importErr("genbank", "missing LOCUS header in %s", filename)
	}

	fields := strings.Fields(locus)
	if len(fields) < 2 {
		return nil, importErr("genbank", "malformed LOCUS line: %q", locus)
	}
	name := fields[1]

	topology := "linear"
	for _, f := range fields {
		if strings.EqualFold(f, "circular") {
			topology = "circular"
		}
	}

	// restore the newline the LOCUS cut consumed so a FEATURES or
	// ORIGIN line directly after LOCUS is still found
	rest = "\n" + rest
	header, body, _ := strings.Cut(rest, "\nFEATURES")
	features := ""
	origin := ""
	if body == "" {
		// no FEATURES table; ORIGIN may still follow the header
		header, origin, _ = strings.Cut(rest, "\nORIGIN")
	} else {
		features, origin, _ = strings.Cut(body, "\nORIGIN")
	}

	if origin == "" {
		return nil, importErr("genbank", "missing ORIGIN block in %s", filename)
	}
	origin, _, _ = strings.Cut(origin, "\n//")

	sequence, err := seq.Validate(originNoise.ReplaceAllString(origin, ""))
	if err != nil {
		return nil, importErr("genbank", "bad ORIGIN sequence: %v", err)
	}

	annotations, err := parseFeatureTable(features, len(sequence))
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Name:        name,
		Sequence:    sequence,
		Topology:    topology,
		Tags:        headerTags(header),
		Metadata:    map[string]string{"format": "genbank"},
		Annotations: annotations,
	}
	return result, nil
}

// headerTags derives top-level tags from the GenBank header: KEYWORDS
// entries plus recognized source organisms like "synthetic construct".
func headerTags(header string) []string {
	tags := []string{}
	seen := map[string]bool{}
	add := func(tag string) {
		tag = strings.TrimSpace(strings.TrimSuffix(tag, "."))
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, line := range strings.Split(header, "\n") {
		if rest, ok := strings.CutPrefix(line, "KEYWORDS"); ok {
			for _, kw := range strings.Split(rest, ";") {
				add(strings.ToLower(strings.TrimSpace(kw)))
			}
		}
	}

	if strings.Contains(strings.ToLower(header), "synthetic construct") {
		add("synthetic construct")
	}
	return tags
}

// parseFeatureTable walks the FEATURES block. A feature starts with a
// key at indent 5; every deeper-indented line is a location
// continuation or a /qualifier belonging to the open feature.
func parseFeatureTable(features string, seqLen int) ([]model.Annotation, error) {
	annotations := []model.Annotation{}
	if strings.TrimSpace(features) == "" {
		return annotations, nil
	}

	type rawFeature struct {
		key        string
		location   string
		qualifiers []string
	}

	raw := []rawFeature{}
	lines := strings.Split(features, "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "FEATURES") {
			continue
		}
		trimmed := strings.TrimSpace(line)

		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent == 5 && !strings.HasPrefix(trimmed, "/") {
			key, loc, _ := strings.Cut(trimmed, " ")
			raw = append(raw, rawFeature{key: key, location: strings.TrimSpace(loc)})
			continue
		}

		if len(raw) == 0 {
			continue // qualifier with no open feature; tolerate
		}
		f := &raw[len(raw)-1]
		if strings.HasPrefix(trimmed, "/") {
			f.qualifiers = append(f.qualifiers, trimmed)
		} else if len(f.qualifiers) > 0 {
			// continuation of a multi-line qualifier value
			f.qualifiers[len(f.qualifiers)-1] += " " + trimmed
		} else {
			// continuation of a multi-line location
			f.location += trimmed
		}
	}

	for i, f := range raw {
		segments, err := parseLocation(f.location, 1)
		if err != nil {
			return nil, importErr("genbank", "feature %s: %v", f.key, err)
		}
		for _, s := range segments {
			if s.Start < 1 || s.End > seqLen {
				return nil, importErr("genbank",
					"feature %s location %d..%d outside sequence of %d bp", f.key, s.Start, s.End, seqLen)
			}
		}

		qualifiers := parseQualifiers(f.qualifiers)

		label := qualifiers["label"]
		if label == "" {
			label = qualifiers["gene"]
		}
		if label == "" {
			label = qualifiers["product"]
		}
		if label == "" {
			label = f.key + "_" + strconv.Itoa(i+1)
		}

		annotations = append(annotations, model.Annotation{
			Label:          label,
			FeatureType:    f.key,
			Start:          segments[0].Start,
			End:            segments[len(segments)-1].End,
			Segments:       segments,
			Qualifiers:     qualifiers,
			ProvenanceTags: provenanceTags(f.key, qualifiers),
		})
	}

	return annotations, nil
}

// parseLocation expands a GenBank location into segments. Handles
// single ranges, join(a..b,c..d,...), order(...), and complement(...)
// at any nesting level; complement flips the strand of everything it
// wraps, so per-segment strands survive mixed joins.
func parseLocation(loc string, strand int) ([]model.Segment, error) {
	loc = strings.TrimSpace(loc)

	if inner, ok := cutWrapper(loc, "complement"); ok {
		return parseLocation(inner, -strand)
	}
	if inner, ok := cutWrapper(loc, "join"); ok {
		return parseJoin(inner, strand)
	}
	if inner, ok := cutWrapper(loc, "order"); ok {
		return parseJoin(inner, strand)
	}

	m := rangeRegex.FindStringSubmatch(loc)
	if m == nil {
		return nil, importErr("genbank", "unparsable location %q", loc)
	}

	start, _ := strconv.Atoi(m[1])
	end := start
	if m[2] != "" {
		end, _ = strconv.Atoi(m[2])
	}
	if end < start {
		return nil, importErr("genbank", "inverted location %q", loc)
	}

	return []model.Segment{{Start: start, End: end, Strand: strand}}, nil
}

// parseJoin splits a join body on top-level commas; every joined range
// becomes one segment of the same annotation.
func parseJoin(body string, strand int) ([]model.Segment, error) {
	segments := []model.Segment{}
	depth := 0
	part := strings.Builder{}
	flush := func() error {
		if part.Len() == 0 {
			return nil
		}
		segs, err := parseLocation(part.String(), strand)
		if err != nil {
			return err
		}
		segments = append(segments, segs...)
		part.Reset()
		return nil
	}

	for _, r := range body {
		switch {
		case r == '(':
			depth++
			part.WriteRune(r)
		case r == ')':
			depth--
			part.WriteRune(r)
		case r == ',' && depth == 0:
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			part.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, importErr("genbank", "empty join body %q", body)
	}
	return segments, nil
}

// cutWrapper unwraps fn(...) when loc is wrapped by fn at depth zero.
func cutWrapper(loc, fn string) (string, bool) {
	if !strings.HasPrefix(loc, fn+"(") || !strings.HasSuffix(loc, ")") {
		return "", false
	}
	return loc[len(fn)+1 : len(loc)-1], true
}

// parseQualifiers reads /key="value" lines into one aggregated map for
// the feature. Bare /key qualifiers record an empty value.
func parseQualifiers(lines []string) map[string]string {
	qualifiers := map[string]string{}
	for _, line := range lines {
		line = strings.TrimPrefix(line, "/")
		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !found {
			qualifiers[key] = ""
			continue
		}
		qualifiers[key] = strings.Trim(strings.TrimSpace(value), `"`)
	}
	return qualifiers
}

// provenanceTags derives labels from the feature type and qualifier
// content: CDS features carry "cds", and any qualifier mentioning an
// experiment is preserved verbatim.
func provenanceTags(featureType string, qualifiers map[string]string) []string {
	tags := []string{}
	if strings.EqualFold(featureType, "CDS") {
		tags = append(tags, "cds")
	}
	keys := make([]string, 0, len(qualifiers))
	for key := range qualifiers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := qualifiers[key]
		if strings.Contains(strings.ToLower(key), "experiment") ||
			strings.Contains(strings.ToLower(value), "experiment") {
			if value != "" {
				tags = append(tags, value)
			} else {
				tags = append(tags, key)
			}
		}
	}
	return tags
}
