package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildViewerPayload(t *testing.T) {
	r := NewRegistry()

	payload := testPayload("pVIEW", testSeq)
	payload.Annotations = []Annotation{
		{
			Label:          "orf-1",
			FeatureType:    "CDS",
			Start:          1,
			End:            9,
			Segments:       []Segment{{Start: 1, End: 9, Strand: 1}},
			ProvenanceTags: []string{"cds"},
		},
		{
			Label:       "upstream",
			FeatureType: "misc_feature",
			Start:       10,
			End:         20,
			Segments:    []Segment{{Start: 10, End: 20, Strand: 1}},
		},
	}
	asset, err := r.CreateAsset(payload, "importer")
	require.NoError(t, err)

	viewer := BuildViewerPayload(asset.LatestVersion(), 10)

	assert.Equal(t, testSeq, viewer.Sequence)
	require.Len(t, viewer.Tracks, 2)
	assert.Equal(t, "orf-1", viewer.Tracks[0].Label)
	assert.Equal(t, "misc_feature", viewer.Tracks[1].FeatureType)

	// only the coding feature gets a translation
	require.Len(t, viewer.Translations, 1)
	assert.Equal(t, "orf-1", viewer.Translations[0].Label)
	assert.Equal(t, "MEG", viewer.Translations[0].AminoAcids)

	assert.NotEmpty(t, viewer.Analytics.CodonUsage)
	assert.NotEmpty(t, viewer.Analytics.GCSkew)
	assert.Len(t, viewer.Analytics.TranslationFrames.Frames, 6)
	assert.GreaterOrEqual(t, viewer.Analytics.CodonAdaptationIndex, 0.0)
	assert.LessOrEqual(t, viewer.Analytics.CodonAdaptationIndex, 1.0)
}

func TestBuildViewerPayloadJoinedTranslation(t *testing.T) {
	r := NewRegistry()

	// ATG CCC AAA TAG GGG AAA: the joined feature splices out the CCC
	payload := testPayload("pJOIN", "ATGCCCAAATAGGGGAAA")
	payload.Annotations = []Annotation{{
		Label:       "spliced",
		FeatureType: "CDS",
		Start:       1,
		End:         9,
		Segments: []Segment{
			{Start: 1, End: 3, Strand: 1},
			{Start: 7, End: 9, Strand: 1},
		},
	}}
	asset, err := r.CreateAsset(payload, "importer")
	require.NoError(t, err)

	viewer := BuildViewerPayload(asset.LatestVersion(), 0)
	require.Len(t, viewer.Translations, 1)
	assert.Equal(t, "MK", viewer.Translations[0].AminoAcids)
}

func TestBuildViewerPayloadMinusStrand(t *testing.T) {
	r := NewRegistry()

	// TTTCAT on the plus strand reads ATGAAA on the minus strand
	payload := testPayload("pMINUS", "GGGTTTCATGGG")
	payload.Annotations = []Annotation{{
		Label:       "rev-orf",
		FeatureType: "CDS",
		Start:       4,
		End:         9,
		Segments:    []Segment{{Start: 4, End: 9, Strand: -1}},
	}}
	asset, err := r.CreateAsset(payload, "importer")
	require.NoError(t, err)

	viewer := BuildViewerPayload(asset.LatestVersion(), 0)
	require.Len(t, viewer.Translations, 1)
	assert.Equal(t, "MK", viewer.Translations[0].AminoAcids)
}
