package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	type args struct {
		content  string
		filename string
	}
	tests := []struct {
		name string
		args args
		want Format
	}{
		{"gb extension", args{"", "plasmid.gb"}, FormatGenBank},
		{"gbk extension", args{"", "plasmid.GBK"}, FormatGenBank},
		{"ape extension", args{"", "plasmid.ape"}, FormatGenBank},
		{"xml extension", args{"", "design.xml"}, FormatSBOL},
		{"rdf extension", args{"", "design.rdf"}, FormatSBOL},
		{"dna extension", args{"", "construct.dna"}, FormatSnapGene},
		{"LOCUS sniff", args{"LOCUS       X 10 bp", "input"}, FormatGenBank},
		{"XML sniff", args{"  <?xml version=\"1.0\"?>", "input"}, FormatSBOL},
		{"binary sniff", args{"\x09\x00\x00\x00\x0c", "input"}, FormatSnapGene},
		{"JSON sniff", args{"{\"sequence\": \"ATGC\"}", "input"}, FormatSnapGene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect([]byte(tt.args.content), tt.args.filename); got != tt.want {
				t.Errorf("Detect() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseDispatch(t *testing.T) {
	genbank, err := Parse([]byte(testGenBank), "plasmid.gb")
	require.NoError(t, err)
	assert.Equal(t, "genbank", genbank.Metadata["format"])

	sbol, err := Parse([]byte(testSBOL), "design.xml")
	require.NoError(t, err)
	assert.Equal(t, "sbol", sbol.Metadata["format"])

	snapgene, err := Parse(testSnapGeneBinary(true), "construct.dna")
	require.NoError(t, err)
	assert.Equal(t, "snapgene", snapgene.Metadata["format"])
}

func TestToAssetPayload(t *testing.T) {
	result, err := ParseGenBank([]byte(testGenBank), "plasmid.gb")
	require.NoError(t, err)

	payload := result.ToAssetPayload()
	assert.Equal(t, result.Name, payload.Name)
	assert.Equal(t, result.Sequence, payload.Sequence)
	assert.Equal(t, "circular", payload.Metadata["topology"])
	assert.Equal(t, "genbank", payload.Metadata["format"])
	assert.Len(t, payload.Annotations, len(result.Annotations))

	// the payload owns its metadata map
	payload.Metadata["format"] = "mutated"
	assert.Equal(t, "genbank", result.Metadata["format"])
}
