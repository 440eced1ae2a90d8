package toolkit

import (
	"reflect"
	"testing"
)

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantID  string
		wantErr bool
	}{
		{"empty id substitutes the default", "", PresetDefault, false},
		{"default", PresetDefault, PresetDefault, false},
		{"multiplex", PresetMultiplex, PresetMultiplex, false},
		{"high gc", PresetHighGC, PresetHighGC, false},
		{"unknown id", "touchdown", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupPreset(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupPreset() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got.ID != tt.wantID {
				t.Errorf("LookupPreset() id = %s, want %s", got.ID, tt.wantID)
			}
		})
	}
}

func TestPresetIDs(t *testing.T) {
	want := []string{PresetDefault, PresetHighGC, PresetMultiplex}
	if got := PresetIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("PresetIDs() = %v, want %v sorted", got, want)
	}
}

func TestPresetParameters(t *testing.T) {
	multiplex, err := LookupPreset(PresetMultiplex)
	if err != nil {
		t.Fatal(err)
	}
	if !multiplex.CrossDimerScan {
		t.Error("multiplex preset must enable the cross-dimer scan")
	}
	if multiplex.StrategyBias != StrategyGoldenGate {
		t.Errorf("multiplex strategy bias = %s, want %s", multiplex.StrategyBias, StrategyGoldenGate)
	}

	highGC, err := LookupPreset(PresetHighGC)
	if err != nil {
		t.Fatal(err)
	}
	if highGC.TmOffset <= 0 {
		t.Error("high_gc preset must raise the Tm window")
	}
	if highGC.GCCeiling <= multiplex.GCCeiling {
		t.Error("high_gc preset must tolerate more GC than the others")
	}
}
