package fixture

import "testing"

func TestParseManifestReadsStageList(t *testing.T) {
	m, err := ParseManifest([]byte("stages:\n  - irrelevance\n  - deduplicate-ops\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Stages) != 2 || m.Stages[0] != "irrelevance" || m.Stages[1] != "deduplicate-ops" {
		t.Fatalf("unexpected stages: %v", m.Stages)
	}
}

func TestParseManifestRejectsEmptyStageList(t *testing.T) {
	if _, err := ParseManifest([]byte("stages: []\n")); err == nil {
		t.Fatal("expected an error for a manifest with no stages")
	}
}

func TestParseManifestRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseManifest([]byte("stages: [this is not valid\n")); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
