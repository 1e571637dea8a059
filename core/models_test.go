package core

import (
	"testing"
)

func TestFingerprintFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same fingerprint",
			content: "A/HONGKONG/4801/2014",
		},
		{
			name:    "empty content",
			content: "",
		},
		{
			name:    "long content",
			content: `[{"id":"ARTLF7","long":"A/BARN-SWALLOW/HONG-KONG/D10-1161/2010"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp1 := FingerprintFromContent([]byte(tt.content))
			fp2 := FingerprintFromContent([]byte(tt.content))

			if fp1 != fp2 {
				t.Errorf("FingerprintFromContent() produced different fingerprints for same content: %d vs %d", fp1, fp2)
			}
		})
	}
}

func TestFingerprintFromContent_Different(t *testing.T) {
	fp1 := FingerprintFromContent([]byte("content1"))
	fp2 := FingerprintFromContent([]byte("content2"))

	if fp1 == fp2 {
		t.Errorf("FingerprintFromContent() produced same fingerprint for different content")
	}
}

func TestKindString(t *testing.T) {
	if KindAntigen.String() != "antigen" {
		t.Errorf("KindAntigen.String() = %q", KindAntigen.String())
	}
	if KindSerum.String() != "serum" {
		t.Errorf("KindSerum.String() = %q", KindSerum.String())
	}
}
