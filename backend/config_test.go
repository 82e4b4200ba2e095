package backend

import "testing"

func TestConfigFingerprintStableAcrossKeyOrder(t *testing.T) {
	a := map[string]any{"endpoint": "https://x", "timeout": 30}
	b := map[string]any{"timeout": 30, "endpoint": "https://x"}

	fa, err := ConfigFingerprint(a)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := ConfigFingerprint(b)
	if err != nil {
		t.Fatal(err)
	}
	if fa != fb {
		t.Fatal("expected map key order not to affect the fingerprint")
	}
}

func TestConfigFingerprintDiffersOnValueChange(t *testing.T) {
	a := map[string]any{"endpoint": "https://x"}
	b := map[string]any{"endpoint": "https://y"}

	fa, _ := ConfigFingerprint(a)
	fb, _ := ConfigFingerprint(b)
	if fa == fb {
		t.Fatal("expected different config values to fingerprint differently")
	}
}
