package config

import "testing"

func TestLoadReportsFailureOnEveryCall(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatal("Load with missing file returned nil error")
	}

	// The once latch must not swallow the error on a repeat call.
	cfg, err := Load("does-not-exist.yaml")
	if err == nil {
		t.Fatal("second Load returned nil error after failed first load")
	}
	if cfg != nil {
		t.Errorf("second Load returned config %+v alongside error", cfg)
	}
}
