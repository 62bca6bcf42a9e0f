package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}

	if styles.output == nil {
		t.Error("Styles should have non-nil output")
	}
}

func TestStylesContainMessage(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	tests := []struct {
		name   string
		result string
		text   string
	}{
		{name: "Success", result: styles.Success("rendered"), text: "rendered"},
		{name: "Error", result: styles.Error("decode failed"), text: "decode failed"},
		{name: "FilePath", result: styles.FilePath("/path/to/app.css"), text: "/path/to/app.css"},
		{name: "Selector", result: styles.Selector(".btn:hover"), text: ".btn:hover"},
		{name: "Warning", result: styles.Warning("stale map"), text: "stale map"},
		{name: "Dim", result: styles.Dim("3 nodes"), text: "3 nodes"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !strings.Contains(test.result, test.text) {
				t.Errorf("%s() result should contain message, got: %s", test.name, test.result)
			}
		})
	}
}

func TestStylesTiming(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if got := styles.Timing("124ms", false); !strings.Contains(got, "124ms") {
		t.Errorf("Timing() result should contain message, got: %s", got)
	}
	if got := styles.Timing("2.1s", true); !strings.Contains(got, "2.1s") {
		t.Errorf("Timing() result should contain message, got: %s", got)
	}
}
