package terminal

import "testing"

func TestGetSizeFallsBackWithoutTerminal(t *testing.T) {
	if IsTerminal() {
		t.Skip("stdout is a terminal")
	}

	width, height := GetSize()
	if width != DefaultWidth || height != DefaultHeight {
		t.Errorf("GetSize() = %d, %d, want %d, %d", width, height, DefaultWidth, DefaultHeight)
	}
}
