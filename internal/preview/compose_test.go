package preview

import (
	"fmt"
	"testing"

	"github.com/filerelay/filerelay-dock/internal/model"
)

var testLabels = Labels{
	Empty: "(empty)",
	More:  func(n int) string { return fmt.Sprintf("...and %d more files", n) },
}

func entries(n int) []model.FileEntry {
	out := make([]model.FileEntry, n)
	for i := range out {
		out[i] = model.NewFileEntry(fmt.Sprintf(`C:\drop\file%02d.txt`, i))
	}
	return out
}

func TestCompose_Empty(t *testing.T) {
	c := Compose(nil, 30, testLabels)
	if len(c.Lines) != 1 || c.Lines[0] != "(empty)" {
		t.Errorf("Expected placeholder line, got %v", c.Lines)
	}
}

func TestCompose_Truncated(t *testing.T) {
	c := Compose(entries(35), 30, testLabels)

	if len(c.Lines) != 30 {
		t.Fatalf("Expected 30 lines, got %d", len(c.Lines))
	}
	for i := 0; i < 29; i++ {
		if want := fmt.Sprintf("file%02d.txt", i); c.Lines[i] != want {
			t.Errorf("Line %d = %q, expected %q", i, c.Lines[i], want)
		}
	}
	if c.Lines[29] != "...and 6 more files" {
		t.Errorf("Expected summary line, got %q", c.Lines[29])
	}
	if c.Remaining != 6 {
		t.Errorf("Expected 6 remaining, got %d", c.Remaining)
	}
}

func TestCompose_ExactFit(t *testing.T) {
	c := Compose(entries(30), 30, testLabels)

	if len(c.Lines) != 30 {
		t.Fatalf("Expected 30 lines, got %d", len(c.Lines))
	}
	if c.Lines[29] != "file29.txt" {
		t.Errorf("Expected last real name, got %q", c.Lines[29])
	}
	if c.Remaining != 0 {
		t.Errorf("Expected no summary, got remaining %d", c.Remaining)
	}
}

func TestCompose_MaxLinesClamped(t *testing.T) {
	for _, maxLines := range []int{0, -4, 1} {
		c := Compose(entries(3), maxLines, testLabels)
		if len(c.Lines) != 1 || c.Lines[0] != "...and 3 more files" {
			t.Errorf("maxLines=%d: expected single summary line, got %v", maxLines, c.Lines)
		}
	}

	c := Compose(entries(1), 0, testLabels)
	if len(c.Lines) != 1 || c.Lines[0] != "file00.txt" {
		t.Errorf("Expected single name for one entry, got %v", c.Lines)
	}
}

func TestCompose_FallbackToFullPath(t *testing.T) {
	list := []model.FileEntry{
		model.NewFileEntry(`C:\folder\`),
		model.NewFileEntry(""),
		model.NewFileEntry(`C:\x.txt`),
	}

	c := Compose(list, 30, testLabels)
	expected := []string{`C:\folder\`, "x.txt"}
	if len(c.Lines) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, c.Lines)
	}
	for i := range expected {
		if c.Lines[i] != expected[i] {
			t.Errorf("Line %d = %q, expected %q", i, c.Lines[i], expected[i])
		}
	}
}

func TestCompose_OnlyEmptyPaths(t *testing.T) {
	list := []model.FileEntry{model.NewFileEntry(""), model.NewFileEntry("")}

	c := Compose(list, 30, testLabels)
	if len(c.Lines) != 1 || c.Lines[0] != "(empty)" {
		t.Errorf("Expected placeholder when nothing is printable, got %v", c.Lines)
	}
}
