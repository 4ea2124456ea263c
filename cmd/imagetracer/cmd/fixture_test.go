package cmd

import (
	"io/ioutil"
	"os"
	"testing"
)

func TestReadFixtureRejectsShortHeader(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/short.fix"
	if err := ioutil.WriteFile(path, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readFixture(path); err == nil {
		t.Error("expected an error for a header shorter than 8 bytes")
	}
}

func TestReadFixtureRejectsTruncatedPayload(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/truncated.fix"
	f := &fixture{Width: 4, Height: 4, Pixels: make([]byte, 16)}
	if err := writeFixture(path, f); err != nil {
		t.Fatal(err)
	}
	// Truncate the payload after writing a valid header.
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(path, buf[:10], 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readFixture(path); err == nil {
		t.Error("expected an error for a truncated payload")
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/square.fix"
	want := &fixture{Width: 2, Height: 2, Pixels: []byte{0, 1, 1, 0}}
	if err := writeFixture(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := readFixture(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width != want.Width || got.Height != want.Height {
		t.Errorf("dimensions = %dx%d, want %dx%d", got.Width, got.Height, want.Width, want.Height)
	}
	for i := range want.Pixels {
		if got.Pixels[i] != want.Pixels[i] {
			t.Errorf("pixel %d = %d, want %d", i, got.Pixels[i], want.Pixels[i])
		}
	}
	os.Remove(path)
}
