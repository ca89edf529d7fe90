package config

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestRGBUnmarshalArray(t *testing.T) {
	var c RGB
	if err := json.Unmarshal([]byte(`[255, 215, 0]`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != (RGB{255, 215, 0}) {
		t.Fatalf("unexpected color %v", c)
	}
}

func TestRGBUnmarshalString(t *testing.T) {
	var c RGB
	if err := json.Unmarshal([]byte(`" 0 , 128,255 "`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != (RGB{0, 128, 255}) {
		t.Fatalf("unexpected color %v", c)
	}
}

func TestRGBUnmarshalClamps(t *testing.T) {
	var c RGB
	if err := json.Unmarshal([]byte(`[-5, 300, 40]`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != (RGB{0, 255, 40}) {
		t.Fatalf("unexpected color %v", c)
	}
}

func TestRGBUnmarshalErrors(t *testing.T) {
	var c RGB
	if err := json.Unmarshal([]byte(`[1, 2]`), &c); err == nil {
		t.Fatal("expected error for short array")
	}
	if err := json.Unmarshal([]byte(`"1,two,3"`), &c); err == nil {
		t.Fatal("expected error for non-numeric component")
	}
	if err := json.Unmarshal([]byte(`true`), &c); err == nil {
		t.Fatal("expected error for wrong JSON type")
	}
}

func TestRGBColor(t *testing.T) {
	c := RGB{10, 20, 30}
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if c.Color() != want {
		t.Fatalf("unexpected color %v", c.Color())
	}
	if c.IsZero() {
		t.Fatal("nonzero color reported zero")
	}
	if !(RGB{}).IsZero() {
		t.Fatal("zero color not reported zero")
	}
}
