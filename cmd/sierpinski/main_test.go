package main

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	size, depth, filename, err := parseArgs([]string{"800", "6", "sierpinski_6.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 800 || depth != 6 || filename != "sierpinski_6.png" {
		t.Fatalf("unexpected arguments: %d %d %s", size, depth, filename)
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no arguments", nil, true},
		{"too few", []string{"800", "6"}, true},
		{"too many", []string{"800", "6", "a.png", "b.png"}, true},
		{"size not a number", []string{"big", "6", "a.png"}, false},
		{"depth not a number", []string{"800", "six", "a.png"}, false},
		{"zero size", []string{"0", "6", "a.png"}, false},
		{"negative depth", []string{"800", "-1", "a.png"}, false},
		{"trailing flag", []string{"800", "6", "a.png", "-invert"}, false},
	}

	for _, tc := range cases {
		_, _, _, err := parseArgs(tc.args)
		if err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
		if errors.Is(err, errUsage) != tc.usage {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestSettings_Validate(t *testing.T) {
	s := &settings{size: 10, method: methodRecursive, scale: 1}
	if err := s.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.method = "spiral"
	if err := s.validate(); err == nil {
		t.Fatalf("expected an error for an unknown method")
	}

	s.method = methodChaos
	s.scale = 0
	if err := s.validate(); err == nil {
		t.Fatalf("expected an error for a zero scale")
	}
}

func TestSettings_Render(t *testing.T) {
	s := &settings{size: 40, depth: 3, method: methodRecursive, scale: 2, invert: true}
	img, err := s.render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 80 {
		t.Fatalf("expected an 80x80 image, got %v", b)
	}
	// Inverted: the background turns black.
	if color.GrayModel.Convert(img.At(0, 0)).(color.Gray).Y != 0 {
		t.Fatalf("expected an inverted background")
	}

	s = &settings{size: 80, method: methodChaos, points: 1000, seed: 3, scale: 1}
	img, err = s.render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Fatalf("expected an 80x60 image, got %v", b)
	}

	s = &settings{size: 1, method: methodChaos, scale: 1}
	if _, err := s.render(); err == nil {
		t.Fatalf("expected an error for a size too small for the chaos method")
	}
}

func TestParseArgs_TrailingFlagIsReported(t *testing.T) {
	_, _, _, err := parseArgs([]string{"800", "6", "out.png", "-scale", "2"})
	if err == nil || !strings.Contains(err.Error(), "-scale") {
		t.Fatalf("expected the misplaced flag to be reported, got %v", err)
	}
}

func TestBanner_DescribesArgumentOrderAndChaosSize(t *testing.T) {
	for _, want := range []string{
		"Flags must be given before the arguments",
		"With -method chaos the size is the image width",
		"iterations argument is ignored",
	} {
		if !strings.Contains(banner, want) {
			t.Fatalf("usage text should contain %q", want)
		}
	}
}
