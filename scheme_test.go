package cubestate

import (
	"errors"
	"strings"
	"testing"
)

func solvedNames(s Scheme) []string {
	names := make([]string, 0, NumFacelets)
	for _, face := range Faces {
		for i := 0; i < FaceletsPerFace; i++ {
			names = append(names, s.Name(face.HomeColor()))
		}
	}
	return names
}

func TestDefaultSchemeValid(t *testing.T) {
	if err := DefaultScheme.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestSchemeValidateDuplicates(t *testing.T) {
	s := Scheme{
		"white": FaceU, "red": FaceR, "green": FaceF,
		"yellow": FaceD, "orange": FaceL, "blue": FaceU,
	}
	if err := s.Validate(); err == nil {
		t.Error("two colors on one face should be rejected")
	}
	if err := (Scheme{"white": FaceU}).Validate(); err == nil {
		t.Error("incomplete scheme should be rejected")
	}
}

func TestSchemeFaceletsSolved(t *testing.T) {
	got, err := DefaultScheme.Facelets(solvedNames(DefaultScheme))
	if err != nil {
		t.Fatal(err)
	}
	if got != SolvedFacelets {
		t.Errorf("Facelets = %s, want %s", got, SolvedFacelets)
	}
}

func TestSchemeFaceletsScrambled(t *testing.T) {
	c := Solved()
	c.Apply(TPerm...)
	want := c.Encode()

	names := make([]string, len(want))
	for i := range want {
		color, _ := ParseColor(want[i])
		names[i] = strings.ToUpper(DefaultScheme.Name(color))
	}

	got, err := DefaultScheme.Facelets(names)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Facelets = %s, want %s", got, want)
	}
}

func TestSchemeUnknownColor(t *testing.T) {
	names := solvedNames(DefaultScheme)
	names[7] = "purple"
	if _, err := DefaultScheme.Facelets(names); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("error = %v, want ErrUnknownColor", err)
	}
}

func TestSchemeFaceletsValidates(t *testing.T) {
	names := solvedNames(DefaultScheme)
	names[4] = "red" // Up center
	names[9] = "white"
	if _, err := DefaultScheme.Facelets(names); !errors.Is(err, ErrCenterMismatch) {
		t.Errorf("error = %v, want ErrCenterMismatch", err)
	}

	if _, err := DefaultScheme.Facelets(names[:10]); !errors.Is(err, ErrLength) {
		t.Errorf("error = %v, want ErrLength", err)
	}
}

func TestSchemeCustomOrientation(t *testing.T) {
	// Red front, green left, blue right, orange back.
	s := Scheme{
		"white": FaceU, "blue": FaceR, "red": FaceF,
		"yellow": FaceD, "green": FaceL, "orange": FaceB,
	}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	color, err := s.Color("Red")
	if err != nil || color != ColorF {
		t.Errorf("Color(Red) = %v, %v; want F", color, err)
	}
}
