package sizing

import (
	"math"
	"testing"

	"github.com/freemanindumentaria/storefront-backend/internal/catalog"
)

func TestRecommendKnownPoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		height float64
		weight float64
		build  Build
		want   catalog.Size
	}{
		// BMI ~21.5, short band, below the mid threshold.
		{"short medium frame", 160, 55, BuildMedium, catalog.SizeM},
		// BMI ~30.5, tall band ignores build.
		{"tall heavy", 190, 110, BuildMedium, catalog.SizeXXL},
		{"tall light", 190, 80, BuildLarge, catalog.SizeXL},
		// BMI ~18.4 in the short band.
		{"short light", 160, 47, BuildLarge, catalog.SizeS},
		// BMI ~26.1 in the middle band with large build.
		{"middle large frame", 170, 75.5, BuildLarge, catalog.SizeXL},
		// BMI ~24.2 in the 175-185 band, below 27 threshold.
		{"tall-ish medium", 180, 78.5, BuildLarge, catalog.SizeXL},
	}

	for _, tc := range cases {
		got, ok := Recommend(tc.height, tc.weight, tc.build)
		if !ok {
			t.Fatalf("%s: expected a recommendation", tc.name)
		}
		if got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestRecommendBuildOverridesBMI(t *testing.T) {
	t.Parallel()

	// BMI ~29.3 would normally land in the band's largest size, but a small
	// build always wins the band's smallest.
	got, ok := Recommend(160, 75, BuildSmall)
	if !ok || got != catalog.SizeS {
		t.Fatalf("small build must force S, got %s (ok=%v)", got, ok)
	}

	// A medium build catches everything small didn't, again regardless of BMI.
	got, ok = Recommend(160, 75, BuildMedium)
	if !ok || got != catalog.SizeM {
		t.Fatalf("medium build must force M, got %s (ok=%v)", got, ok)
	}

	// Only a large build lets the high-BMI branch be reached.
	got, ok = Recommend(160, 75, BuildLarge)
	if !ok || got != catalog.SizeL {
		t.Fatalf("large build with high BMI should be L, got %s (ok=%v)", got, ok)
	}
}

func TestRecommendRejectsOutOfRangeInputs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		height float64
		weight float64
	}{
		{"height below floor", 130, 50},
		{"height above ceiling", 221, 80},
		{"weight below floor", 170, 39},
		{"weight above ceiling", 170, 151},
		{"zero height", 0, 70},
		{"negative weight", 170, -5},
		{"nan height", math.NaN(), 70},
		{"nan weight", 170, math.NaN()},
	}

	for _, tc := range cases {
		if _, ok := Recommend(tc.height, tc.weight, BuildMedium); ok {
			t.Fatalf("%s: expected no recommendation", tc.name)
		}
	}
}

func TestRecommendBandBoundaries(t *testing.T) {
	t.Parallel()

	// 165 cm belongs to the second band: low size is M, not S.
	got, ok := Recommend(165, 50, BuildLarge)
	if !ok || got != catalog.SizeM {
		t.Fatalf("165cm low BMI should be M, got %s", got)
	}

	// 185 cm belongs to the top band.
	got, ok = Recommend(185, 70, BuildSmall)
	if !ok || got != catalog.SizeXL {
		t.Fatalf("185cm low BMI should be XL (build ignored), got %s", got)
	}
}

func TestMeasurementsAvailableForEveryRecommendation(t *testing.T) {
	t.Parallel()

	for _, size := range []catalog.Size{catalog.SizeS, catalog.SizeM, catalog.SizeL, catalog.SizeXL, catalog.SizeXXL} {
		if _, ok := Measurements(size); !ok {
			t.Fatalf("size %s has no measurements", size)
		}
	}
}

func TestBuildValid(t *testing.T) {
	t.Parallel()

	for _, b := range []Build{BuildSmall, BuildMedium, BuildLarge} {
		if !b.Valid() {
			t.Fatalf("%s should be valid", b)
		}
	}
	if Build("huge").Valid() {
		t.Fatal("unknown build should be invalid")
	}
}
