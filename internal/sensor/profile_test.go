package sensor

import (
	"errors"
	"testing"
)

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		cat   Category
		value float64
		want  Status
	}{
		{Corrosion, 0, StatusGood},
		{Corrosion, 0.099, StatusGood},
		{Corrosion, 0.1, StatusConcern},
		{Corrosion, 0.399, StatusConcern},
		{Corrosion, 0.4, StatusMalfunction},
		{Corrosion, 1, StatusMalfunction},

		{Pressure, 0, StatusGood},
		{Pressure, 79.9, StatusGood},
		{Pressure, 80, StatusConcern},
		{Pressure, 94.9, StatusConcern},
		{Pressure, 95, StatusMalfunction},
		{Pressure, 100, StatusMalfunction},

		{Temperature, -50, StatusMalfunction},
		{Temperature, -40, StatusMalfunction}, // concern band is strict
		{Temperature, -39.9, StatusConcern},
		{Temperature, -20, StatusConcern}, // good band is strict
		{Temperature, -19.9, StatusGood},
		{Temperature, 119.9, StatusGood},
		{Temperature, 120, StatusConcern},
		{Temperature, 139.9, StatusConcern},
		{Temperature, 140, StatusMalfunction},
		{Temperature, 150, StatusMalfunction},

		{Acoustic, 40, StatusMalfunction},
		{Acoustic, 49.9, StatusMalfunction},
		{Acoustic, 50, StatusConcern}, // concern band is inclusive
		{Acoustic, 59.9, StatusConcern},
		{Acoustic, 60, StatusGood}, // good band is inclusive
		{Acoustic, 90, StatusGood},
		{Acoustic, 90.1, StatusConcern},
		{Acoustic, 100, StatusConcern},
		{Acoustic, 100.1, StatusMalfunction},
		{Acoustic, 120, StatusMalfunction},

		{FlowRate, 0, StatusMalfunction},
		{FlowRate, 50, StatusMalfunction},
		{FlowRate, 50.1, StatusConcern},
		{FlowRate, 100, StatusConcern},
		{FlowRate, 100.1, StatusGood},
		{FlowRate, 899.9, StatusGood},
		{FlowRate, 900, StatusConcern},
		{FlowRate, 949.9, StatusConcern},
		{FlowRate, 950, StatusMalfunction},
		{FlowRate, 1000, StatusMalfunction},
	}

	for _, tt := range tests {
		got, err := Classify(tt.cat, tt.value)
		if err != nil {
			t.Fatalf("Classify(%s, %v): unexpected error: %v", tt.cat, tt.value, err)
		}
		if got != tt.want {
			t.Errorf("Classify(%s, %v) = %s, want %s", tt.cat, tt.value, got, tt.want)
		}
	}
}

func TestClassifyPartitionsRange(t *testing.T) {
	// Every value in a category's range must land in exactly one band.
	const steps = 10000
	for _, cat := range Categories {
		p, err := ProfileFor(cat)
		if err != nil {
			t.Fatalf("ProfileFor(%s): %v", cat, err)
		}
		counts := map[Status]int{}
		for i := 0; i <= steps; i++ {
			v := p.Min + (p.Max-p.Min)*float64(i)/steps
			status, err := Classify(cat, v)
			if err != nil {
				t.Fatalf("Classify(%s, %v): %v", cat, v, err)
			}
			switch status {
			case StatusGood, StatusConcern, StatusMalfunction:
				counts[status]++
			default:
				t.Fatalf("Classify(%s, %v) returned unknown status %q", cat, v, status)
			}
		}
		// Each category's thresholds carve out all three bands.
		for _, want := range []Status{StatusGood, StatusConcern, StatusMalfunction} {
			if counts[want] == 0 {
				t.Errorf("category %s: no values classified as %s", cat, want)
			}
		}
	}
}

func TestClassifyInvalidCategory(t *testing.T) {
	if _, err := Classify("vibration", 1.0); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("Classify(vibration) error = %v, want ErrInvalidCategory", err)
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories {
		got, err := ParseCategory(string(cat))
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error: %v", cat, err)
		}
		if got != cat {
			t.Errorf("ParseCategory(%q) = %q", cat, got)
		}
	}

	if _, err := ParseCategory("vibration"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("ParseCategory(vibration) error = %v, want ErrInvalidCategory", err)
	}
	if _, err := ParseCategory(""); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("ParseCategory(\"\") error = %v, want ErrInvalidCategory", err)
	}
}
