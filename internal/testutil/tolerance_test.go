package testutil

import "testing"

func TestMeanSquaredDiff(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 0, 3, 0}

	got, err := MeanSquaredDiff(a, b, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Fatalf("MeanSquaredDiff = %v, want 5", got)
	}

	got, err = MeanSquaredDiff(a, b, 2, 3)
	if err != nil || got != 0 {
		t.Fatalf("MeanSquaredDiff[2:3] = %v, %v", got, err)
	}
}

func TestMeanSquaredDiffErrors(t *testing.T) {
	if _, err := MeanSquaredDiff([]float64{1}, []float64{1, 2}, 0, 1); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := MeanSquaredDiff([]float64{1, 2}, []float64{1, 2}, 1, 1); err == nil {
		t.Fatal("expected empty range error")
	}
}
