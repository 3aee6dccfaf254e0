package transition

import "testing"

func TestCurveAt_ClampsProgress(t *testing.T) {
	t.Parallel()

	curves := []Curve{Linear, EaseIn, EaseOut, EaseInOut, {}}
	for _, c := range curves {
		if got := c.At(-0.5); got != 0 {
			t.Fatalf("%v.At(-0.5) = %v, want 0", c, got)
		}
		if got := c.At(0); got != 0 {
			t.Fatalf("%v.At(0) = %v, want 0", c, got)
		}
		if got := c.At(1); got != 1 {
			t.Fatalf("%v.At(1) = %v, want 1", c, got)
		}
		if got := c.At(2.5); got != 1 {
			t.Fatalf("%v.At(2.5) = %v, want 1", c, got)
		}
	}
}

func TestCurveAt_Shapes(t *testing.T) {
	t.Parallel()

	if got := Linear.At(0.25); got != 0.25 {
		t.Fatalf("Linear.At(0.25) = %v, want 0.25", got)
	}

	var zero Curve
	if got := zero.At(0.25); got != 0.25 {
		t.Fatalf("zero curve At(0.25) = %v, want 0.25", got)
	}

	// Cubic easing lags at the front, leads at the back, and the
	// symmetric curve crosses the midpoint exactly.
	if in := EaseIn.At(0.5); in >= 0.5 {
		t.Fatalf("EaseIn.At(0.5) = %v, want below 0.5", in)
	}
	if out := EaseOut.At(0.5); out <= 0.5 {
		t.Fatalf("EaseOut.At(0.5) = %v, want above 0.5", out)
	}
	if mid := EaseInOut.At(0.5); mid != 0.5 {
		t.Fatalf("EaseInOut.At(0.5) = %v, want 0.5", mid)
	}
}

func TestParseCurve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Curve
	}{
		{"linear", Linear},
		{"ease-in", EaseIn},
		{"easein", EaseIn},
		{"ease-out", EaseOut},
		{"ease-in-out", EaseInOut},
		{"ease", EaseInOut},
		{" Ease-In-Out ", EaseInOut},
	}
	for _, tc := range cases {
		got, err := ParseCurve(tc.in)
		if err != nil {
			t.Fatalf("ParseCurve(%q): %v", tc.in, err)
		}
		if got.name != tc.want.name {
			t.Fatalf("ParseCurve(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseCurve("bounce"); err == nil {
		t.Fatal("ParseCurve accepted an unknown keyword")
	}
}

func TestCurveString(t *testing.T) {
	t.Parallel()

	if got := EaseInOut.String(); got != "ease-in-out" {
		t.Fatalf("String() = %q, want %q", got, "ease-in-out")
	}
	var zero Curve
	if got := zero.String(); got != "linear" {
		t.Fatalf("zero String() = %q, want %q", got, "linear")
	}
}
