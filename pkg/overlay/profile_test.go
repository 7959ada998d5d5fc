package overlay

import "testing"

func TestDefaultProfileFrontLoadsOpacity(t *testing.T) {
	tests := []struct {
		progress    float64
		wantOpacity float64
	}{
		{0, 0},
		{0.2, 0.5},
		{0.4, 1},
		{0.7, 1},
		{1, 1},
	}

	for _, tt := range tests {
		st := DefaultProfile(SignalBegan, tt.progress, Layout{})
		if st.Opacity != tt.wantOpacity {
			t.Errorf("opacity at progress %v = %v, want %v", tt.progress, st.Opacity, tt.wantOpacity)
		}
	}
}

func TestDefaultProfileScaleRange(t *testing.T) {
	at0 := DefaultProfile(SignalBegan, 0, Layout{})
	at1 := DefaultProfile(SignalBegan, 1, Layout{})
	if at0.Scale != scaleFloor {
		t.Errorf("scale at progress 0 = %v, want %v", at0.Scale, scaleFloor)
	}
	if at1.Scale != 1 {
		t.Errorf("scale at progress 1 = %v, want 1", at1.Scale)
	}

	// Spring overshoot beyond progress 1 must not grow the box past 1
	// after clamping.
	over := DefaultProfile(SignalBegan, 1.08, Layout{}).Clamped()
	if over.Scale != 1 || over.Opacity != 1 {
		t.Errorf("clamped overshoot style = %+v, want scale 1 opacity 1", over)
	}
}

func TestSlideUpProfileUsesMeasuredHeight(t *testing.T) {
	hints := Layout{Height: 10}

	start := SlideUpProfile(SignalBegan, 0, hints)
	if start.OffsetY != 10 {
		t.Errorf("offset at progress 0 = %d, want full height 10", start.OffsetY)
	}

	mid := SlideUpProfile(SignalBegan, 0.5, hints)
	if mid.OffsetY != 5 {
		t.Errorf("offset at progress 0.5 = %d, want 5", mid.OffsetY)
	}

	end := SlideUpProfile(SignalBegan, 1, hints)
	if end.OffsetY != 0 {
		t.Errorf("offset at progress 1 = %d, want 0", end.OffsetY)
	}

	// Unmeasured layout falls back to a sane travel distance.
	unmeasured := SlideUpProfile(SignalBegan, 0, Layout{})
	if unmeasured.OffsetY <= 0 {
		t.Errorf("fallback offset = %d, want > 0", unmeasured.OffsetY)
	}
}

func TestStyleClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Style
		want Style
	}{
		{"in range", Style{Opacity: 0.5, Scale: 0.9}, Style{Opacity: 0.5, Scale: 0.9}},
		{"overshoot", Style{Opacity: 1.4, Scale: 1.2}, Style{Opacity: 1, Scale: 1}},
		{"undershoot", Style{Opacity: -0.1, Scale: -0.5}, Style{Opacity: 0, Scale: 0}},
	}
	for _, tt := range tests {
		if got := tt.in.Clamped(); got != tt.want {
			t.Errorf("%s: Clamped() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
