package component

import "testing"

func TestFallingObjectOffScreen(t *testing.T) {
	o := &FallingObject{Position: Position{X: 100, Y: 740}, Radius: 20}
	if o.IsOffScreen(720) {
		t.Error("object touching the bottom edge is still visible")
	}
	o.Y = 740.5
	if !o.IsOffScreen(720) {
		t.Error("object fully below the edge should be off screen")
	}
}

func TestFallingObjectContains(t *testing.T) {
	o := &FallingObject{Position: Position{X: 0, Y: 0}, Radius: 5}
	if !o.Contains(3, 4) {
		t.Error("point on the rim should hit")
	}
	if o.Contains(4, 4) {
		t.Error("point outside the radius should miss")
	}
}

func TestPopupFadeIsMonotonic(t *testing.T) {
	p := &Popup{TTL: 1}
	prev := p.Alpha()
	if prev != 1 {
		t.Fatalf("fresh popup alpha = %v, want 1", prev)
	}
	for i := 0; i < 10; i++ {
		p.Life += 0.1
		a := p.Alpha()
		if a > prev {
			t.Fatalf("alpha increased at life %.1f: %v > %v", p.Life, a, prev)
		}
		prev = a
	}
}

func TestBurstShrinks(t *testing.T) {
	b := &BurstParticle{Size: 10, TTL: 0.5}
	if b.CurrentSize() != 10 {
		t.Errorf("CurrentSize() = %v, want 10", b.CurrentSize())
	}
	b.Life = 0.25
	if b.CurrentSize() != 5 {
		t.Errorf("CurrentSize() = %v, want 5", b.CurrentSize())
	}
	b.Life = 1
	if b.CurrentSize() != 0 {
		t.Errorf("expired particle size = %v, want 0", b.CurrentSize())
	}
}

func TestPlayerStateHelpers(t *testing.T) {
	p := NewPlayerState(1)
	if p.ComboMultiplier != 1 || p.ShieldActive {
		t.Fatalf("unexpected initial state %+v", p)
	}
	p.ShieldActive, p.ShieldTimer = true, 3
	p.ConsumeShield()
	if p.ShieldActive || p.ShieldTimer != 0 {
		t.Errorf("ConsumeShield left %+v", p)
	}
	p.ComboMultiplier, p.ComboTimer = 4, 2
	p.ResetCombo()
	if p.ComboMultiplier != 1 || p.ComboTimer != 0 {
		t.Errorf("ResetCombo left %+v", p)
	}
}

func TestScreenFlashDecays(t *testing.T) {
	s := ScreenEffects{FlashTimer: 0.3, FlashDuration: 0.3}
	if s.FlashAlpha(0.4) != 0.4 {
		t.Errorf("FlashAlpha = %v", s.FlashAlpha(0.4))
	}
	s.FlashTimer = 0
	if s.FlashAlpha(0.4) != 0 {
		t.Error("expired flash should be invisible")
	}
}

func TestMatchPhaseString(t *testing.T) {
	if PhaseVictory.String() != "victory" || MatchPhase(42).String() != "unknown" {
		t.Error("unexpected phase names")
	}
}
