package game

import "testing"

// TestNewGameState 初始状态
func TestNewGameState(t *testing.T) {
	gs := NewGameState()
	if gs.Status != StatusPlaying {
		t.Errorf("status = %v, want PLAYING", gs.Status)
	}
	if gs.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", gs.Attempts)
	}
	if gs.HasBest() {
		t.Error("new state should have no best time")
	}
}

// TestGameState_KillTerminal 死亡后保持 DEAD 直到重置
func TestGameState_KillTerminal(t *testing.T) {
	gs := NewGameState()
	gs.Tick(1.5)

	if !gs.Kill() {
		t.Fatal("Kill should change state")
	}
	if gs.Status != StatusDead || gs.Attempts != 2 || gs.DeathTime != 1.5 {
		t.Fatalf("after kill: %+v", gs)
	}

	if gs.Kill() {
		t.Error("second Kill should be ignored")
	}
	if changed, _ := gs.Win(); changed {
		t.Error("Win after death should be ignored")
	}
	if gs.TogglePause() {
		t.Error("dead game cannot be paused")
	}
	gs.Tick(3)
	if gs.DisplayTime() != 1.5 || gs.Attempts != 2 {
		t.Errorf("timer or attempts changed after death: time=%.1f attempts=%d", gs.DisplayTime(), gs.Attempts)
	}

	gs.ResetRun()
	if gs.Status != StatusPlaying || gs.Elapsed != 0 || gs.Attempts != 2 {
		t.Errorf("after reset: %+v", gs)
	}
}

// TestGameState_BestTime 只有更快的通关才刷新最佳时间
func TestGameState_BestTime(t *testing.T) {
	gs := NewGameState()

	tests := []struct {
		run      float64
		wantNew  bool
		wantBest float64
	}{
		{run: 12, wantNew: true, wantBest: 12},
		{run: 15, wantNew: false, wantBest: 12},
		{run: 9, wantNew: true, wantBest: 9},
	}
	for i, tt := range tests {
		gs.ResetRun()
		gs.Tick(tt.run)
		changed, newBest := gs.Win()
		if !changed {
			t.Fatalf("run %d: Win did not change state", i)
		}
		if newBest != tt.wantNew || gs.BestTime != tt.wantBest {
			t.Errorf("run %d: newBest=%v best=%.0f, want %v %.0f", i, newBest, gs.BestTime, tt.wantNew, tt.wantBest)
		}
		if gs.DisplayTime() != tt.run {
			t.Errorf("run %d: display time = %.0f", i, gs.DisplayTime())
		}
	}
}

// TestGameState_Pause 暂停冻结计时
func TestGameState_Pause(t *testing.T) {
	gs := NewGameState()
	gs.Tick(1)
	if !gs.TogglePause() || gs.Status != StatusPaused {
		t.Fatal("expected PAUSED")
	}
	gs.Tick(5)
	if gs.Elapsed != 1 {
		t.Errorf("elapsed advanced while paused: %.1f", gs.Elapsed)
	}
	if gs.Kill() {
		t.Error("paused game should not die")
	}
	gs.TogglePause()
	if !gs.Playing() {
		t.Error("expected PLAYING after unpause")
	}
}

func TestStatus_String(t *testing.T) {
	names := map[Status]string{
		StatusPlaying: "PLAYING",
		StatusDead:    "DEAD",
		StatusWon:     "WON",
		StatusPaused:  "PAUSED",
		Status(99):    "UNKNOWN",
	}
	for s, want := range names {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
