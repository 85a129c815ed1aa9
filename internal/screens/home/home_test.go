package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/rewards"
	"github.com/abhisek/quizforge/internal/router"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/screens/decks"
)

type staticSource struct{ decks []*quiz.Quiz }

func (s staticSource) Decks() ([]*quiz.Quiz, error) { return s.decks, nil }

func testEngine(xp, streak int) *rewards.Engine {
	state := rewards.NewState()
	state.XP = xp
	state.Streak = streak
	return rewards.NewEngine("learner-1", state, nil, nil)
}

func testHome(engine *rewards.Engine) *HomeScreen {
	playFactory := func(q *quiz.Quiz) screen.Screen { return nil }
	return New(engine, staticSource{}, nil, playFactory, "")
}

func TestHomeViewShowsStats(t *testing.T) {
	h := testHome(testEngine(750, 4))

	view := h.View(120, 40)
	if !strings.Contains(view, "LEVEL 2") {
		t.Errorf("expected level 2 in view")
	}
	if !strings.Contains(view, "750 XP") {
		t.Errorf("expected XP total in view")
	}
	if !strings.Contains(view, "4 DAY STREAK") {
		t.Errorf("expected streak in view")
	}
	if !strings.Contains(view, "250 XP to level 3") {
		t.Errorf("expected level progress in view")
	}
}

func TestHomeCompactViewShowsStats(t *testing.T) {
	h := testHome(testEngine(120, 0))

	view := h.View(82, 18)
	if !strings.Contains(view, "Lv1") {
		t.Errorf("expected compact level in view")
	}
	if !strings.Contains(view, "✦120") {
		t.Errorf("expected compact XP in view")
	}
}

func TestHomeMenuOpensDeckPicker(t *testing.T) {
	h := testHome(testEngine(0, 0))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from menu selection")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*decks.DecksScreen); !ok {
		t.Fatalf("expected decks screen, got %T", push.Screen)
	}
}

func TestHomeUpdateNoteShown(t *testing.T) {
	playFactory := func(q *quiz.Quiz) screen.Screen { return nil }
	h := New(testEngine(0, 0), staticSource{}, nil, playFactory, "v1.4.0")

	view := h.View(120, 40)
	if !strings.Contains(view, "v1.4.0") {
		t.Errorf("expected update note in view")
	}
}

func TestMascotForState(t *testing.T) {
	if got := mascotForState(&rewards.State{Streak: 5}); got != MascotCelebrating {
		t.Errorf("streak 5: got %v, want celebrating", got)
	}
	if got := mascotForState(&rewards.State{}); got != MascotIdle {
		t.Errorf("fresh state: got %v, want idle", got)
	}
}

func TestHomeTitle(t *testing.T) {
	if got := testHome(testEngine(0, 0)).Title(); got != "Home" {
		t.Errorf("Title() = %q", got)
	}
}
