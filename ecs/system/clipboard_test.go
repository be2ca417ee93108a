package system

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
)

func TestClipboardSystemCopiesHUD(t *testing.T) {
	s := newTestSession(t, nil)
	s.frame(time.Second, NewDisplaySystem())

	var copied []string
	sys := &ClipboardSystem{write: func(text string) error {
		copied = append(copied, text)
		return nil
	}}

	sys.Update(s.w)
	if len(copied) != 0 {
		t.Fatal("nothing should be copied without the copy key")
	}

	s.input.CopyPressed = true
	sys.Update(s.w)
	display, _ := ecs.Get(s.w, s.session, component.DisplayComponent.Kind())
	if len(copied) != 1 || copied[0] != display.Text {
		t.Fatalf("expected HUD text copied, got %q", copied)
	}

	failing := &ClipboardSystem{write: func(string) error { return errors.New("no display") }}
	failing.Update(s.w)
}
