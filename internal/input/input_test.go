package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestDefaultKeyBindings(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want Action
	}{
		{glfw.KeyW, ActionMoveForward},
		{glfw.KeyS, ActionMoveBackward},
		{glfw.KeyA, ActionMoveLeft},
		{glfw.KeyD, ActionMoveRight},
		{glfw.KeyQ, ActionMoveUp},
		{glfw.KeyE, ActionMoveDown},
		{glfw.KeyV, ActionPerspective},
		{glfw.KeyB, ActionOrthographic},
		{glfw.KeyEscape, ActionQuit},
		{glfw.KeyF12, ActionScreenshot},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			im := NewInputManager()
			im.HandleKeyEvent(tt.key, glfw.Press)
			for a := Action(0); a < ActionCount; a++ {
				if got := im.IsActive(a); got != (a == tt.want) {
					t.Errorf("IsActive(%v) = %v after pressing key %d", a, got, tt.key)
				}
			}
			im.HandleKeyEvent(tt.key, glfw.Release)
			if im.IsActive(tt.want) {
				t.Errorf("%v still active after release", tt.want)
			}
		})
	}
}

func TestDefaultMouseBindings(t *testing.T) {
	tests := []struct {
		button glfw.MouseButton
		want   Action
	}{
		{glfw.MouseButtonLeft, ActionMouseLeft},
		{glfw.MouseButtonRight, ActionMouseRight},
		{glfw.MouseButtonMiddle, ActionMouseMiddle},
	}
	for _, tt := range tests {
		im := NewInputManager()
		im.HandleMouseButtonEvent(tt.button, glfw.Press)
		if !im.IsActive(tt.want) || !im.JustPressed(tt.want) {
			t.Errorf("button %d: %v not pressed", tt.button, tt.want)
		}
		im.HandleMouseButtonEvent(tt.button, glfw.Release)
		if im.IsActive(tt.want) || !im.JustReleased(tt.want) {
			t.Errorf("button %d: %v not released", tt.button, tt.want)
		}
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) || im.JustPressed(a) {
			t.Fatalf("unbound key activated %v", a)
		}
	}
}

func TestJustPressedLastsOneFrame(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyV, glfw.Press)
	if !im.JustPressed(ActionPerspective) {
		t.Fatal("press edge missing")
	}
	im.PostUpdate()
	if im.JustPressed(ActionPerspective) {
		t.Fatal("press edge survived PostUpdate")
	}
	if !im.IsActive(ActionPerspective) {
		t.Fatal("held key no longer active")
	}

	// key repeat keeps the action held without a new edge
	im.HandleKeyEvent(glfw.KeyV, glfw.Repeat)
	if im.JustPressed(ActionPerspective) || !im.IsActive(ActionPerspective) {
		t.Fatal("repeat produced a press edge or dropped the hold")
	}

	im.HandleKeyEvent(glfw.KeyV, glfw.Release)
	if !im.JustReleased(ActionPerspective) {
		t.Fatal("release edge missing")
	}
	im.PostUpdate()
	if im.JustReleased(ActionPerspective) {
		t.Fatal("release edge survived PostUpdate")
	}
}

func TestTwoKeysOneAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyUp, ActionMoveForward)

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	im.PostUpdate()

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if !im.IsActive(ActionMoveForward) {
		t.Fatal("action dropped while the second key is still down")
	}
	if im.JustReleased(ActionMoveForward) {
		t.Fatal("release edge fired while the second key is still down")
	}

	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	if im.IsActive(ActionMoveForward) || !im.JustReleased(ActionMoveForward) {
		t.Fatal("action not released after both keys went up")
	}
}

func TestDuplicateReleaseIgnored(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.JustReleased(ActionMoveForward) {
		t.Fatal("release without press produced an edge")
	}
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Fatal("press after stray release ignored")
	}
}

func TestActionString(t *testing.T) {
	if got := ActionMoveUp.String(); got != "move_up" {
		t.Errorf("ActionMoveUp.String() = %q", got)
	}
	if got := ActionCount.String(); got != "unknown" {
		t.Errorf("ActionCount.String() = %q", got)
	}
	for a := Action(0); a < ActionCount; a++ {
		if a.String() == "" {
			t.Errorf("action %d has no name", a)
		}
	}
}
