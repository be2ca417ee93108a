package system

import (
	"log"
	"sync"

	"golang.design/x/clipboard"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
)

// ClipboardSystem copies the HUD text to the system clipboard when the copy
// key is pressed.
type ClipboardSystem struct {
	write func(text string) error
}

func NewClipboardSystem() *ClipboardSystem {
	var (
		once    sync.Once
		initErr error
	)
	return &ClipboardSystem{write: func(text string) error {
		once.Do(func() { initErr = clipboard.Init() })
		if initErr != nil {
			return initErr
		}
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}}
}

func (c *ClipboardSystem) Update(w *ecs.World) {
	if w == nil || c.write == nil {
		return
	}
	input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok || !input.CopyPressed {
		return
	}
	display, ok := ecs.Single(w, component.DisplayComponent.Kind())
	if !ok || display.Text == "" {
		return
	}
	if err := c.write(display.Text); err != nil {
		log.Printf("clipboard: %v", err)
	}
}
