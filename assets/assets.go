// Package assets owns the process-wide media handles: the ebiten audio
// context, the rendered sound effects and the UI font face.
package assets

import (
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/cakechase/sfx"
)

// UIFace is the built-in bitmap face used by the HUD and menus.
var UIFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

func audioCtx() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(int(sfx.SampleRate))
	})
	return audioContext
}

// SoundBank plays synthesized effects through ebiten's audio context. PCM
// is rendered once per effect at construction.
type SoundBank struct {
	pcm    map[sfx.Name][]byte
	volume float64
}

func NewSoundBank(volume float64) (*SoundBank, error) {
	bank := &SoundBank{pcm: make(map[sfx.Name][]byte), volume: volume}
	for _, name := range sfx.Names() {
		data, err := sfx.PCM(name)
		if err != nil {
			return nil, fmt.Errorf("assets: render %s: %w", name, err)
		}
		bank.pcm[name] = data
	}
	return bank, nil
}

func (b *SoundBank) Play(name sfx.Name) {
	if b == nil {
		return
	}
	data, ok := b.pcm[name]
	if !ok {
		log.Printf("assets: no sound %q", name)
		return
	}
	player := audioCtx().NewPlayerFromBytes(data)
	player.SetVolume(b.volume)
	player.Play()
}
