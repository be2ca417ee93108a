package sfx

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerPlayer mixes effects straight into the system speaker.
type SpeakerPlayer struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

func NewSpeakerPlayer() (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	p := &SpeakerPlayer{mixer: &beep.Mixer{}, ready: true}
	speaker.Play(p.mixer)
	return p, nil
}

func (p *SpeakerPlayer) Play(name Name) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}

	s, err := Streamer(name)
	if err != nil {
		log.Printf("sfx: %v", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *SpeakerPlayer) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}
