package sfx

import "github.com/gopxl/beep"

// PCM renders the named effect as signed 16-bit little-endian stereo at
// SampleRate.
func PCM(name Name) ([]byte, error) {
	s, err := Streamer(name)
	if err != nil {
		return nil, err
	}
	return Render(s), nil
}

// Render drains s into 16-bit little-endian stereo frames.
func Render(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := int16(clampUnit(buf[i][c]) * 32767)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
