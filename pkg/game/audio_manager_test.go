package game

import (
	"encoding/binary"
	"testing"
)

func TestSynthesizePCM(t *testing.T) {
	tests := []struct {
		id      SoundID
		seconds float64
	}{
		{SoundPop, 0.08},
		{SoundChime, 0.4},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			data := SynthesizePCM(tt.id, SampleRate)
			wantFrames := int(float64(SampleRate) * tt.seconds)
			if len(data) != wantFrames*4 {
				t.Fatalf("expected %d bytes, got %d", wantFrames*4, len(data))
			}

			// 左右声道相同，且不是全静音
			var peak int16
			for i := 0; i < len(data); i += 4 {
				l := int16(binary.LittleEndian.Uint16(data[i:]))
				r := int16(binary.LittleEndian.Uint16(data[i+2:]))
				if l != r {
					t.Fatalf("frame %d: channels differ (%d vs %d)", i/4, l, r)
				}
				if l > peak {
					peak = l
				}
			}
			if peak < 1000 {
				t.Errorf("expected audible signal, peak sample %d", peak)
			}
		})
	}
}

func TestSynthesizePCMUnknown(t *testing.T) {
	if data := SynthesizePCM("bogus", SampleRate); data != nil {
		t.Errorf("expected nil for unknown sound, got %d bytes", len(data))
	}
}

// TestAudioManagerWithoutContext 没有音频上下文时播放是空操作
func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if am.PlaySound(SoundPop) {
		t.Error("PlaySound without context should report false")
	}
	if am.Active() != 0 {
		t.Errorf("expected no active players, got %d", am.Active())
	}
	am.StopAll()
}
