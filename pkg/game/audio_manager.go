package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// SoundID 合成音效标识
type SoundID string

const (
	// SoundPop 烟花爆炸
	SoundPop SoundID = "pop"
	// SoundChime 彩纸出现（点击 YES）
	SoundChime SoundID = "chime"
)

// AudioManager 音频管理器
// 职责：
//   - 播放程序合成的音效（没有音频资源文件）
//   - 与 SettingsManager 联动：音效开关和音量
//
// ctx 为 nil 时所有播放都是空操作，测试和无声卡环境使用这种模式。
type AudioManager struct {
	ctx             *audio.Context
	settingsManager *SettingsManager   // 可为 nil，此时总是以默认音量播放
	pcm             map[SoundID][]byte // 合成结果缓存
	players         []*audio.Player    // 正在播放的播放器，播放结束后回收
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（进程内只能创建一次），可为 nil
//   - sm: SettingsManager 实例，可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		ctx:             ctx,
		settingsManager: sm,
		pcm:             make(map[SoundID][]byte),
	}
}

// PlaySound 播放音效
//
// 同一音效可以叠加播放（多个烟花同时爆炸）。
//
// 返回：
//   - bool: 是否真的开始播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am.ctx == nil {
		return false
	}
	volume := 0.6
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	data, ok := am.pcm[id]
	if !ok {
		data = SynthesizePCM(id, SampleRate)
		if data == nil {
			log.Printf("[AudioManager] Warning: unknown sound %q", id)
			return false
		}
		am.pcm[id] = data
	}

	am.reap()
	player := am.ctx.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
	am.players = append(am.players, player)
	return true
}

// Active 返回仍在播放的播放器数量
func (am *AudioManager) Active() int {
	am.reap()
	return len(am.players)
}

// StopAll 停止所有正在播放的音效
func (am *AudioManager) StopAll() {
	for _, p := range am.players {
		p.Pause()
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player: %v", err)
		}
	}
	am.players = nil
}

// reap 关闭已经播放完的播放器
func (am *AudioManager) reap() {
	live := am.players[:0]
	for _, p := range am.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player: %v", err)
		}
	}
	am.players = live
}

// SynthesizePCM 生成音效的 PCM 数据
//
// 格式与 ebiten audio 一致：16 位有符号小端、双声道。
// 未知音效返回 nil。
func SynthesizePCM(id SoundID, sampleRate int) []byte {
	switch id {
	case SoundPop:
		// 80ms 下滑正弦，600Hz -> 150Hz，指数衰减
		return synth(sampleRate, 0.08, func(t, dur float64) float64 {
			freq := 600 - 450*(t/dur)
			return math.Sin(2*math.Pi*freq*t) * math.Exp(-t*40)
		})
	case SoundChime:
		// 两个谐音叠加，400ms
		return synth(sampleRate, 0.4, func(t, _ float64) float64 {
			a := math.Sin(2*math.Pi*880*t) * math.Exp(-t*6)
			b := math.Sin(2*math.Pi*1320*t) * math.Exp(-t*9)
			return 0.6*a + 0.4*b
		})
	default:
		return nil
	}
}

func synth(sampleRate int, seconds float64, wave func(t, dur float64) float64) []byte {
	n := int(float64(sampleRate) * seconds)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := wave(t, seconds)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := uint16(int16(v * 0.8 * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
