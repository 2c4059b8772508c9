package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效ID
const (
	SoundCountdown = "SOUND_COUNTDOWN" // 3/2/1
	SoundGo        = "SOUND_GO"        // Go!
	SoundFinish    = "SOUND_FINISH"    // 冲线
)

// AudioSampleRate 音频采样率
const AudioSampleRate = 48000

// tone 描述一个合成音效：依次播放的若干频率
type tone struct {
	freqs     []float64 // 每段的频率（Hz）
	segment   float64   // 每段时长（秒）
	amplitude float64
}

// 内置音效表（程序合成，不加载音频文件）
var toneTable = map[string]tone{
	SoundCountdown: {freqs: []float64{440}, segment: 0.12, amplitude: 0.4},
	SoundGo:        {freqs: []float64{880}, segment: 0.25, amplitude: 0.4},
	SoundFinish:    {freqs: []float64{523.25, 659.25, 783.99, 1046.5}, segment: 0.12, amplitude: 0.35},
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理比赛中的音效播放
//   - 从 SettingsManager 读取开关和音量
//
// audioContext 为 nil 时所有播放都是空操作（测试和无音频设备环境）
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || am.audioContext == nil {
		return false
	}

	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, ok := am.soundPlayers[soundID]; ok {
		return player
	}

	t, ok := toneTable[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown sound %s", soundID)
		return nil
	}

	player := am.audioContext.NewPlayerFromBytes(synthesize(t, AudioSampleRate))
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量（无设置时使用默认值）
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// synthesize 生成 16 位立体声小端 PCM 数据
// 每段带 5ms 的淡入淡出，避免爆音
func synthesize(t tone, sampleRate int) []byte {
	perSegment := int(t.segment * float64(sampleRate))
	fade := sampleRate / 200
	buf := make([]byte, 0, perSegment*len(t.freqs)*4)
	sample := make([]byte, 4)

	for _, freq := range t.freqs {
		for i := 0; i < perSegment; i++ {
			env := 1.0
			if i < fade {
				env = float64(i) / float64(fade)
			} else if perSegment-i < fade {
				env = float64(perSegment-i) / float64(fade)
			}
			v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * t.amplitude * env
			s := int16(v * math.MaxInt16)
			binary.LittleEndian.PutUint16(sample[0:], uint16(s))
			binary.LittleEndian.PutUint16(sample[2:], uint16(s))
			buf = append(buf, sample...)
		}
	}
	return buf
}
