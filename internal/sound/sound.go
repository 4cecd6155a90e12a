//go:build !ci

// Package sound plays short cues for room events.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const sampleRate = beep.SampleRate(44100)

// toneFor is the built-in tone used when no file exists for a cue.
var toneFor = map[string]struct {
	freq     float64
	duration time.Duration
}{
	CueSuccess: {880, 120 * time.Millisecond},
	CueError:   {220, 250 * time.Millisecond},
	CueDice:    {660, 60 * time.Millisecond},
}

// SoundManager holds decoded cues. Play is a no-op until Init succeeds.
type SoundManager struct {
	dir string

	mu      sync.RWMutex
	buffers map[string]*beep.Buffer
	enabled bool
}

// NewSoundManager creates a manager reading cue files from dir
// (success.mp3, error.wav, ...). Missing files fall back to built-in tones.
func NewSoundManager(dir string) *SoundManager {
	return &SoundManager{
		dir:     dir,
		buffers: make(map[string]*beep.Buffer),
	}
}

func (sm *SoundManager) Init() error {
	// Init speaker with smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	buffers := make(map[string]*beep.Buffer)
	if err := loadSoundFiles(sm.dir, buffers); err != nil {
		return err
	}
	for name, tone := range toneFor {
		if _, ok := buffers[name]; ok {
			continue
		}
		if buf, err := synthesize(tone.freq, tone.duration); err == nil {
			buffers[name] = buf
		}
	}

	sm.mu.Lock()
	sm.buffers = buffers
	sm.enabled = true
	sm.mu.Unlock()
	return nil
}

func standardFormat() beep.Format {
	return beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 4}
}

func synthesize(freq float64, d time.Duration) (*beep.Buffer, error) {
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	buffer := beep.NewBuffer(standardFormat())
	buffer.Append(beep.Take(sampleRate.N(d), tone))
	return buffer, nil
}

// loadSoundFiles decodes every mp3/wav in dir, keyed by base name.
func loadSoundFiles(dir string, into map[string]*beep.Buffer) error {
	if dir == "" {
		return nil
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}
		buf, err := loadSoundFile(filepath.Join(dir, name), ext)
		if err != nil {
			continue
		}
		into[strings.TrimSuffix(name, filepath.Ext(name))] = buf
	}
	return nil
}

func loadSoundFile(path, ext string) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(standardFormat())
	buffer.Append(resampled)
	return buffer, nil
}

func (sm *SoundManager) Play(name string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.enabled {
		return
	}
	buffer, ok := sm.buffers[name]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = false
}
