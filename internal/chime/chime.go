// Package chime plays a short sound whenever the curves start over.
package chime

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/errors"
)

const toneSampleRate = beep.SampleRate(44100)

// Player holds a decoded cue in memory and plays it through the speaker.
type Player struct {
	buf    *beep.Buffer
	volume float64
	log    *log.Logger
}

// New loads the configured cue and initialises the speaker.
func New(cfg config.Chime, logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.Default()
	}

	var (
		buf *beep.Buffer
		err error
	)
	if cfg.File != "" {
		buf, err = decodeFile(cfg.File)
	} else {
		buf = toneBuffer(toneSampleRate, cfg.Frequency, cfg.Duration)
	}
	if err != nil {
		return nil, err
	}

	format := buf.Format()
	bufferSize := format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAudio, err, "init speaker at %d Hz", format.SampleRate)
	}
	logger.Debug("chime ready", "samples", buf.Len(), "rate", int(format.SampleRate))

	return &Player{buf: buf, volume: cfg.Volume, log: logger}, nil
}

// Play starts the cue without waiting for it to finish.
func (p *Player) Play() {
	s := &effects.Volume{
		Streamer: p.buf.Streamer(0, p.buf.Len()),
		Base:     2,
		Volume:   p.volume,
	}
	speaker.Play(s)
}

// Close stops anything still playing.
func (p *Player) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAudio, err, "open chime")
	}

	// Decode based on extension
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New(errors.ErrCodeAudio, "unsupported chime file type %q", ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(errors.ErrCodeAudio, err, "decode %s", path)
	}
	// Closing the streamer closes f as well.
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAudio, err, "read %s", path)
	}
	return buf, nil
}

// toneBuffer renders a sine tone with a short linear fade at both ends so it
// does not click.
func toneBuffer(sr beep.SampleRate, freq int, d time.Duration) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(sr.N(d), tone(sr, freq, sr.N(d))))
	return buf
}

// tone returns a stereo sine streamer at freq Hz, faded in and out over the
// first and last 5% of total samples.
func tone(sr beep.SampleRate, freq, total int) beep.Streamer {
	step := 2 * math.Pi * float64(freq) / float64(sr)
	fade := max(total/20, 1)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			gain := 1.0
			if pos < fade {
				gain = float64(pos) / float64(fade)
			} else if rest := total - pos; rest < fade {
				gain = math.Max(float64(rest)/float64(fade), 0)
			}
			v := gain * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}
