package mediaprobe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mp4 "github.com/abema/go-mp4"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/mewkiz/flac"
)

// AudioDuration returns the playback length of an audio file in
// microseconds. The container is chosen by extension: mp3, wav, flac, m4a.
func AudioDuration(path string) (int64, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3Duration(path)
	case ".wav":
		return wavDuration(path)
	case ".flac":
		return flacDuration(path)
	case ".m4a", ".mp4":
		return mp4Duration(path)
	default:
		return 0, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
}

func mp3Duration(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, fmt.Errorf("decode mp3: %w", err)
	}
	if decoder.SampleRate() <= 0 {
		return 0, fmt.Errorf("mp3 reports sample rate %d", decoder.SampleRate())
	}
	// Length counts decoded bytes: 16-bit stereo, 4 bytes per frame.
	frames := decoder.Length() / 4
	return frames * 1_000_000 / int64(decoder.SampleRate()), nil
}

func wavDuration(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if err := decoder.FwdToPCM(); err != nil {
		return 0, fmt.Errorf("decode wav: %w", err)
	}
	frameBytes := int64(decoder.NumChans) * int64(decoder.BitDepth) / 8
	if frameBytes == 0 || decoder.SampleRate == 0 {
		return 0, fmt.Errorf("wav header reports %d channels, %d-bit, %d Hz",
			decoder.NumChans, decoder.BitDepth, decoder.SampleRate)
	}
	frames := decoder.PCMLen() / frameBytes
	return frames * 1_000_000 / int64(decoder.SampleRate), nil
}

func flacDuration(path string) (int64, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return 0, fmt.Errorf("decode flac: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	if info == nil || info.SampleRate == 0 {
		return 0, fmt.Errorf("flac stream info missing")
	}
	return int64(info.NSamples) * 1_000_000 / int64(info.SampleRate), nil
}

func mp4Duration(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	info, err := mp4.Probe(f)
	if err != nil {
		return 0, fmt.Errorf("probe mp4: %w", err)
	}
	if info.Timescale == 0 {
		return 0, fmt.Errorf("mp4 reports timescale 0")
	}
	return int64(info.Duration) * 1_000_000 / int64(info.Timescale), nil
}
