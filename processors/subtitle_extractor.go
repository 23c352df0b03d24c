package processor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	ffmpeg_go "github.com/u2takey/ffmpeg-go"
)

// SubtitleExtractor pulls an embedded subtitle stream out of a video
// container and writes it as a sidecar .srt next to the video, where the
// library scanner will pick it up on the next scan.
type SubtitleExtractor struct {
	config *SubtitleExtractorConfig
}

type SubtitleExtractorConfig struct {
	// Language is the preferred subtitle stream language tag ("eng",
	// "jpn", ...). Empty means take the first subtitle stream.
	Language string `mapstructure:"language"`
}

func NewSubtitleExtractor(cfg SubtitleExtractorConfig) *SubtitleExtractor {
	return &SubtitleExtractor{config: &cfg}
}

type ExtractorError struct {
	Msg           string
	ffprobeOutput string
}

func (e *ExtractorError) Error() string {
	return e.Msg
}

func (e *ExtractorError) VerboseError() string {
	return fmt.Sprintf("FFProbe Output:\n%s\n\n%s", e.Msg, e.ffprobeOutput)
}

type ffmpegStreamProbe struct {
	Streams []struct {
		Index     int    `json:"index"`
		CodecType string `json:"codec_type"`
		Tags      struct {
			Language string `json:"language"`
		}
	} `json:"streams"`
}

// Run extracts the subtitle stream from inputFilePath and returns the
// path of the written sidecar file.
func (s *SubtitleExtractor) Run(inputFilePath string) (string, error) {
	probeStr, err := ffmpeg_go.Probe(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("error probing %s: %v", inputFilePath, err)
	}

	var probe ffmpegStreamProbe
	err = json.Unmarshal([]byte(probeStr), &probe)
	if err != nil {
		return "", &ExtractorError{
			Msg:           fmt.Sprintf("error unmarshalling ffprobe output: %v", err),
			ffprobeOutput: probeStr,
		}
	}

	subtitleStream := -1
	for _, stream := range probe.Streams {
		if stream.CodecType != "subtitle" {
			continue
		}
		if s.config.Language == "" || stream.Tags.Language == s.config.Language {
			subtitleStream = stream.Index
			break
		}
	}

	if subtitleStream == -1 {
		return "", &ExtractorError{
			Msg:           "could not find a matching subtitle stream",
			ffprobeOutput: probeStr,
		}
	}

	outputPath := sidecarPath(inputFilePath)
	log.Info().
		Str("input", inputFilePath).
		Str("output", outputPath).
		Int("stream", subtitleStream).
		Msg("extracting subtitle stream")

	err = ffmpeg_go.Input(inputFilePath).
		Get(fmt.Sprintf("%d", subtitleStream)).
		Output(outputPath).
		OverWriteOutput().
		ErrorToStdOut().
		Run()
	if err != nil {
		return "", fmt.Errorf("failed to run ffmpeg on %s: %v", inputFilePath, err)
	}

	return outputPath, nil
}

// sidecarPath swaps the container extension for .srt, so "Ep01.mkv"
// becomes "Ep01.srt" in the same directory.
func sidecarPath(videoPath string) string {
	if i := strings.LastIndex(videoPath, "."); i > 0 {
		return videoPath[:i] + ".srt"
	}
	return videoPath + ".srt"
}
