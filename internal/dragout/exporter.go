package dragout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/filerelay/filerelay-dock/internal/logger"
	"github.com/filerelay/filerelay-dock/internal/model"
)

// ErrNothingToExport is returned when a drag starts on an empty registry.
var ErrNothingToExport = errors.New("no files to export")

// Runner runs the native drag loop. It blocks until drop or cancel.
type Runner interface {
	DoDragDrop(payload PayloadProvider, source Source, allowed Effect) (Effect, error)
}

// Exporter turns a registry snapshot into one drag operation.
type Exporter struct {
	runner Runner
}

var log = logger.ComponentLogger("dragout")

// NewExporter creates an exporter that drives runner.
func NewExporter(runner Runner) *Exporter {
	return &Exporter{runner: runner}
}

// Export offers entries to the native drag loop. An empty snapshot starts no
// drag. Entries with empty paths are left out of the payload.
func (e *Exporter) Export(entries []model.FileEntry) (Effect, error) {
	if len(entries) == 0 {
		return EffectNone, ErrNothingToExport
	}

	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.FullPath
	}
	payload := NewFileListPayload(paths)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("starting drag", "entries", len(entries), "paths", payload.Count(),
			"files", payloadFiles(payload))
	}

	effect, err := e.runner.DoDragDrop(payload, ButtonSource{}, EffectCopy|EffectMove)
	if err != nil {
		return EffectNone, fmt.Errorf("drag files: %w", err)
	}
	log.Debug("drag finished", "effect", effect)
	return effect, nil
}

// payloadFiles decodes the buffer a drop target would receive, for logging.
func payloadFiles(p PayloadProvider) []string {
	buf, err := p.Data(FormatFileList, MediumGlobal)
	if err != nil {
		return nil
	}
	files, err := DecodeFileList(buf)
	if err != nil {
		return nil
	}
	return files
}
