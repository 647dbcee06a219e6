package etl

import (
	"bytes"

	"github.com/finflow/tracker/internal/tracker/domain"
	trackerErrors "github.com/finflow/tracker/internal/tracker/errors"
	"github.com/rs/zerolog"
)

// Summary reports a completed import.
type Summary struct {
	UserID   string
	Imported int
}

// Pipeline sequences Extract -> Transform -> Load for one uploaded file. A
// stage failure short-circuits the remaining stages.
type Pipeline struct {
	transformer *Transformer
	loader      *Loader
	logger      zerolog.Logger
}

func NewPipeline(transformer *Transformer, loader *Loader, logger zerolog.Logger) *Pipeline {
	return &Pipeline{transformer: transformer, loader: loader, logger: logger}
}

// Run imports the uploaded file for the user. Failures carry the stage that
// produced them; a transform drop is not a failure, only a logged count.
func (p *Pipeline) Run(fileBytes []byte, filename string, user domain.User) (*Summary, error) {
	p.logger.Info().
		Str("user", user.Username).
		Str("file", filename).
		Msg("starting import pipeline")

	rows, err := Extract(bytes.NewReader(fileBytes), filename)
	if err != nil {
		return nil, trackerErrors.NewPipelineError(trackerErrors.StageExtract, err)
	}
	p.logger.Info().Int("rows", len(rows)).Msg("extracted rows")

	normalized, dropped := p.transformer.Transform(rows)
	if dropped > 0 {
		p.logger.Warn().Int("dropped", dropped).Msg("dropped unparseable rows")
	}

	count, err := p.loader.Load(normalized, user.ID)
	if err != nil {
		return nil, trackerErrors.NewPipelineError(trackerErrors.StageLoad, err)
	}

	p.logger.Info().
		Str("user", user.Username).
		Int("imported", count).
		Msg("import pipeline completed")
	return &Summary{UserID: user.ID, Imported: count}, nil
}
