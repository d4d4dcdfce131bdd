// ABOUTME: Chime generator application orchestration
// ABOUTME: Coordinates recipe loading, rendering and file output
package app

import (
	"fmt"
	"log"

	"github.com/Resonate-Protocol/chime-go/internal/config"
	"github.com/Resonate-Protocol/chime-go/internal/version"
	"github.com/Resonate-Protocol/chime-go/pkg/audio"
	"github.com/Resonate-Protocol/chime-go/pkg/audio/encode"
	"github.com/Resonate-Protocol/chime-go/pkg/chime"
	"github.com/google/uuid"
)

// Result describes a written asset
type Result struct {
	Path    string
	Format  audio.Format
	Frames  int
	AssetID uuid.UUID
}

// Generator renders one recipe to one output file
type Generator struct {
	config *config.Config
}

// New creates a new generator
func New(cfg *config.Config) *Generator {
	return &Generator{config: cfg}
}

// Recipe returns the recipe named by the config, or the built-in chime
func (g *Generator) Recipe() (chime.Recipe, error) {
	if g.config.RecipePath == "" {
		return chime.PaymentSuccess(), nil
	}

	r, err := chime.LoadRecipe(g.config.RecipePath)
	if err != nil {
		return chime.Recipe{}, err
	}
	return *r, nil
}

// Run renders the recipe and writes it to the configured output
func (g *Generator) Run() (*Result, error) {
	if err := g.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	recipe, err := g.Recipe()
	if err != nil {
		return nil, err
	}

	format := g.config.Format()
	log.Printf("Synthesizing %s to %s...", recipe.Name, g.config.Output)

	samples, err := chime.Render(recipe, format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", recipe.Name, err)
	}

	id, err := chime.AssetID(recipe, format)
	if err != nil {
		return nil, err
	}

	meta := &encode.Metadata{
		Title:    recipe.Name,
		Artist:   version.Manufacturer,
		Software: version.Software(),
		Comment:  "asset " + id.String(),
	}

	if err := encode.WriteFile(g.config.Output, samples, format, meta); err != nil {
		return nil, err
	}

	log.Printf("Done.")

	return &Result{
		Path:    g.config.Output,
		Format:  format,
		Frames:  len(samples),
		AssetID: id,
	}, nil
}
