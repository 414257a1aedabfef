package chooser

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/notjagan/pogodex/pkg/config"
	"github.com/notjagan/pogodex/pkg/dex"
	"github.com/notjagan/pogodex/pkg/model"
	"github.com/notjagan/pogodex/pkg/model/sprite"
	"github.com/notjagan/pogodex/pkg/pogo"
	"github.com/skratchdot/open-golang/open"
)

type Chooser struct {
	config config.Config
	model  *model.Model
	dex    *dex.Dex
	table  *pogo.Table
	rng    *rand.Rand

	// open shows an image file in the system viewer.
	open func(string) error
}

func New(ctx context.Context, cfg config.Config) (*Chooser, error) {
	err := cfg.Pogo.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid stat config: %w", err)
	}

	seed := cfg.Random.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c := &Chooser{
		config: cfg,
		rng:    rand.New(rand.NewSource(seed)),
		open:   open.Run,
	}

	if cfg.UsesDatabase() {
		err = c.loadDatabase(ctx)
	} else {
		err = c.loadFiles()
	}
	if err != nil {
		c.Close()
		return nil, err
	}

	log.Printf("Loaded %d pokemon.", c.dex.Len())
	return c, nil
}

func (c *Chooser) loadFiles() error {
	d, err := dex.LoadFile(c.config.Dataset.Path)
	if err != nil {
		return fmt.Errorf("error while loading dataset: %w", err)
	}
	c.dex = d

	table, err := pogo.LoadTable(c.config.Effectiveness.Path)
	if err != nil {
		return fmt.Errorf("error while loading effectiveness table: %w", err)
	}
	c.table = table

	return nil
}

func (c *Chooser) loadDatabase(ctx context.Context) error {
	mdl, err := model.New(ctx, c.config.DB.Path)
	if err != nil {
		return fmt.Errorf("error while instantiating model: %w", err)
	}
	c.model = mdl

	err = mdl.SetLanguageByLocalizationCode(ctx, model.LocalizationCode(c.config.DB.Language))
	if err != nil {
		return fmt.Errorf("error while setting language: %w", err)
	}

	d, err := mdl.Dex(ctx)
	if err != nil {
		return fmt.Errorf("error while loading dex from database: %w", err)
	}
	c.dex = d

	table, err := mdl.EffectivenessTable(ctx)
	if err != nil {
		return fmt.Errorf("error while loading effectiveness table from database: %w", err)
	}
	c.table = table

	return nil
}

func (c *Chooser) Close() {
	if c.model == nil {
		return
	}

	err := c.model.Close()
	if err != nil {
		log.Printf("error while closing model: %v", err)
	}
	c.model = nil
}

func (c *Chooser) Choose() (*Choice, error) {
	pokemon, err := c.dex.Choose(c.rng)
	if err != nil {
		return nil, fmt.Errorf("could not choose a pokemon: %w", err)
	}

	return c.choice(pokemon)
}

func (c *Chooser) ChooseByID(id int) (*Choice, error) {
	pokemon, err := c.dex.ByID(id)
	if err != nil {
		return nil, fmt.Errorf("could not find pokemon: %w", err)
	}

	return c.choice(pokemon)
}

func (c *Chooser) choice(pokemon dex.Pokemon) (*Choice, error) {
	stats, err := pogo.DeriveStats(pokemon.Base, c.config.Pogo)
	if err != nil {
		return nil, fmt.Errorf("error while deriving stats for pokemon %q: %w", pokemon.Name, err)
	}

	spritePath, err := c.spritePath(pokemon)
	if err != nil {
		return nil, fmt.Errorf("error while resolving sprite for pokemon %q: %w", pokemon.Name, err)
	}

	return &Choice{
		Index:         pokemon.ID,
		Pokemon:       pokemon,
		Stats:         stats,
		Effectiveness: pogo.ScoreEffectiveness(pokemon.Types, c.table),
		SpritePath:    spritePath,
	}, nil
}

// spritePath prefers the media sprite recorded in the dataset and otherwise
// falls back to the numbered image in the configured images directory.
func (c *Chooser) spritePath(pokemon dex.Pokemon) (string, error) {
	if pokemon.Sprite != "" {
		s := sprite.Sprite(pokemon.Sprite)
		return s.Filepath()
	}

	return sprite.ForIndex(c.config.Images.Dir, pokemon.ID)
}

// Run shows a random pokemon.
func (c *Chooser) Run(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	choice, err := c.Choose()
	if err != nil {
		return err
	}

	return c.show(choice, w)
}

func (c *Chooser) RunID(ctx context.Context, w io.Writer, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	choice, err := c.ChooseByID(id)
	if err != nil {
		return err
	}

	return c.show(choice, w)
}

func (c *Chooser) show(choice *Choice, w io.Writer) error {
	log.Printf("CHOSE %d %q", choice.Index, choice.Pokemon.Name)
	err := choice.Report(w)
	if err != nil {
		return fmt.Errorf("error while writing report: %w", err)
	}

	if !c.config.Images.Show {
		return nil
	}

	ok, err := sprite.Exists(choice.SpritePath)
	if err != nil {
		return fmt.Errorf("error while checking sprite: %w", err)
	} else if !ok {
		log.Printf("no sprite to show for pokemon %q at %q", choice.Pokemon.Name, choice.SpritePath)
		return nil
	}

	err = c.open(choice.SpritePath)
	if err != nil {
		return fmt.Errorf("error while opening sprite %q: %w", choice.SpritePath, err)
	}

	return nil
}
