package chooser

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/notjagan/pogodex/pkg/dex"
	"github.com/notjagan/pogodex/pkg/model/sprite"
	"github.com/notjagan/pogodex/pkg/pogo"
)

type Choice struct {
	Index         int
	Pokemon       dex.Pokemon
	Stats         pogo.DerivedStats
	Effectiveness []pogo.Score
	SpritePath    string
}

type scoreGroups struct {
	strong  []string
	neutral []string
	weak    []string
}

func groupScores(scores []pogo.Score) scoreGroups {
	var groups scoreGroups
	for _, s := range scores {
		switch {
		case s.Value > 0:
			groups.strong = append(groups.strong, s.Type)
		case s.Value < 0:
			groups.weak = append(groups.weak, s.Type)
		default:
			groups.neutral = append(groups.neutral, s.Type)
		}
	}

	return groups
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "_None_"
	}
	return strings.Join(items, ", ")
}

func formatScores(scores []pogo.Score) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%s %+d", s.Type, s.Value)
	}
	return joinOrNone(parts)
}

func (choice *Choice) spriteLine() string {
	ok, err := sprite.Exists(choice.SpritePath)
	if err != nil {
		log.Printf("could not check sprite for pokemon %q: %v", choice.Pokemon.Name, err)
	}

	if !ok {
		return fmt.Sprintf("%s (missing)", choice.SpritePath)
	}
	return choice.SpritePath
}

func (choice *Choice) Report(w io.Writer) error {
	groups := groupScores(choice.Effectiveness)
	lines := []string{
		fmt.Sprintf("index: %d", choice.Index),
		fmt.Sprintf("name: %s", choice.Pokemon.Name),
		fmt.Sprintf("stats: ATK %d / DEF %d / STA %d / CP %d",
			choice.Stats.Attack, choice.Stats.Defense, choice.Stats.Stamina, choice.Stats.CP),
		fmt.Sprintf("type: %s", strings.Join(choice.Pokemon.Types, " / ")),
		fmt.Sprintf("type effectiveness: %s", formatScores(choice.Effectiveness)),
		fmt.Sprintf("  super effective: %s", joinOrNone(groups.strong)),
		fmt.Sprintf("  neutral: %s", joinOrNone(groups.neutral)),
		fmt.Sprintf("  not very effective: %s", joinOrNone(groups.weak)),
		fmt.Sprintf("sprite: %s", choice.spriteLine()),
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
