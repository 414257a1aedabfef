package sprite

type Front struct {
	Default Sprite `json:"front_default"`
}

type Sprites struct {
	Front
}

type PokemonSprites struct {
	Sprites
	Other map[string]Sprites `json:"other"`
}

const OfficialArtwork = "official-artwork"

// Preferred is the default front sprite, falling back to the official
// artwork. Empty when neither is set.
func (ps *PokemonSprites) Preferred() Sprite {
	if ps.Front.Default != "" {
		return ps.Front.Default
	}
	if art, ok := ps.Other[OfficialArtwork]; ok {
		return art.Front.Default
	}
	return ""
}
