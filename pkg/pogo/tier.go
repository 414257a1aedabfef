package pogo

//go:generate go run github.com/dmarkham/enumer -type=Tier -linecomment -text -output=tier_enumer.go

type Tier int

const (
	SuperEffective   Tier = iota // super effective
	NotVeryEffective             // not very effective
	NoEffect                     // no effect
)

func (t Tier) Weight() int {
	switch t {
	case SuperEffective:
		return 1
	case NotVeryEffective:
		return -1
	case NoEffect:
		return -2
	default:
		return 0
	}
}
