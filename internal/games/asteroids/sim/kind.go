package sim

import "strings"

// Kind is the closed set of entity variants.
type Kind uint8

const (
	KindShip Kind = iota
	KindAsteroid
	KindAlien
	KindBullet
	KindAlienBullet
	KindMissile
	KindDebris
	kindCount
)

var kindNames = [kindCount]string{
	KindShip:        "ship",
	KindAsteroid:    "asteroid",
	KindAlien:       "alien",
	KindBullet:      "bullet",
	KindAlienBullet: "alien-bullet",
	KindMissile:     "missile",
	KindDebris:      "debris",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "invalid"
}

// KindSet is a bit set of kinds, used as a destruction capability tag.
type KindSet uint16

// Kinds builds a set from the given kinds.
func Kinds(ks ...Kind) KindSet {
	var s KindSet
	for _, k := range ks {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// With returns the set plus k.
func (s KindSet) With(k Kind) KindSet {
	return s | 1<<k
}

// Without returns the set minus k.
func (s KindSet) Without(k Kind) KindSet {
	return s &^ (1 << k)
}

func (s KindSet) String() string {
	var parts []string
	for k := range kindCount {
		if s.Has(k) {
			parts = append(parts, k.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// playerOwned lists kinds whose kills earn points.
var playerOwned = Kinds(KindShip, KindBullet, KindMissile)

// PlayerOwned reports whether destruction caused by k is credited to the player.
func PlayerOwned(k Kind) bool {
	return playerOwned.Has(k)
}
