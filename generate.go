package smartstring

import (
	"math/rand"
	"reflect"
	"testing/quick"
)

var _ quick.Generator = String[Compact]{}

// A few multibyte characters in the pool keep boundary logic honest.
var generatorAlphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789 _-äöüßéλ中日🙂")

// Generate implements testing/quick.Generator, producing content on both
// sides of the inline capacity so properties exercise both
// representations.
func (String[M]) Generate(r *rand.Rand, size int) reflect.Value {
	n := r.Intn(size + 1)
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = generatorAlphabet[r.Intn(len(generatorAlphabet))]
	}
	return reflect.ValueOf(From[M](string(runes)))
}
