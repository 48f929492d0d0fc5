package mock

import (
	"math/rand/v2"
	"strings"
)

var loremWords = strings.Fields(`Lorem ipsum dolor sit amet, consectetur adipiscing elit. Cras aliquet
varius magna, non porta ligula feugiat eget. Fusce tristique felis at fermentum pharetra. Aliquam id
orci ut lectus varius viverra. Nullam nunc ex, convallis sed finibus eget, sollicitudin eget ante.
Phasellus eros mauris, condimentum sed nibh vitae, sodales efficitur ipsum. Sed blandit, eros vel
aliquam faucibus, purus ex euismod diam, eu luctus nunc ante ut dui. Sed sed nisi sed augue convallis
suscipit in sed felis. Aliquam erat volutpat. Nunc fermentum tortor ac porta dapibus. In rutrum ac
purus sit amet tempus.`)

// lorem returns n consecutive placeholder words starting at a random offset,
// wrapping around the corpus, with a trailing period.
func lorem(rng *rand.Rand, n int) string {
	start := rng.IntN(len(loremWords))
	words := make([]string, n)
	for i := range words {
		words[i] = strings.Trim(loremWords[(start+i)%len(loremWords)], ",.")
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
