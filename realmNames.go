package genrealmvoronoi

import (
	"github.com/Flokey82/go_gens/genlanguage"
)

// GenLanguage returns a fantasy language for the given seed.
var GenLanguage = genlanguage.GenLanguage
