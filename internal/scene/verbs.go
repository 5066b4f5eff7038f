package scene

import "strings"

// Verb categories. Gameplay logic matches on categories only; display names
// are folded into a category once, at load time.
const (
	CategoryLook    = "look"
	CategoryPickUp  = "pickup"
	CategoryTalk    = "talk"
	CategoryUse     = "use"
	CategoryOpen    = "open"
	CategoryClose   = "close"
	CategoryPush    = "push"
	CategoryGive    = "give"
	CategoryUnknown = ""
)

// verbSynonyms maps lowercased display names to categories. English and
// Spanish sets are carried so localized verb bars resolve without a separate
// i18n layer.
var verbSynonyms = map[string]string{
	// look / examine
	"look":     CategoryLook,
	"look at":  CategoryLook,
	"examine":  CategoryLook,
	"read":     CategoryLook,
	"mirar":    CategoryLook,
	"examinar": CategoryLook,
	"leer":     CategoryLook,

	// pick up
	"pick up": CategoryPickUp,
	"take":    CategoryPickUp,
	"get":     CategoryPickUp,
	"grab":    CategoryPickUp,
	"recoger": CategoryPickUp,
	"tomar":   CategoryPickUp,
	"coger":   CategoryPickUp,
	"agarrar": CategoryPickUp,

	// talk
	"talk":       CategoryTalk,
	"talk to":    CategoryTalk,
	"speak":      CategoryTalk,
	"hablar":     CategoryTalk,
	"hablar con": CategoryTalk,

	// use
	"use":      CategoryUse,
	"usar":     CategoryUse,
	"utilizar": CategoryUse,

	// open
	"open":  CategoryOpen,
	"abrir": CategoryOpen,

	// close
	"close":  CategoryClose,
	"shut":   CategoryClose,
	"cerrar": CategoryClose,

	// push / pull
	"push":    CategoryPush,
	"pull":    CategoryPush,
	"empujar": CategoryPush,
	"tirar":   CategoryPush,
	"jalar":   CategoryPush,

	// give
	"give": CategoryGive,
	"dar":  CategoryGive,
}

// ResolveVerbCategory maps a verb display name to its category, or
// CategoryUnknown if the name matches no synonym.
func ResolveVerbCategory(name string) string {
	return verbSynonyms[strings.ToLower(strings.TrimSpace(name))]
}

// ResolveVerbCategories fills in the Category of every verb that does not
// declare one explicitly. Called by the loader so the runtime never touches
// display strings.
func ResolveVerbCategories(g *GlobalData) {
	for i := range g.Verbs {
		if g.Verbs[i].Category == CategoryUnknown {
			g.Verbs[i].Category = ResolveVerbCategory(g.Verbs[i].Name)
		}
	}
}
