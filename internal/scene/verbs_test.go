package scene

import "testing"

func TestResolveVerbCategory(t *testing.T) {
	tests := []struct {
		name string
		verb string
		want string
	}{
		{"look", "Look", CategoryLook},
		{"look at", "Look at", CategoryLook},
		{"examine", "examine", CategoryLook},
		{"read", "Read", CategoryLook},
		{"pick up", "Pick up", CategoryPickUp},
		{"take", "TAKE", CategoryPickUp},
		{"talk to", "Talk to", CategoryTalk},
		{"use", "Use", CategoryUse},
		{"open", "Open", CategoryOpen},
		{"close", "Close", CategoryClose},
		{"push", "Push", CategoryPush},
		{"pull maps to push", "Pull", CategoryPush},
		{"give", "Give", CategoryGive},
		{"spanish look", "Mirar", CategoryLook},
		{"spanish examine", "Examinar", CategoryLook},
		{"spanish pick up", "Recoger", CategoryPickUp},
		{"spanish talk", "Hablar con", CategoryTalk},
		{"spanish use", "Usar", CategoryUse},
		{"spanish open", "Abrir", CategoryOpen},
		{"spanish close", "Cerrar", CategoryClose},
		{"spanish push", "Empujar", CategoryPush},
		{"spanish give", "Dar", CategoryGive},
		{"surrounding whitespace", "  take  ", CategoryPickUp},
		{"unknown verb", "Defenestrate", CategoryUnknown},
		{"empty name", "", CategoryUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveVerbCategory(tc.verb); got != tc.want {
				t.Errorf("ResolveVerbCategory(%q) = %q, expected %q", tc.verb, got, tc.want)
			}
		})
	}
}

func TestResolveVerbCategories(t *testing.T) {
	g := GlobalData{Verbs: []Verb{
		{ID: "v-1", Name: "Mirar"},
		{ID: "v-2", Name: "Pick up"},
		{ID: "v-3", Name: "Frobnicate", Category: CategoryUse},
		{ID: "v-4", Name: "Gibberish"},
	}}

	ResolveVerbCategories(&g)

	want := []string{CategoryLook, CategoryPickUp, CategoryUse, CategoryUnknown}
	for i, v := range g.Verbs {
		if v.Category != want[i] {
			t.Errorf("verb %s category = %q, expected %q", v.ID, v.Category, want[i])
		}
	}
}
