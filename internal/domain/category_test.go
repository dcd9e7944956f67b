package domain

import "testing"

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		if !c.IsValid() {
			t.Errorf("%s should be valid", c)
		}
	}

	for _, c := range []Category{"", "snack", "Entree", " entree"} {
		if c.IsValid() {
			t.Errorf("%q should be invalid", c)
		}
	}
}

func TestMenuItem_Clone(t *testing.T) {
	item := MenuItem{ID: 1, Ingredients: []string{"beef"}}
	clone := item.Clone()

	clone.Ingredients[0] = "tofu"
	if item.Ingredients[0] != "beef" {
		t.Error("clone should not share ingredients")
	}

	if (MenuItem{}).Clone().Ingredients != nil {
		t.Error("nil ingredients should stay nil")
	}
}
