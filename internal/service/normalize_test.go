package service

import (
	"reflect"
	"testing"
)

func TestParseRecipeReplyValidJSON(t *testing.T) {
	reply := `{"recipe_name":"Tomato Rice","ingredients":["rice","tomatoes"],"instructions":["Cook rice","Add tomatoes"],"calories":350,"prep_time":"20 minutes","difficulty":"Easy"}`

	data, fellBack := ParseRecipeReply(reply, []string{"rice", "tomatoes"})
	if fellBack {
		t.Fatal("expected parsed result, got fallback")
	}
	if data.RecipeName != "Tomato Rice" {
		t.Errorf("recipe name = %q", data.RecipeName)
	}
	if data.Calories != 350 {
		t.Errorf("calories = %d", data.Calories)
	}
	if len(data.Instructions) != 2 {
		t.Errorf("instructions = %v", data.Instructions)
	}
}

func TestParseRecipeReplyStripsCodeFences(t *testing.T) {
	reply := "```json\n{\"recipe_name\":\"Fenced Soup\",\"ingredients\":[\"water\"],\"instructions\":[\"Boil\"],\"calories\":100,\"prep_time\":\"5 minutes\",\"difficulty\":\"Easy\"}\n```"

	data, fellBack := ParseRecipeReply(reply, []string{"water"})
	if fellBack {
		t.Fatal("expected fenced JSON to parse, got fallback")
	}
	if data.RecipeName != "Fenced Soup" {
		t.Errorf("recipe name = %q", data.RecipeName)
	}
}

func TestParseRecipeReplyFallback(t *testing.T) {
	data, fellBack := ParseRecipeReply("Sorry, I cannot help with that.", []string{"carrots", "rice"})
	if !fellBack {
		t.Fatal("expected fallback for non-JSON reply")
	}

	if data.RecipeName != "Leftover carrots, rice Recipe" {
		t.Errorf("fallback name = %q", data.RecipeName)
	}
	wantIngredients := []string{"carrots", "rice", "salt", "pepper", "olive oil"}
	if !reflect.DeepEqual(data.Ingredients, wantIngredients) {
		t.Errorf("fallback ingredients = %v, want %v", data.Ingredients, wantIngredients)
	}
	wantInstructions := []string{"Combine all ingredients", "Cook until done", "Season to taste"}
	if !reflect.DeepEqual(data.Instructions, wantInstructions) {
		t.Errorf("fallback instructions = %v", data.Instructions)
	}
	if data.Calories != 400 {
		t.Errorf("fallback calories = %d, want 400", data.Calories)
	}
	if data.PrepTime != "30 minutes" {
		t.Errorf("fallback prep time = %q", data.PrepTime)
	}
	if data.Difficulty != "Easy" {
		t.Errorf("fallback difficulty = %q", data.Difficulty)
	}
}

func TestParseRecipeReplyNullIsFallback(t *testing.T) {
	// "null" decodes cleanly but carries no recipe, it must not produce a
	// zero-valued result.
	data, fellBack := ParseRecipeReply("null", []string{"rice"})
	if !fellBack {
		t.Fatal("expected fallback for a null reply")
	}
	if data.RecipeName != "Leftover rice Recipe" || data.Calories != 400 {
		t.Errorf("fallback = %+v", data)
	}
}

func TestParseMenuReplyNullIsFallback(t *testing.T) {
	data, fellBack := ParseMenuReply("null", []string{"Burger"})
	if !fellBack {
		t.Fatal("expected fallback for a null reply")
	}
	if data.OverallEcoScore != ScoreYellow || len(data.MenuItemsAnalysis) != 1 {
		t.Errorf("fallback = %+v", data)
	}
}

func TestParseRecipeReplyDoesNotMutateInput(t *testing.T) {
	input := []string{"carrots", "rice"}
	ParseRecipeReply("not json", input)
	if !reflect.DeepEqual(input, []string{"carrots", "rice"}) {
		t.Errorf("input ingredients mutated: %v", input)
	}
}

func TestParseMenuReplyValidJSON(t *testing.T) {
	reply := `{"eco_analysis":"Decent menu.","recommendations":["More veggies"],"overall_eco_score":"green","menu_items_analysis":[{"item":"Burger","eco_rating":"red","suggestion":"Offer a veggie patty"}]}`

	data, fellBack := ParseMenuReply(reply, []string{"Burger"})
	if fellBack {
		t.Fatal("expected parsed result, got fallback")
	}
	if data.OverallEcoScore != ScoreGreen {
		t.Errorf("overall score = %q", data.OverallEcoScore)
	}
	if len(data.MenuItemsAnalysis) != 1 || data.MenuItemsAnalysis[0].EcoRating != ScoreRed {
		t.Errorf("items analysis = %v", data.MenuItemsAnalysis)
	}
}

func TestParseMenuReplyFallback(t *testing.T) {
	menuItems := []string{"Burger", "Fries", "Salad"}
	data, fellBack := ParseMenuReply("<html>oops</html>", menuItems)
	if !fellBack {
		t.Fatal("expected fallback for non-JSON reply")
	}

	if data.OverallEcoScore != ScoreYellow {
		t.Errorf("fallback overall score = %q, want yellow", data.OverallEcoScore)
	}
	if len(data.Recommendations) != 4 {
		t.Errorf("fallback recommendations = %v", data.Recommendations)
	}
	if len(data.MenuItemsAnalysis) != len(menuItems) {
		t.Fatalf("fallback items = %d, want %d", len(data.MenuItemsAnalysis), len(menuItems))
	}
	for i, item := range data.MenuItemsAnalysis {
		if item.Item != menuItems[i] {
			t.Errorf("item %d = %q, want %q", i, item.Item, menuItems[i])
		}
		if item.EcoRating != ScoreYellow {
			t.Errorf("item %d rating = %q, want yellow", i, item.EcoRating)
		}
		if item.Suggestion != "Consider making this more sustainable" {
			t.Errorf("item %d suggestion = %q", i, item.Suggestion)
		}
	}
}
