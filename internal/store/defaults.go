package store

import "github.com/sahasharan/telugu-culinary-app2/internal/recipe"

// DefaultCollection returns the built-in starter catalog used when no recipe
// document exists yet or the existing one cannot be parsed.
func DefaultCollection() Collection {
	c := NewCollection()

	c.Append("biryanis", recipe.Recipe{
		ID:          "hyderabadi_biryani",
		Name:        "హైదరాబాదీ బిర్యానీ",
		EnglishName: "Hyderabadi Biryani",
		Ingredients: []string{"బాస్మతి అన్నం", "మటన్", "యోగర్ట్", "ఉల్లిపాయలు", "మసాలా పౌడర్"},
		CookingTime: "2 గంటలు",
		Difficulty:  recipe.DifficultyHard,
		Servings:    "4-6 మంది",
		Description: "హైదరాబాద్ యొక్క ప్రసిద్ధ బిర్యానీ",
		Instructions: []string{
			"బాస్మతి అన్నాన్ని నానబెట్టండి",
			"మటన్‌ను మసాలాలతో మెరినేట్ చేయండి",
			"అన్నం వేయించండి",
			"లేయర్లుగా అమర్చండి",
		},
	})

	c.Append("curries", recipe.Recipe{
		ID:          "gongura_mutton",
		Name:        "గోంగూర మటన్",
		EnglishName: "Gongura Mutton",
		Ingredients: []string{"మటన్", "గోంగూర ఆకులు", "ఉల్లిపాయలు", "వెల్లుల్లి"},
		CookingTime: "45 నిమిషాలు",
		Difficulty:  recipe.DifficultyMedium,
		Servings:    "4 మంది",
		Description: "ఆంధ్రప్రదేశ్ యొక్క ప్రత్యేక వంటకం",
		Instructions: []string{
			"మటన్‌ను కట్ చేయండి",
			"గోంగూర ఆకులను వేయించండి",
			"మసాలాలు కలపండి",
			"ఉడికించండి",
		},
	})

	c.Append("sweets", recipe.Recipe{
		ID:          "ariselu",
		Name:        "అరిసెలు",
		EnglishName: "Ariselu",
		Ingredients: []string{"బియ్యం పిండి", "గుడ్డు", "నువ్వులు", "నూనె"},
		CookingTime: "1 గంట",
		Difficulty:  recipe.DifficultyMedium,
		Servings:    "20 ముక్కలు",
		Description: "పండుగల ప్రత్యేక తీపి వంటకం",
		Instructions: []string{
			"బియ్యం పిండిని కలపండి",
			"గుడ్డుతో కలపండి",
			"నువ్వులు వేయండి",
			"నూనెలో వేయించండి",
		},
	})

	return c
}
