package intent

import "strings"

// categoryOrder fixes the scan order so keyword matching is
// deterministic: the first category with a hit wins.
var categoryOrder = []Category{
	CategoryHome,
	CategoryWork,
	CategorySport,
	CategoryImportant,
	CategoryCasual,
}

var categoryKeywords = map[Category][]string{
	CategoryHome:      {"дом", "домаш", "семь", "дет", "убор", "готов", "ремонт"},
	CategoryWork:      {"работ", "meeting", "job", "офис", "совещ", "проек", "коллег", "клиент"},
	CategorySport:     {"спорт", "тренир", "фитнес", "бег", "йога", "зал", "плаван", "футбол"},
	CategoryImportant: {"важн", "сроч", "дедлайн", "deadline", "критич", "экзамен"},
	CategoryCasual:    {"еда", "ужин", "завтрак", "обед", "кафе", "кофе", "встреча с друзьями"},
}

// categoryColors maps each category to the calendar color id used for
// presentation.
var categoryColors = map[Category]string{
	CategoryHome:      "10", // Basil
	CategoryWork:      "5",  // Banana
	CategorySport:     "9",  // Blueberry
	CategoryImportant: "11", // Tomato
	CategoryCasual:    "7",  // Peacock
}

// DetectCategory scans text for category keywords, case-insensitively,
// and returns the first matching category in the fixed order. Nothing
// matching means CategoryCasual.
func DetectCategory(text string) Category {
	lower := strings.ToLower(text)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return CategoryCasual
}

func ColorID(cat Category) string {
	if id, ok := categoryColors[cat]; ok {
		return id
	}
	return categoryColors[CategoryCasual]
}

func validCategory(raw string) (Category, bool) {
	cat := Category(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := categoryColors[cat]
	return cat, ok
}
