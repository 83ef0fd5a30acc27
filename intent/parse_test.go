package intent

import "testing"

func TestParseExtraction_Email(t *testing.T) {
	response := `INTENT: email
CATEGORY: casual
RECIPIENT: boss@example.com
SUBJECT: Отчёт за неделю
BODY: Добрый день, отчёт во вложении.
TITLE:
START_TIME:
END_TIME:
DESCRIPTION:
RESPONSE: Готов отправить письмо.`

	res := ParseExtraction(response, "исходный текст")
	if res.Intent != KindEmail {
		t.Fatalf("expected email, got %q", res.Intent)
	}
	if res.Recipient != "boss@example.com" {
		t.Errorf("recipient = %q", res.Recipient)
	}
	if res.Subject != "Отчёт за неделю" {
		t.Errorf("subject = %q", res.Subject)
	}
	if res.Body != "Добрый день, отчёт во вложении." {
		t.Errorf("body = %q", res.Body)
	}
	if res.Title != "" || res.StartTime != "" {
		t.Error("email result must not carry calendar fields")
	}
	if res.Response != "Готов отправить письмо." {
		t.Errorf("response = %q", res.Response)
	}
}

func TestParseExtraction_EmailBodyDefaultsToOriginal(t *testing.T) {
	res := ParseExtraction("INTENT: email\nRECIPIENT: a@b.co", "отправь письмо a@b.co")
	if res.Body != "отправь письмо a@b.co" {
		t.Errorf("expected original text as body, got %q", res.Body)
	}
}

func TestParseExtraction_Calendar(t *testing.T) {
	response := `INTENT: calendar
CATEGORY: work
TITLE: Обсуждение проекта
START_TIME: 2026-09-01T15:00:00+02:00
END_TIME: 2026-09-01T16:00:00+02:00
DESCRIPTION: Создай встречу обсудить проект
RESPONSE: Создаю событие.`

	res := ParseExtraction(response, "оригинал")
	if res.Intent != KindCalendar {
		t.Fatalf("expected calendar, got %q", res.Intent)
	}
	if res.Category != CategoryWork {
		t.Errorf("category = %q", res.Category)
	}
	if res.ColorID != "5" {
		t.Errorf("color = %q", res.ColorID)
	}
	if res.Title != "Обсуждение проекта" {
		t.Errorf("title = %q", res.Title)
	}
	if res.StartTime != "2026-09-01T15:00:00+02:00" {
		t.Errorf("start = %q", res.StartTime)
	}
	if res.Recipient != "" || res.Body != "" {
		t.Error("calendar result must not carry email fields")
	}
}

func TestParseExtraction_ToleratesSurroundingText(t *testing.T) {
	response := "Sure! Here is the analysis you asked for:\n\n" +
		"INTENT: calendar\nTITLE: Звонок маме\n\nHope this helps!"
	res := ParseExtraction(response, "напомни позвонить маме")
	if res.Intent != KindCalendar {
		t.Fatalf("expected calendar, got %q", res.Intent)
	}
	if res.Title != "Звонок маме" {
		t.Errorf("title = %q", res.Title)
	}
}

func TestParseExtraction_AbsentLabelsMeanEmptyFields(t *testing.T) {
	res := ParseExtraction("INTENT: calendar", "встреча с Сашей")
	if res.Title != "" {
		t.Errorf("expected empty title, got %q", res.Title)
	}
	if res.StartTime != "" || res.EndTime != "" {
		t.Errorf("expected empty times, got %q / %q", res.StartTime, res.EndTime)
	}
	// Description backfills from the original input.
	if res.Description != "встреча с Сашей" {
		t.Errorf("description = %q", res.Description)
	}
}

func TestParseExtraction_CategoryRederivedWhenMissing(t *testing.T) {
	response := "INTENT: calendar\nTITLE: Совещание\nDESCRIPTION: совещание по проекту"
	res := ParseExtraction(response, "создай встречу совещание по проекту")
	if res.Category != CategoryWork {
		t.Errorf("expected work re-derived from keywords, got %q", res.Category)
	}
}

func TestParseExtraction_CategoryRederivedWhenCasual(t *testing.T) {
	// The backend answered casual but the text clearly names a workout;
	// casual triggers re-derivation.
	response := "INTENT: calendar\nCATEGORY: casual\nTITLE: Тренировка\nDESCRIPTION: тренировка в зале"
	res := ParseExtraction(response, "запиши тренировку")
	if res.Category != CategorySport {
		t.Errorf("expected sport, got %q", res.Category)
	}
}

func TestParseExtraction_UnknownCategoryIgnored(t *testing.T) {
	response := "INTENT: calendar\nCATEGORY: banana\nTITLE: Ужин"
	res := ParseExtraction(response, "ужин с семьёй")
	// banana is not a category; derivation runs over the event text.
	if res.Category != CategoryHome {
		t.Errorf("expected home (семь), got %q", res.Category)
	}
}

func TestParseExtraction_NoLabelsAtAll(t *testing.T) {
	res := ParseExtraction("I could not understand the request.", "что-то")
	if res.Intent != KindGeneral {
		t.Fatalf("expected general, got %q", res.Intent)
	}
	if res.Response != "I could not understand the request." {
		t.Errorf("expected raw text as response, got %q", res.Response)
	}
	if res.ColorID != "7" {
		t.Errorf("expected casual color, got %q", res.ColorID)
	}
}

func TestParseExtraction_ResponseSpansLines(t *testing.T) {
	res := ParseExtraction("INTENT: general\nRESPONSE: Первая строка\nи вторая строка", "x")
	if res.Response != "Первая строка\nи вторая строка" {
		t.Errorf("response = %q", res.Response)
	}
}
