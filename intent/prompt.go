package intent

import (
	"fmt"
	"strings"
	"time"
)

// The prompt is the contract with the extraction backend: the labeled
// RESPONSE FORMAT block below must stay in sync with the parser.

const promptHeader = `You are a professional voice assistant. %s

TASK: Identify the user's intent and extract key details%s.

INTENT TYPES:
1. EMAIL - user wants to send an email
2. CALENDAR - user wants to create a calendar event/meeting/reminder
3. GENERAL - any other request or question

CATEGORY TYPES (choose the best match):
1. HOME - household, family, personal domestic matters
2. WORK - job, business, professional meetings or tasks
3. SPORT - workouts, training, physical activities
4. IMPORTANT - critical, urgent or high-priority matters
5. CASUAL - everyday activities like meals, leisure, miscellaneous

CALENDAR EVENT RULES (CRITICAL):
- TITLE must be 2-4 words maximum, describing ONLY the main action/topic
- TITLE must be in nominative case (именительный падеж)
- Extract precise START_TIME and END_TIME. If user specifies duration (e.g. "ещё 3 часа"), assume START_TIME is current user local time and END_TIME is START_TIME + duration.
- If user provides explicit start and duration without end time, compute END_TIME based on duration.
- If only START_TIME is known, set END_TIME to START_TIME + 1 hour.
- If only duration is mentioned, set START_TIME to the current user local time and END_TIME accordingly.
- DESCRIPTION should contain the full original voice command.
- Ignore filler words like "пожалуйста", "можешь", "сейчас", "братан" in TITLE.`

const promptTextExamples = `

EXAMPLES:
Input: "Создай встречу завтра в 15:00 обсудить проект с командой"
→ TITLE: Обсуждение проекта
→ DESCRIPTION: Создай встречу завтра в 15:00 обсудить проект с командой

Input: "Напомни позвонить маме через час"
→ TITLE: Звонок маме
→ DESCRIPTION: Напомни позвонить маме через час

Input: "У меня будет встреча с Вовой через час"
→ TITLE: Встреча с Вовой
→ DESCRIPTION: У меня будет встреча с Вовой через час`

const promptFooter = `

RESPONSE FORMAT (use EXACTLY this structure):
INTENT: <email|calendar|general>
CATEGORY: <home|work|sport|important|casual>
RECIPIENT: <email if email intent, otherwise leave empty>
SUBJECT: <subject if email intent, otherwise leave empty>
BODY: <body if email intent, otherwise leave empty>
TITLE: <2-4 words, nominative case, NO filler words>
START_TIME: <ISO 8601 datetime, include offset if relevant>
END_TIME: <ISO 8601 datetime, include offset if relevant>
DESCRIPTION: <full original voice command>
RESPONSE: <brief confirmation message>

Current UTC time: %s
Current user local time (%s): %s

%s`

// BuildTextPrompt renders the extraction prompt for typed or transcribed
// text input.
func BuildTextPrompt(text string, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	header := fmt.Sprintf(promptHeader,
		fmt.Sprintf("Analyze the voice command and extract structured information.\n\nVoice command: %q", text),
		"")
	footer := fmt.Sprintf(promptFooter,
		now.UTC().Format(time.RFC3339),
		loc.String(),
		now.In(loc).Format("02.01.2006 15:04:05"),
		"Now analyze the command and respond:")
	return header + promptTextExamples + footer
}

// BuildAudioPrompt renders the extraction prompt that accompanies an
// inline audio part.
func BuildAudioPrompt(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	header := fmt.Sprintf(promptHeader,
		"Listen to the audio and extract structured information.",
		" from the voice message")
	header = strings.Replace(header,
		"DESCRIPTION should contain the full original voice command.",
		"DESCRIPTION should contain the full transcription of the voice command.", 1)
	footer := fmt.Sprintf(promptFooter,
		now.UTC().Format(time.RFC3339),
		loc.String(),
		now.In(loc).Format("02.01.2006 15:04:05"),
		"Now analyze the audio and respond:")
	return header + footer
}
