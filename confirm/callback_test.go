package confirm

import "testing"

func TestParseCallback_SplitsAtFirstSeparator(t *testing.T) {
	action, id, err := ParseCallback("confirm_calendar_1700000000_42_ab12cd34")
	if err != nil {
		t.Fatal(err)
	}
	if action != ActionConfirm {
		t.Errorf("action = %q, want confirm", action)
	}
	if id != "calendar_1700000000_42_ab12cd34" {
		t.Errorf("id = %q", id)
	}
}

func TestParseCallback_AllActions(t *testing.T) {
	for _, want := range []Action{ActionConfirm, ActionCancel, ActionEdit} {
		action, id, err := ParseCallback(CallbackData(want, "email_1_7_deadbeef"))
		if err != nil {
			t.Fatalf("%s: %v", want, err)
		}
		if action != want || id != "email_1_7_deadbeef" {
			t.Errorf("%s: got (%q, %q)", want, action, id)
		}
	}
}

func TestParseCallback_Invalid(t *testing.T) {
	cases := []string{"", "   ", "confirm", "approve_email_1_7_x", "_email_1"}
	for _, data := range cases {
		if _, _, err := ParseCallback(data); err == nil {
			t.Errorf("ParseCallback(%q) expected error", data)
		}
	}
}
