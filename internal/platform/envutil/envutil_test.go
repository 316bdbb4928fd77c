package envutil

import "testing"

func TestGetEnvAsBool(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"YES":   true,
		" on ":  true,
		"0":     false,
		"false": false,
		"No":    false,
		"off":   false,
	}
	for raw, want := range cases {
		t.Setenv("MEALDESK_TEST_FLAG", raw)
		if got := GetEnvAsBool("MEALDESK_TEST_FLAG", !want, nil); got != want {
			t.Fatalf("GetEnvAsBool(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestGetEnvAsBoolDefaults(t *testing.T) {
	if got := GetEnvAsBool("MEALDESK_TEST_FLAG_UNSET", true, nil); !got {
		t.Fatalf("unset variable should fall back to the default")
	}
	t.Setenv("MEALDESK_TEST_FLAG", "sometimes")
	if got := GetEnvAsBool("MEALDESK_TEST_FLAG", true, nil); !got {
		t.Fatalf("unparseable value should fall back to the default")
	}
}
