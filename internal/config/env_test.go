package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "")
	if got := intEnvOrDefault("INT_TEST", 7); got != 7 {
		t.Fatalf("expected default 7 when unset, got %d", got)
	}

	t.Setenv("INT_TEST", "3")
	if got := intEnvOrDefault("INT_TEST", 7); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}

	t.Setenv("INT_TEST", "not-a-number")
	if got := intEnvOrDefault("INT_TEST", 7); got != 7 {
		t.Fatalf("expected default on junk, got %d", got)
	}

	t.Setenv("INT_TEST", "-1")
	if got := intEnvOrDefault("INT_TEST", 7); got != 7 {
		t.Fatalf("expected default on negative, got %d", got)
	}
}
