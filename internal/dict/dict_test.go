package dict

import "testing"

func TestBuildAndLookup(t *testing.T) {
	d, err := Build([]string{"cat", "CATS", "Dog", "QUIT"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := d.Len(); got != 4 {
		t.Errorf("Len = %d, want 4", got)
	}

	tests := []struct {
		word string
		want bool
	}{
		{"CAT", true},
		{"cat", true},  // case-insensitive
		{"Cats", true},
		{"DOG", true},
		{"QUIT", true},
		{"CA", false},   // prefix, not a word
		{"CATSS", false},
		{"RAT", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.IsWord(tt.word); got != tt.want {
			t.Errorf("IsWord(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestIsPrefix(t *testing.T) {
	d, err := Build([]string{"CAT", "CATS", "QUIT"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		prefix string
		want   bool
	}{
		{"C", true},
		{"CA", true},
		{"CAT", true},  // a word is a prefix of itself
		{"CATS", true},
		{"CATSS", false},
		{"Q", true},
		{"QU", true},
		{"QI", false},
		{"X", false},
		{"", true}, // every word extends the empty prefix
		{"ca", true},
	}
	for _, tt := range tests {
		if got := d.IsPrefix(tt.prefix); got != tt.want {
			t.Errorf("IsPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	d, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil): %v", err)
	}
	if d.IsWord("CAT") || d.IsPrefix("C") {
		t.Error("empty dictionary accepted a word")
	}
}

func TestBuildRejectsMalformedWords(t *testing.T) {
	for _, bad := range []string{"don't", "naïve", "a-b", "two words"} {
		if _, err := Build([]string{"CAT", bad}); err == nil {
			t.Errorf("Build with %q: want error, got nil", bad)
		}
	}
}
