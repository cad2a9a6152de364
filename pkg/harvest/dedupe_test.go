package harvest

import (
	"slices"
	"testing"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name   string
		emails []string
		sent   EmailSet
		seen   EmailSet
		want   []string
	}{
		{
			name:   "first occurrence wins",
			emails: []string{"a@x.com", "b@x.com", "a@x.com", "b@x.com"},
			sent:   EmailSet{},
			seen:   EmailSet{},
			want:   []string{"a@x.com", "b@x.com"},
		},
		{
			name:   "sent addresses excluded",
			emails: []string{"a@x.com", "b@x.com", "b@x.com"},
			sent:   NewEmailSet("a@x.com"),
			seen:   EmailSet{},
			want:   []string{"b@x.com"},
		},
		{
			name:   "seen addresses excluded",
			emails: []string{"a@x.com", "c@x.com"},
			sent:   EmailSet{},
			seen:   NewEmailSet("c@x.com"),
			want:   []string{"a@x.com"},
		},
		{
			name:   "all filters together",
			emails: []string{"a@x.com", "b@x.com", "c@x.com", "b@x.com", "d@x.com"},
			sent:   NewEmailSet("a@x.com"),
			seen:   NewEmailSet("c@x.com"),
			want:   []string{"b@x.com", "d@x.com"},
		},
		{
			name:   "empty input",
			emails: nil,
			sent:   NewEmailSet("a@x.com"),
			seen:   EmailSet{},
			want:   nil,
		},
		{
			name:   "order preserved",
			emails: []string{"z@x.com", "a@x.com", "m@x.com"},
			sent:   EmailSet{},
			seen:   EmailSet{},
			want:   []string{"z@x.com", "a@x.com", "m@x.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dedupe(tt.emails, tt.sent, tt.seen); !slices.Equal(got, tt.want) {
				t.Errorf("Dedupe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDedupeDoesNotMutateInputs(t *testing.T) {
	sent := NewEmailSet("a@x.com")
	seen := NewEmailSet("b@x.com")

	Dedupe([]string{"a@x.com", "b@x.com", "c@x.com"}, sent, seen)

	if sent.Len() != 1 || seen.Len() != 1 {
		t.Errorf("Dedupe mutated inputs: sent=%d seen=%d, want 1/1", sent.Len(), seen.Len())
	}
}

func TestDedupeIdempotent(t *testing.T) {
	emails := []string{"a@x.com", "b@x.com", "a@x.com"}
	sent := EmailSet{}
	seen := EmailSet{}

	first := Dedupe(emails, sent, seen)
	for _, e := range first {
		seen.Add(e)
	}

	second := Dedupe(emails, sent, seen)
	if len(second) != 0 {
		t.Errorf("second Dedupe() = %v, want empty", second)
	}
}

func TestEmailSet(t *testing.T) {
	s := NewEmailSet("a@x.com", "b@x.com", "a@x.com")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains("a@x.com") {
		t.Error("Contains(a@x.com) = false, want true")
	}
	if s.Contains("z@x.com") {
		t.Error("Contains(z@x.com) = true, want false")
	}

	s.Add("z@x.com")
	if !s.Contains("z@x.com") {
		t.Error("Contains(z@x.com) after Add = false, want true")
	}
}
