package model

import (
	"errors"
	"testing"
	"time"
)

func TestValidateItem(t *testing.T) {
	tests := []struct {
		text, due string
		want      ItemInput
		wantErr   bool
	}{
		{"Buy milk", "2024-01-01", ItemInput{"Buy milk", "2024-01-01"}, false},
		{"  Walk dog ", "", ItemInput{"Walk dog", ""}, false},
		{"Walk dog", "  ", ItemInput{"Walk dog", ""}, false},
		{"", "2024-01-01", ItemInput{}, true},
		{"   ", "", ItemInput{}, true},
		{"Buy milk", "01/01/2024", ItemInput{}, true},
		{"Buy milk", "2024-02-30", ItemInput{}, true},
	}

	for _, tt := range tests {
		got, err := ValidateItem(tt.text, tt.due)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateItem(%q, %q) error = %v, wantErr %v", tt.text, tt.due, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrValidation) {
			t.Errorf("ValidateItem(%q, %q) error %v is not ErrValidation", tt.text, tt.due, err)
		}
		if got != tt.want {
			t.Errorf("ValidateItem(%q, %q) = %+v, want %+v", tt.text, tt.due, got, tt.want)
		}
	}
}

func TestEmptyScratchIsValidation(t *testing.T) {
	if !errors.Is(ErrEmptyScratch, ErrValidation) {
		t.Error("expected ErrEmptyScratch to wrap ErrValidation")
	}
}

func TestListDate(t *testing.T) {
	d := time.Date(2024, time.January, 5, 15, 4, 0, 0, time.UTC)
	if got := ListDate(d); got != "January 05, 2024" {
		t.Errorf("expected 'January 05, 2024', got %q", got)
	}
}

func TestListOwnedBy(t *testing.T) {
	l := &List{ID: 1, OwnerID: 3}

	if l.OwnedBy(nil) {
		t.Error("anonymous identity must not own a list")
	}
	if l.OwnedBy(&Identity{AccountID: 4}) {
		t.Error("other account must not own the list")
	}
	if !l.OwnedBy(&Identity{AccountID: 3}) {
		t.Error("expected owner to own the list")
	}
}
