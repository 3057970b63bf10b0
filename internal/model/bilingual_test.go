package model

import "testing"

func TestBilingualTextIn(t *testing.T) {
	b := BilingualText{EN: "Hello", KR: "안녕하세요"}

	tests := []struct {
		lang string
		want string
	}{
		{LangEN, "Hello"},
		{LangKR, "안녕하세요"},
		{"fr", "Hello"},
		{"", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := b.In(tt.lang); got != tt.want {
				t.Errorf("In(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestBilingualTextOther(t *testing.T) {
	b := BilingualText{EN: "Hello", KR: "안녕하세요"}

	if got := b.Other(LangEN); got != "안녕하세요" {
		t.Errorf("Other(en) = %q, want Korean line", got)
	}
	if got := b.Other(LangKR); got != "Hello" {
		t.Errorf("Other(kr) = %q, want English line", got)
	}
}

func TestBilingualTextIsEmpty(t *testing.T) {
	if !(BilingualText{}).IsEmpty() {
		t.Error("zero value should be empty")
	}
	if (BilingualText{EN: "x"}).IsEmpty() {
		t.Error("pair with English line should not be empty")
	}
	if (BilingualText{KR: "ㅇ"}).IsEmpty() {
		t.Error("pair with Korean line should not be empty")
	}
}
