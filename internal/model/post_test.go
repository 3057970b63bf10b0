package model

import "testing"

func TestPostMetaTitle(t *testing.T) {
	p := &Post{Title: BilingualText{EN: "Launch", KR: "출시"}}
	if got := p.MetaTitle(); got != "Launch" {
		t.Errorf("MetaTitle() = %q, want English title fallback", got)
	}

	p.SEO.Title = "Launch | MetaOn"
	if got := p.MetaTitle(); got != "Launch | MetaOn" {
		t.Errorf("MetaTitle() = %q, want SEO title", got)
	}
}

func TestPostMetaDescription(t *testing.T) {
	p := &Post{Summary: BilingualText{EN: "A new platform."}}
	if got := p.MetaDescription(); got != "A new platform." {
		t.Errorf("MetaDescription() = %q, want English summary fallback", got)
	}

	p.SEO.Description = "Discover MetaOn."
	if got := p.MetaDescription(); got != "Discover MetaOn." {
		t.Errorf("MetaDescription() = %q, want SEO description", got)
	}
}

func TestIsValidSectionID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{SectionHero, true},
		{SectionAbout, true},
		{SectionFeatures, true},
		{"pricing", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsValidSectionID(tt.id); got != tt.want {
				t.Errorf("IsValidSectionID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestAssetIsImage(t *testing.T) {
	tests := []struct {
		mimeType string
		want     bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"application/pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			a := &Asset{Type: tt.mimeType}
			if got := a.IsImage(); got != tt.want {
				t.Errorf("IsImage() = %v, want %v", got, tt.want)
			}
		})
	}
}
