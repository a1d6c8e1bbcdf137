package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/content"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Tory Burch":            "tory-burch",
		"Motorsport Multiverse": "motorsport-multiverse",
		"Yjewelry":              "yjewelry",
		"  Odd -- Spacing! ":    "odd-spacing",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestProjectService(t *testing.T) {
	s := NewProjectService(content.Projects())
	assert.Equal(t, 6, s.Count())

	p, err := s.GetBySlug("payever")
	require.NoError(t, err)
	assert.Equal(t, "https://getpayever.com/", p.Href)

	_, err = s.GetBySlug("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_GetAllIsACopy(t *testing.T) {
	s := NewProjectService(content.Projects())
	all := s.GetAll()
	all[0].Title = "changed"

	assert.Equal(t, "Tory Burch", s.GetAll()[0].Title)
}
