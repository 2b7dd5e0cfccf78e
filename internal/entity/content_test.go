package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAnnouncement(t *testing.T) {
	a, err := NewAnnouncement("Culto especial", "Domingo às 11h", "admin", true)

	assert.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.True(t, a.IsUrgent)

	_, err = NewAnnouncement("", "conteudo", "admin", false)
	assert.Error(t, err)

	_, err = NewAnnouncement("titulo", "", "admin", false)
	assert.Error(t, err)
}

func TestNewEvent(t *testing.T) {
	e, err := NewEvent("Vigília", "Noite de oração", "2026-09-12", "22:00")

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-12", e.EventDate)

	// Sem horário vale: evento de dia inteiro
	_, err = NewEvent("Vigília", "", "2026-09-12", "")
	assert.NoError(t, err)

	_, err = NewEvent("", "", "2026-09-12", "")
	assert.Error(t, err)

	_, err = NewEvent("Vigília", "", "12/09/2026", "")
	assert.Error(t, err)
}

func TestNewPrayerRequest(t *testing.T) {
	p, err := NewPrayerRequest("member-1", "Saúde", "Pela recuperação do meu pai")

	assert.NoError(t, err)
	assert.False(t, p.IsApproved) // entra pendente de moderação
	assert.False(t, p.IsAnswered)
	assert.Equal(t, UnknownAuthorName, p.AuthorName)

	_, err = NewPrayerRequest("", "Saúde", "desc")
	assert.Error(t, err)

	_, err = NewPrayerRequest("member-1", "", "desc")
	assert.Error(t, err)
}

func TestNewTestimony(t *testing.T) {
	ty, err := NewTestimony("member-1", "Gratidão", "Deus me sustentou")

	assert.NoError(t, err)
	assert.False(t, ty.IsApproved)

	_, err = NewTestimony("member-1", "Gratidão", "")
	assert.Error(t, err)
}

func TestNewGallery(t *testing.T) {
	g, err := NewGallery("Retiro 2026", "Fotos do retiro", "")

	assert.NoError(t, err)
	assert.True(t, g.IsActive)

	_, err = NewGallery("", "", "")
	assert.Error(t, err)
}

func TestNewGalleryPhoto(t *testing.T) {
	p, err := NewGalleryPhoto("gal-1", "https://bucket.s3.eu-west-1.amazonaws.com/galleries/1.jpg", "Louvor", "member-1")

	assert.NoError(t, err)
	assert.False(t, p.IsApproved) // fotos entram pendentes de aprovação

	_, err = NewGalleryPhoto("", "url", "", "")
	assert.Error(t, err)

	_, err = NewGalleryPhoto("gal-1", "", "", "")
	assert.Error(t, err)
}
