// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fontsDir = "../../assets/fonts"

const sampleBody = `# Гайд по утреннему кофе

Первый абзац с **жирным** и *курсивным* текстом.

## Шаг 1. Вода

Обычный абзац без разметки.

## Шаг 2. Помол

Ещё один абзац, подлиннее, чтобы занять на странице заметно больше
одной строки и проверить перенос текста внутри параграфа.`

func TestRenderProducesPDF(t *testing.T) {
	r, err := NewPDFRenderer(fontsDir)
	require.NoError(t, err)

	pdf, err := r.Render("Гайд по кофе", sampleBody)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderIsDeterministic(t *testing.T) {
	r, err := NewPDFRenderer(fontsDir)
	require.NoError(t, err)

	first, err := r.Render("Гайд", sampleBody)
	require.NoError(t, err)
	second, err := r.Render("Гайд", sampleBody)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderEmptyBody(t *testing.T) {
	r, err := NewPDFRenderer(fontsDir)
	require.NoError(t, err)

	pdf, err := r.Render("Пустой документ", "")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestNewPDFRendererMissingRegularFont(t *testing.T) {
	_, err := NewPDFRenderer(t.TempDir())
	assert.ErrorIs(t, err, ErrFontMissing)
}

func TestNewPDFRendererBoldFallback(t *testing.T) {
	dir := t.TempDir()
	regular, err := os.ReadFile(filepath.Join(fontsDir, regularFontFile))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, regularFontFile), regular, 0o644))

	r, err := NewPDFRenderer(dir)
	require.NoError(t, err)

	pdf, err := r.Render("Без жирного начертания", sampleBody)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
