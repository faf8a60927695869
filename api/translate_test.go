package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koreatrip/domain"
)

func postJSON(target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestTranslate(t *testing.T) {
	f := newFixture(t)
	f.generator.text = "안녕하세요"
	e := echo.New()

	req, rec := postJSON("/api/v1/translate", `{"text":"Hello","source_lang":"en","target_lang":"ko"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Translate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, f.generator.prompts, 1)
	p := f.generator.prompts[0]
	assert.Contains(t, p, "English")
	assert.Contains(t, p, "Korean")
	assert.Equal(t, 1, strings.Count(p, "Hello"))

	var resp domain.TranslationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hello", resp.OriginalText)
	assert.Equal(t, "안녕하세요", resp.TranslatedText)
	assert.Equal(t, "en", resp.SourceLang)
	assert.Equal(t, "ko", resp.TargetLang)
	assert.Nil(t, resp.Confidence)
}

func TestTranslateDefaultsSourceToAuto(t *testing.T) {
	f := newFixture(t)
	e := echo.New()

	req, rec := postJSON("/api/v1/translate", `{"text":"Hello","target_lang":"ko"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Translate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TranslationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "auto", resp.SourceLang)

	require.Len(t, f.generator.prompts, 1)
	assert.Contains(t, f.generator.prompts[0], "auto-detected language")
}

func TestTranslateRequiresText(t *testing.T) {
	f := newFixture(t)
	e := echo.New()

	req, rec := postJSON("/api/v1/translate", `{"text":"  ","target_lang":"ko"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Translate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.generator.prompts)
}

func TestTranslateRequiresTargetLang(t *testing.T) {
	f := newFixture(t)
	e := echo.New()

	req, rec := postJSON("/api/v1/translate", `{"text":"Hello"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Translate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateBackendError(t *testing.T) {
	f := newFixture(t)
	f.generator.err = errors.New("quota exceeded")
	e := echo.New()

	req, rec := postJSON("/api/v1/translate", `{"text":"Hello","target_lang":"ko"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Translate(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// the backend message is carried in the error payload
	assert.Contains(t, rec.Body.String(), "quota exceeded")
}
