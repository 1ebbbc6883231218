package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubFileStore struct {
	saved   map[string]string
	saveErr error
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{saved: make(map[string]string)}
}

func (s *stubFileStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.saved[name] = string(b)
	return name, nil
}

func multipartRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := w.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.WriteField("description", "hi"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadMiddleware_StoresFile(t *testing.T) {
	e := echo.New()
	store := newStubFileStore()
	req := multipartRequest(t, "picture", "sunset.jpg", "jpegbytes")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Upload(store)(func(c echo.Context) error {
		called = true
		if c.Get(PicturePathKey) != "sunset.jpg" {
			t.Fatalf("picture path not set, got %v", c.Get(PicturePathKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if store.saved["sunset.jpg"] != "jpegbytes" {
		t.Fatalf("file content not stored: %q", store.saved["sunset.jpg"])
	}
}

func TestUploadMiddleware_NoFile(t *testing.T) {
	e := echo.New()
	store := newStubFileStore()
	req := multipartRequest(t, "picture", "", "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Upload(store)(func(c echo.Context) error {
		if c.Get(PicturePathKey) != nil {
			t.Fatalf("picture path must stay unset")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(store.saved) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestUploadMiddleware_NonMultipartBody(t *testing.T) {
	e := echo.New()
	store := newStubFileStore()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Upload(store)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("JSON requests must pass through")
	}
}

func TestUploadMiddleware_StoreFailure(t *testing.T) {
	e := echo.New()
	store := newStubFileStore()
	store.saveErr = errors.New("disk full")
	req := multipartRequest(t, "picture", "sunset.jpg", "jpegbytes")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Upload(store)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error on storage failure")
	}
	// A failed write surfaces as a server error, not a client one.
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		t.Fatalf("expected 5xx, got %d", he.Code)
	}
}
