package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bhanurzh/bookshelf-api/internal/books"
	"go.uber.org/zap"
)

const booksPath = "/books"

type server struct {
	store  books.Store
	logger *zap.Logger
}

// newServer wires the handlers onto a mux and wraps it with the request
// logging middleware.
func newServer(store books.Store, logger *zap.Logger) http.Handler {
	s := &server{store: store, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc(booksPath, s.handleBooks)
	mux.HandleFunc(booksPath+"/", s.handleBookByID)

	return requestLogger(mux, logger)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = fmt.Fprint(w, `{"status":"ok"}`)
}

func (s *server) handleBooks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listBooks(w, r)
	case http.MethodPost:
		s.createBook(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *server) handleBookByID(w http.ResponseWriter, r *http.Request) {
	rawID, err := extractID(strings.TrimPrefix(r.URL.Path, booksPath))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	// An id that is not an integer can never match a stored book.
	id, err := strconv.Atoi(rawID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getBook(w, r, id)
	case http.MethodPut:
		s.updateBook(w, r, id)
	case http.MethodDelete:
		s.deleteBook(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *server) listBooks(w http.ResponseWriter, r *http.Request) {
	if contextDone(w, r.Context()) {
		return
	}

	all, err := s.store.List(r.Context())
	if err != nil {
		s.internalError(w, "list books", err)
		return
	}

	s.writeJSON(w, http.StatusOK, all)
}

func (s *server) getBook(w http.ResponseWriter, r *http.Request, id int) {
	if contextDone(w, r.Context()) {
		return
	}

	book, ok, err := s.store.FindByID(r.Context(), id)
	if err != nil {
		s.internalError(w, "find book", err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.writeJSON(w, http.StatusOK, book)
}

func (s *server) createBook(w http.ResponseWriter, r *http.Request) {
	if contextDone(w, r.Context()) {
		return
	}

	payload, err := readBookPayload(r)
	if err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	// Title and author are accepted as given, empty included; the store
	// assigns id and createdAt.
	created, err := s.store.Insert(r.Context(), books.Book{
		Title:    payload.Title,
		Author:   payload.Author,
		Finished: payload.Finished,
	})
	if err != nil {
		s.internalError(w, "insert book", err)
		return
	}

	s.writeJSON(w, http.StatusCreated, created)
}

func (s *server) updateBook(w http.ResponseWriter, r *http.Request, id int) {
	if contextDone(w, r.Context()) {
		return
	}

	update, err := readUpdatePayload(r)
	if err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	_, ok, err := s.store.Replace(r.Context(), id, update)
	if err != nil {
		s.internalError(w, "replace book", err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *server) deleteBook(w http.ResponseWriter, r *http.Request, id int) {
	if contextDone(w, r.Context()) {
		return
	}

	ok, err := s.store.Remove(r.Context(), id)
	if err != nil {
		s.internalError(w, "remove book", err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op, zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
}

// bookPayload is the request body for creating a book. A missing
// finished field decodes to false.
type bookPayload struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Finished bool   `json:"finished"`
}

func readBookPayload(r *http.Request) (bookPayload, error) {
	var payload bookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return bookPayload{}, fmt.Errorf("decoding book payload: %w", err)
	}
	return payload, nil
}

// readUpdatePayload decodes a partial update; absent fields stay nil so
// the store can tell "omitted" from "set to the zero value".
func readUpdatePayload(r *http.Request) (books.BookUpdate, error) {
	var payload struct {
		Title    *string `json:"title"`
		Author   *string `json:"author"`
		Finished *bool   `json:"finished"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return books.BookUpdate{}, fmt.Errorf("decoding update payload: %w", err)
	}
	return books.BookUpdate{
		Title:    payload.Title,
		Author:   payload.Author,
		Finished: payload.Finished,
	}, nil
}

// extractID parses the trailing id segment of a path like "/5".
func extractID(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("path %q missing leading slash", path)
	}

	id := strings.TrimPrefix(path, "/")
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("path %q is not a single id segment", path)
	}

	return id, nil
}

// contextDone reports whether the request context has been cancelled,
// responding with 408 when it has.
func contextDone(w http.ResponseWriter, ctx context.Context) bool {
	select {
	case <-ctx.Done():
		w.WriteHeader(http.StatusRequestTimeout)
		return true
	default:
		return false
	}
}
