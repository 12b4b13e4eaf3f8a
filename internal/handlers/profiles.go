package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"citykitch/db"
	"citykitch/internal/auth"
	"citykitch/models"
)

const maxImageBytes = 5 << 20

// UpsertProfileHandler handles PUT /api/profile. Only the owning caterer can
// write their profile; the portfolio image list is managed by the image
// endpoints and ignored here.
func (h *Handler) UpsertProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	var profile models.CatererProfile
	if err := decodeJSON(w, r, &profile); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(profile.BusinessName) == "" || len(profile.BusinessName) > 100 {
		http.Error(w, "businessName is required and max length 100", http.StatusBadRequest)
		return
	}
	if len(profile.Description) > 1000 {
		http.Error(w, "description max length 1000", http.StatusBadRequest)
		return
	}
	if profile.Experience < 0 {
		http.Error(w, "experience must not be negative", http.StatusBadRequest)
		return
	}

	profile.CatererID = claims.UserID
	if existing, err := h.Store.GetCatererProfile(r.Context(), claims.UserID); err == nil {
		profile.Images = existing.Images
	} else {
		profile.Images = []string{}
	}

	if err := h.Store.UpsertCatererProfile(r.Context(), &profile); err != nil {
		h.Logger.Error().Err(err).Msg("Failed to save profile")
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

// GetCatererProfileHandler handles GET /api/caterers/{catererId}: the public
// profile page, readable without any role.
func (h *Handler) GetCatererProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Store.GetCatererProfile(r.Context(), chi.URLParam(r, "catererId"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Caterer profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}

	// Resolve stored handles to servable URLs.
	urls := make([]string, len(profile.Images))
	for i, handle := range profile.Images {
		urls[i] = h.Blobs.URL(handle)
	}
	profile.Images = urls

	h.respondJSON(w, http.StatusOK, profile)
}

// UploadImageHandler handles POST /api/profile/images: multipart upload of
// one portfolio image into the blob store, with the handle appended to the
// caterer's profile.
func (h *Handler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	profile, err := h.Store.GetCatererProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Create your profile before uploading images", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		http.Error(w, "Unsupported image type", http.StatusBadRequest)
		return
	}

	handle, err := h.Blobs.Put(fmt.Sprintf("%s-%s%s", claims.UserID, uuid.NewString(), ext), file)
	if err != nil {
		h.Logger.Error().Err(err).Msg("Failed to store image")
		http.Error(w, "Failed to store image", http.StatusInternalServerError)
		return
	}

	profile.Images = append(profile.Images, handle)
	if err := h.Store.UpsertCatererProfile(r.Context(), profile); err != nil {
		h.Blobs.Delete(handle)
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{
		"handle": handle,
		"url":    h.Blobs.URL(handle),
	})
}

// DeleteImageHandler handles DELETE /api/profile/images/{handle}.
func (h *Handler) DeleteImageHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	handle := chi.URLParam(r, "handle")

	profile, err := h.Store.GetCatererProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Caterer profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}

	kept := profile.Images[:0]
	found := false
	for _, img := range profile.Images {
		if img == handle {
			found = true
			continue
		}
		kept = append(kept, img)
	}
	if !found {
		http.Error(w, "Image not found on profile", http.StatusNotFound)
		return
	}
	profile.Images = kept

	if err := h.Store.UpsertCatererProfile(r.Context(), profile); err != nil {
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}
	if err := h.Blobs.Delete(handle); err != nil {
		h.Logger.Error().Err(err).Str("handle", handle).Msg("Failed to delete blob")
	}
	w.WriteHeader(http.StatusNoContent)
}
