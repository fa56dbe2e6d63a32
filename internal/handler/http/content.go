package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/utils"
	"github.com/harborline/moorage/models"
)

// uploadFormField is the multipart form field under which clients send the
// file on POST /users/upload.
const uploadFormField = "file"

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		log.Err(err).Msg("no file in multipart form")
		utils.WriteError(w, "expected a multipart form with a `file` field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.services.ContentService.Upload(ctx, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Err(err).Str("filename", header.Filename).Msg("error occurred during file upload")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		URL:     url,
	}, http.StatusCreated)
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account ID in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	archive, err := h.services.ContentService.Transfer(ctx, accountID, req.ImageURL)
	if err != nil {
		log.Err(err).Str("imageURL", req.ImageURL).Msg("error occurred during image transfer")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		URL:     archive.URL,
	}, http.StatusCreated)
}

func (h *Handler) archives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account ID in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	archives, err := h.services.ContentService.Archives(ctx, accountID)
	if err != nil {
		log.Err(err).Msg("error occurred during archive listing")
		writeError(w, err)
		return
	}

	data, err := json.Marshal(archives)
	if err != nil {
		log.Err(err).Msg("error occurred during archive serialization")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Data:    data,
	}, http.StatusOK)
}

func (h *Handler) archiveURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account ID in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	archiveID := chi.URLParam(r, "id")

	url, err := h.services.ContentService.ArchiveURL(ctx, accountID, archiveID)
	if err != nil {
		log.Err(err).Str("archiveID", archiveID).Msg("error occurred during archive lookup")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		URL:     url,
	}, http.StatusOK)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	results, err := h.services.ContentService.Search(ctx, req)
	if err != nil {
		log.Err(err).Str("query", req.Query).Msg("error occurred during photo search")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Data:    results,
	}, http.StatusOK)
}

func (h *Handler) saveBoat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account ID in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SaveBoatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.ContentService.SaveBoat(ctx, accountID, req); err != nil {
		log.Err(err).Msg("error occurred during boat creation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: "boat saved",
	}, http.StatusCreated)
}

func (h *Handler) listBoats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account ID in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	boats, err := h.services.ContentService.Boats(ctx, accountID)
	if err != nil {
		log.Err(err).Msg("error occurred during boat listing")
		writeError(w, err)
		return
	}

	data, err := json.Marshal(boats)
	if err != nil {
		log.Err(err).Msg("error occurred during boat serialization")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Data:    data,
	}, http.StatusOK)
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: "pong",
	}, http.StatusOK)
}
