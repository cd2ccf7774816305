package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sharandeepreddy/pf/internal/common"
	"github.com/sharandeepreddy/pf/internal/server/services"
)

type uploadCertificateRequest struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	Credential string `json:"credential"`
	FileName   string `json:"fileName"`
	FileType   string `json:"fileType"`
	FileData   string `json:"fileData"`
}

func (s *Server) handleUploadCertificate(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, "POST, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeFlatError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req uploadCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFlatError(w, http.StatusBadRequest, "Please use JSON format with base64 encoded file data")
		return
	}

	owner := s.deps.Identity.Resolve(r.Header)
	id, err := s.deps.Certificates.Upload(r.Context(), services.CertificateUpload{
		Name:       req.Name,
		Issuer:     req.Issuer,
		Date:       req.Date,
		Credential: req.Credential,
		FileName:   req.FileName,
		FileType:   req.FileType,
		FileData:   req.FileData,
	}, owner)
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			writeFlatError(w, http.StatusBadRequest, ve.Message)
			return
		}
		s.logger.Error(r.Context(), "certificate upload failed", "error", err)
		s.writeInternalCertError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      id,
		"message": "Certificate uploaded successfully",
	})
}

func (s *Server) handleGetCertificates(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, "GET, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeFlatError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	owner := s.deps.Identity.Resolve(r.Header)
	certs, err := s.deps.Certificates.List(r.Context(), owner)
	if err != nil {
		s.logger.Error(r.Context(), "certificate list failed", "error", err)
		s.writeInternalCertError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(certs))
	for _, c := range certs {
		items = append(items, map[string]any{
			"id":         c.ID,
			"name":       c.Name,
			"issuer":     c.Issuer,
			"date":       c.Date,
			"credential": c.Credential,
			"fileName":   c.FileName,
			"fileType":   c.FileType,
			"createdAt":  c.CreatedAt,
			"fileUrl":    fmt.Sprintf("/api/get-certificate-file?id=%d", c.ID),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"certificates": items,
	})
}

func (s *Server) handleGetCertificateFile(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, "GET, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeFlatError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id, ok := certificateID(w, r)
	if !ok {
		return
	}

	owner := s.deps.Identity.Resolve(r.Header)
	file, err := s.deps.Certificates.GetFile(r.Context(), id, owner)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeFlatError(w, http.StatusNotFound, "Certificate not found")
			return
		}
		s.logger.Error(r.Context(), "certificate file fetch failed", "error", err)
		s.writeInternalCertError(w, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", file.FileType)
	h.Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.FileName))
	h.Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(base64.StdEncoding.EncodeToString(file.FileData)))
}

func (s *Server) handleDeleteCertificate(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, "DELETE, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodDelete {
		writeFlatError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id, ok := certificateID(w, r)
	if !ok {
		return
	}

	owner := s.deps.Identity.Resolve(r.Header)
	if err := s.deps.Certificates.Delete(r.Context(), id, owner); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeFlatError(w, http.StatusNotFound,
				"Certificate not found or you don't have permission to delete it")
			return
		}
		s.logger.Error(r.Context(), "certificate delete failed", "error", err)
		s.writeInternalCertError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Certificate deleted successfully",
	})
}

// certificateID reads the id query parameter, writing a 400 and returning
// ok=false when it is missing or not numeric.
func certificateID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		writeFlatError(w, http.StatusBadRequest, "Certificate ID is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeFlatError(w, http.StatusBadRequest, "Invalid certificate ID")
		return 0, false
	}
	return id, true
}

// writeInternalCertError writes the certificate endpoints' 500 shape. The
// underlying error text is included; acceptable for a personal site, would
// need redaction in a hardened reuse.
func (s *Server) writeInternalCertError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error":   "Internal server error",
		"message": err.Error(),
	})
}
