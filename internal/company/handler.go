package company

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hr-directory/internal/auth"
	"github.com/frahmantamala/hr-directory/internal/media"
	"github.com/frahmantamala/hr-directory/internal/transport"
	"github.com/frahmantamala/hr-directory/pkg/logger"
)

type ServiceAPI interface {
	List(actor *auth.User) ([]*Company, error)
	GetByID(actor *auth.User, id string) (*Company, error)
	RegisterPublic(dto RegisterCompanyDTO) (*Company, *auth.User, string, error)
	Create(actor *auth.User, dto CreateCompanyDTO) (*Company, error)
	Update(ctx context.Context, actor *auth.User, id string, dto UpdateCompanyDTO, logo *media.File) (*Company, error)
	Delete(ctx context.Context, actor *auth.User, id string) error
	ToggleStatus(actor *auth.User, id string) (*Company, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

// List handles GET /companies.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	companies, err := h.Service.List(actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteList(w, http.StatusOK, len(companies), companies)
}

// Get handles GET /companies/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	c, err := h.Service.GetByID(actor, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, c)
}

// RegisterPublic handles POST /companies/public.
func (h *Handler) RegisterPublic(w http.ResponseWriter, r *http.Request) {
	var dto RegisterCompanyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, user, token, err := h.Service.RegisterPublic(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, transport.Envelope{
		"success": true,
		"token":   token,
		"data": transport.Envelope{
			"company": c,
			"user":    user,
		},
	})
}

// Create handles POST /companies (superadmin, enforced by the route).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCompanyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.Create(actor, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusCreated, c)
}

// Update handles PUT /companies/{id}. Accepts JSON, or multipart form data
// when a logo file rides along.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateCompanyDTO
	var logo *media.File

	if transport.IsMultipart(r) {
		if err := r.ParseMultipartForm(transport.MaxUploadSize); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		dto = updateDTOFromForm(r)

		file, err := transport.ImageFromForm(r, "logo")
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		logo = file
	} else {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	c, err := h.Service.Update(r.Context(), actor, chi.URLParam(r, "id"), dto, logo)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, c)
}

// Delete handles DELETE /companies/{id} (superadmin, enforced by the route).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.Service.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.Envelope{
		"success": true,
		"message": "Company deleted",
	})
}

// ToggleStatus handles PATCH /companies/{id}/status (superadmin, enforced by
// the route).
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	c, err := h.Service.ToggleStatus(actor, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, c)
}

func updateDTOFromForm(r *http.Request) UpdateCompanyDTO {
	return UpdateCompanyDTO{
		Name:         transport.FormPtr(r, "name"),
		Email:        transport.FormPtr(r, "email"),
		Phone:        transport.FormPtr(r, "phone"),
		Address:      transport.FormPtr(r, "address"),
		City:         transport.FormPtr(r, "city"),
		PostalCode:   transport.FormPtr(r, "postalCode"),
		Country:      transport.FormPtr(r, "country"),
		Website:      transport.FormPtr(r, "website"),
		Sector:       transport.FormPtr(r, "sector"),
		Size:         transport.FormPtr(r, "size"),
		Type:         transport.FormPtr(r, "type"),
		Color:        transport.FormPtr(r, "color"),
		QRColor:      transport.FormPtr(r, "qrColor"),
		CreationYear: transport.FormPtr(r, "creationYear"),
		Status:       transport.FormPtr(r, "status"),
	}
}
