package employee

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
	List(actor *auth.User) ([]*Employee, error)
	ListByCompany(actor *auth.User, companyID string) ([]*Employee, error)
	GetPublic(id string) (*Employee, error)
	Create(ctx context.Context, actor *auth.User, dto CreateEmployeeDTO, avatar, background *media.File) (*Employee, error)
	Update(ctx context.Context, actor *auth.User, id string, dto UpdateEmployeeDTO, avatar *media.File) (*Employee, error)
	UpdateBackground(ctx context.Context, actor *auth.User, id string, background *media.File) (*Employee, error)
	Delete(ctx context.Context, actor *auth.User, id string) error
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

// List handles GET /employees.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	employees, err := h.Service.List(actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteList(w, http.StatusOK, len(employees), employees)
}

// ListByCompany handles GET /employees/company/{companyId}.
func (h *Handler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	employees, err := h.Service.ListByCompany(actor, chi.URLParam(r, "companyId"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteList(w, http.StatusOK, len(employees), employees)
}

// GetPublic handles GET /employees/{id}. The route is deliberately
// unauthenticated: the id doubles as the share token on NFC cards and QR
// codes.
func (h *Handler) GetPublic(w http.ResponseWriter, r *http.Request) {
	e, err := h.Service.GetPublic(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, e)
}

// Create handles POST /employees. Accepts JSON, or multipart form data when
// avatar/background files ride along.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateEmployeeDTO
	var avatar, background *media.File

	if transport.IsMultipart(r) {
		if err := r.ParseMultipartForm(transport.MaxUploadSize); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		dto = createDTOFromForm(r)

		var err error
		if avatar, err = transport.ImageFromForm(r, "avatar"); err != nil {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if background, err = transport.ImageFromForm(r, "background"); err != nil {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	e, err := h.Service.Create(r.Context(), actor, dto, avatar, background)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusCreated, e)
}

// Update handles PUT /employees/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateEmployeeDTO
	var avatar *media.File

	if transport.IsMultipart(r) {
		if err := r.ParseMultipartForm(transport.MaxUploadSize); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		dto = updateDTOFromForm(r)

		file, err := transport.ImageFromForm(r, "avatar")
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		avatar = file
	} else {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	e, err := h.Service.Update(r.Context(), actor, chi.URLParam(r, "id"), dto, avatar)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, e)
}

// UpdateBackground handles PUT /employees/{id}/background, a multipart-only
// endpoint carrying a single "background" image.
func (h *Handler) UpdateBackground(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := r.ParseMultipartForm(transport.MaxUploadSize); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	background, err := transport.ImageFromForm(r, "background")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.Service.UpdateBackground(r.Context(), actor, chi.URLParam(r, "id"), background)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, e)
}

// Delete handles DELETE /employees/{id}.
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
		"message": "Employee deleted",
	})
}

func createDTOFromForm(r *http.Request) CreateEmployeeDTO {
	dto := CreateEmployeeDTO{
		UserID:         transport.FormPtr(r, "userId"),
		Name:           formString(r, "name"),
		Surname:        formString(r, "surname"),
		Patronymic:     formString(r, "patronymic"),
		Role:           formString(r, "role"),
		Agency:         formString(r, "agency"),
		Email:          formString(r, "email"),
		Phone:          formString(r, "phone"),
		HomePhone:      formString(r, "homePhone"),
		WorkPhone:      formString(r, "workPhone"),
		InsuranceAgent: formString(r, "insuranceAgent"),
		PersonalSite:   formString(r, "personalSite"),
		BirthDate:      formString(r, "birthDate"),
		CorporateEmail: formString(r, "corporateEmail"),
		HomeAddress:    formString(r, "homeAddress"),
		Facebook:       formString(r, "facebook"),
		X:              formString(r, "x"),
		Linkedin:       formString(r, "linkedin"),
		Instagram:      formString(r, "instagram"),
		Github:         formString(r, "github"),
		ICQ:            formString(r, "icq"),
		Title:          formString(r, "title"),
	}
	dto.Company = auth.CompanyRef(formString(r, "company"))
	return dto
}

func updateDTOFromForm(r *http.Request) UpdateEmployeeDTO {
	dto := UpdateEmployeeDTO{
		Name:           transport.FormPtr(r, "name"),
		Surname:        transport.FormPtr(r, "surname"),
		Patronymic:     transport.FormPtr(r, "patronymic"),
		Role:           transport.FormPtr(r, "role"),
		Agency:         transport.FormPtr(r, "agency"),
		Email:          transport.FormPtr(r, "email"),
		Phone:          transport.FormPtr(r, "phone"),
		HomePhone:      transport.FormPtr(r, "homePhone"),
		WorkPhone:      transport.FormPtr(r, "workPhone"),
		InsuranceAgent: transport.FormPtr(r, "insuranceAgent"),
		PersonalSite:   transport.FormPtr(r, "personalSite"),
		BirthDate:      transport.FormPtr(r, "birthDate"),
		CorporateEmail: transport.FormPtr(r, "corporateEmail"),
		HomeAddress:    transport.FormPtr(r, "homeAddress"),
		Facebook:       transport.FormPtr(r, "facebook"),
		X:              transport.FormPtr(r, "x"),
		Linkedin:       transport.FormPtr(r, "linkedin"),
		Instagram:      transport.FormPtr(r, "instagram"),
		Github:         transport.FormPtr(r, "github"),
		ICQ:            transport.FormPtr(r, "icq"),
		Title:          transport.FormPtr(r, "title"),
	}
	dto.Company = auth.CompanyRef(formString(r, "company"))
	return dto
}

func formString(r *http.Request, key string) string {
	if v := transport.FormPtr(r, key); v != nil {
		return *v
	}
	return ""
}
