package employee

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/hr-directory/internal/auth"
)

var _ = ginkgo.Describe("Employee Handler", func() {
	var (
		handler *Handler
		repo    *mockRepository
		router  *chi.Mux

		companyA = "company-a"
		admin    *auth.User
	)

	// asUser injects the acting principal the way the resolver middleware does.
	asUser := func(u *auth.User) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), u)))
			})
		}
	}

	ginkgo.BeforeEach(func() {
		repo = newMockRepository()
		service := NewService(repo, &mockMediaStore{}, discardLogger())
		handler = NewHandler(service)

		admin = &auth.User{ID: "ca", Role: auth.RoleCompanyAdmin, CompanyID: &companyA}

		router = chi.NewRouter()
		router.Get("/employees/{id}", handler.GetPublic)
		router.Group(func(r chi.Router) {
			r.Use(asUser(admin))
			r.Get("/employees", handler.List)
			r.Get("/employees/company/{companyId}", handler.ListByCompany)
			r.Post("/employees", handler.Create)
			r.Put("/employees/{id}", handler.Update)
			r.Delete("/employees/{id}", handler.Delete)
		})
	})

	ginkgo.Describe("GET /employees/{id}", func() {
		ginkgo.It("should serve the card without any authentication", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/card-3", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var response struct {
				Success bool      `json:"success"`
				Data    *Employee `json:"data"`
			}
			gomega.Expect(json.NewDecoder(w.Body).Decode(&response)).To(gomega.Succeed())
			gomega.Expect(response.Success).To(gomega.BeTrue())
			gomega.Expect(response.Data.Name).To(gomega.Equal("Alan"))
		})

		ginkgo.It("should return 404 with the error envelope for an unknown id", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/card-404", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))

			var response struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			gomega.Expect(json.NewDecoder(w.Body).Decode(&response)).To(gomega.Succeed())
			gomega.Expect(response.Success).To(gomega.BeFalse())
			gomega.Expect(response.Message).ToNot(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("GET /employees", func() {
		ginkgo.It("should return the tenant's cards with a count", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var response struct {
				Success bool        `json:"success"`
				Count   int         `json:"count"`
				Data    []*Employee `json:"data"`
			}
			gomega.Expect(json.NewDecoder(w.Body).Decode(&response)).To(gomega.Succeed())
			gomega.Expect(response.Count).To(gomega.Equal(2))
			gomega.Expect(response.Data).To(gomega.HaveLen(2))
		})
	})

	ginkgo.Describe("POST /employees", func() {
		ginkgo.It("should create a card from a JSON body", func() {
			body, _ := json.Marshal(map[string]string{"name": "New", "surname": "Hire"})
			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
		})

		ginkgo.It("should create a card from multipart form data with an avatar", func() {
			var buf bytes.Buffer
			form := multipart.NewWriter(&buf)
			gomega.Expect(form.WriteField("name", "New")).To(gomega.Succeed())
			gomega.Expect(form.WriteField("surname", "Hire")).To(gomega.Succeed())

			header := textproto.MIMEHeader{}
			header.Set("Content-Disposition", `form-data; name="avatar"; filename="avatar.png"`)
			header.Set("Content-Type", "image/png")
			part, err := form.CreatePart(header)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = part.Write([]byte("png-bytes"))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(form.Close()).To(gomega.Succeed())

			req := httptest.NewRequest(http.MethodPost, "/employees", &buf)
			req.Header.Set("Content-Type", form.FormDataContentType())
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))

			var response struct {
				Data *Employee `json:"data"`
			}
			gomega.Expect(json.NewDecoder(w.Body).Decode(&response)).To(gomega.Succeed())
			gomega.Expect(response.Data.Avatar).ToNot(gomega.BeNil())
		})

		ginkgo.It("should reject a non-image upload", func() {
			var buf bytes.Buffer
			form := multipart.NewWriter(&buf)
			gomega.Expect(form.WriteField("name", "New")).To(gomega.Succeed())
			gomega.Expect(form.WriteField("surname", "Hire")).To(gomega.Succeed())

			header := textproto.MIMEHeader{}
			header.Set("Content-Disposition", `form-data; name="avatar"; filename="malware.exe"`)
			header.Set("Content-Type", "application/octet-stream")
			part, err := form.CreatePart(header)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = part.Write([]byte("bytes"))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(form.Close()).To(gomega.Succeed())

			req := httptest.NewRequest(http.MethodPost, "/employees", &buf)
			req.Header.Set("Content-Type", form.FormDataContentType())
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should reject a missing surname", func() {
			req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":"Only"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("DELETE /employees/{id}", func() {
		ginkgo.It("should delete a tenant card and confirm in the envelope", func() {
			req := httptest.NewRequest(http.MethodDelete, "/employees/card-2", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(repo.deleted).To(gomega.ContainElement("card-2"))
		})

		ginkgo.It("should return 403 for a card in another tenant", func() {
			req := httptest.NewRequest(http.MethodDelete, "/employees/card-3", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})
})
