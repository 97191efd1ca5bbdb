package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = ginkgo.Describe("Auth Handler", func() {
	var (
		handler  *Handler
		mockRepo *mockRepository
		tokenGen *JWTTokenGenerator

		protected http.Handler
	)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		tokenGen = NewJWTTokenGenerator("handler-test-secret-of-32-chars!!!!", time.Hour)
		service := NewService(mockRepo, tokenGen, bcrypt.MinCost, discardLogger())
		handler = NewHandler(service)

		protected = handler.AuthMiddleware(okHandler)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("should return the token and user in the envelope", func() {
			body := `{"email":"worker@example.com","password":"correct_password"}`
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var response struct {
				Success bool   `json:"success"`
				Token   string `json:"token"`
				User    *User  `json:"user"`
			}
			gomega.Expect(json.NewDecoder(w.Body).Decode(&response)).To(gomega.Succeed())
			gomega.Expect(response.Success).To(gomega.BeTrue())
			gomega.Expect(response.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(response.User.Email).To(gomega.Equal("worker@example.com"))
		})

		ginkgo.It("should answer wrong credentials with 401 and a generic message", func() {
			for _, body := range []string{
				`{"email":"worker@example.com","password":"wrong"}`,
				`{"email":"nobody@example.com","password":"whatever"}`,
			} {
				req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
				w := httptest.NewRecorder()

				handler.Login(w, req)

				gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))

				var response struct {
					Success bool   `json:"success"`
					Message string `json:"message"`
				}
				gomega.Expect(json.NewDecoder(w.Body).Decode(&response)).To(gomega.Succeed())
				gomega.Expect(response.Success).To(gomega.BeFalse())
				gomega.Expect(response.Message).To(gomega.Equal("Invalid email or password"))
			}
		})

		ginkgo.It("should answer a suspended company with 403", func() {
			body := `{"email":"locked@example.com","password":"correct_password"}`
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		ginkgo.It("should let a valid bearer token through", func() {
			token, err := tokenGen.GenerateToken("u3")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should answer a missing header with 401", func() {
			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should answer a garbage token with 401", func() {
			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			req.Header.Set("Authorization", "Bearer not.a.token")
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should answer a member of a freshly suspended company with 403", func() {
			token, err := tokenGen.GenerateToken("u3")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			mockRepo.companyStatuses["company-1"] = CompanyStatusSuspended

			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})

	ginkgo.Describe("RequireRoles", func() {
		ginkgo.It("should enforce exact role matching with no hierarchy", func() {
			adminOnly := handler.RequireRoles(RoleCompanyAdmin)(okHandler)

			superadmin := &User{ID: "sa", Role: RoleSuperAdmin}
			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			req = req.WithContext(ContextWithUser(req.Context(), superadmin))
			w := httptest.NewRecorder()

			adminOnly.ServeHTTP(w, req)

			// superadmin is not company_admin; the list is literal
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("should let a listed role through", func() {
			adminOnly := handler.RequireRoles(RoleCompanyAdmin, RoleSuperAdmin)(okHandler)

			companyID := "company-1"
			admin := &User{ID: "ca", Role: RoleCompanyAdmin, CompanyID: &companyID}
			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			req = req.WithContext(ContextWithUser(req.Context(), admin))
			w := httptest.NewRecorder()

			adminOnly.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		})
	})
})
