package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/hr-directory/internal/auth"
	authPostgres "github.com/frahmantamala/hr-directory/internal/auth/postgres"
	companyDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/company"
	userDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/user"
)

func TestAuthPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Postgres Suite")
}

var _ = Describe("Auth Repository", func() {
	var (
		db   *gorm.DB
		repo *authPostgres.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&companyDatamodel.Company{}, &userDatamodel.User{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&companyDatamodel.Company{ID: "company-a", Name: "Acme", Email: "acme@example.com", Status: "active"}).Error).To(Succeed())

		repo = authPostgres.NewRepository(db)
	})

	Describe("Create and GetByEmail", func() {
		It("should round-trip the account and surface the stored hash", func() {
			companyA := "company-a"
			u := &auth.User{Email: "worker@example.com", Role: auth.RoleEmployee, CompanyID: &companyA, IsActive: true}

			err := repo.Create(u, "stored-hash")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).NotTo(BeEmpty())

			loaded, hash, err := repo.GetByEmail("worker@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal("stored-hash"))
			Expect(loaded.ID).To(Equal(u.ID))
			Expect(loaded.TenantID()).To(Equal("company-a"))
		})

		It("should attach the company summary when bound", func() {
			companyA := "company-a"
			u := &auth.User{Email: "worker@example.com", Role: auth.RoleEmployee, CompanyID: &companyA, IsActive: true}
			Expect(repo.Create(u, "hash")).To(Succeed())

			loaded, _, err := repo.GetByEmail("worker@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Company).NotTo(BeNil())
			Expect(loaded.Company.Name).To(Equal("Acme"))
			Expect(loaded.Company.Status).To(Equal("active"))
		})

		It("should leave the summary nil for an unbound account", func() {
			u := &auth.User{Email: "admin@example.com", Role: auth.RoleSuperAdmin, IsActive: true}
			Expect(repo.Create(u, "hash")).To(Succeed())

			loaded, _, err := repo.GetByEmail("admin@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Company).To(BeNil())
		})

		It("should enforce the unique email constraint", func() {
			u1 := &auth.User{Email: "dup@example.com", Role: auth.RoleEmployee, IsActive: true}
			Expect(repo.Create(u1, "hash")).To(Succeed())

			u2 := &auth.User{Email: "dup@example.com", Role: auth.RoleEmployee, IsActive: true}
			Expect(repo.Create(u2, "hash")).To(HaveOccurred())
		})
	})

	Describe("GetCompanyStatus", func() {
		It("should return the stored status", func() {
			status, err := repo.GetCompanyStatus("company-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal("active"))
		})

		It("should error for an unknown company", func() {
			_, err := repo.GetCompanyStatus("company-404")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("EmailExists", func() {
		It("should reflect stored accounts", func() {
			u := &auth.User{Email: "worker@example.com", Role: auth.RoleEmployee, IsActive: true}
			Expect(repo.Create(u, "hash")).To(Succeed())

			exists, err := repo.EmailExists("worker@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = repo.EmailExists("nobody@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})
})
