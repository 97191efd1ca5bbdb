package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/hr-directory/internal/auth"
	"github.com/frahmantamala/hr-directory/internal/company"
	companyPostgres "github.com/frahmantamala/hr-directory/internal/company/postgres"
	companyDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/company"
)

func TestCompanyPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Company Postgres Suite")
}

var _ = Describe("Company Repository", func() {
	var (
		db   *gorm.DB
		repo company.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&companyDatamodel.Company{})
		Expect(err).NotTo(HaveOccurred())

		repo = companyPostgres.NewCompanyRepository(db)
	})

	Describe("Create", func() {
		It("should assign an id and default the status to active", func() {
			c := &company.Company{Name: "Acme", Email: "acme@example.com"}

			err := repo.Create(c)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.ID).NotTo(BeEmpty())
			Expect(c.Status).To(Equal(company.StatusActive))
		})

		It("should keep an explicit status", func() {
			c := &company.Company{Name: "Globex", Email: "globex@example.com", Status: company.StatusSuspended}

			Expect(repo.Create(c)).To(Succeed())

			loaded, err := repo.GetByID(c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Status).To(Equal(company.StatusSuspended))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			Expect(repo.Create(&company.Company{ID: "company-a", Name: "Acme", Email: "acme@example.com"})).To(Succeed())
			Expect(repo.Create(&company.Company{ID: "company-b", Name: "Globex", Email: "globex@example.com"})).To(Succeed())
		})

		It("should return everything for an unrestricted scope", func() {
			companies, err := repo.List(auth.Scope{})
			Expect(err).NotTo(HaveOccurred())
			Expect(companies).To(HaveLen(2))
		})

		It("should narrow a tenant scope to that company", func() {
			companies, err := repo.List(auth.Scope{CompanyID: "company-a"})
			Expect(err).NotTo(HaveOccurred())
			Expect(companies).To(HaveLen(1))
			Expect(companies[0].Name).To(Equal("Acme"))
		})

		It("should return nothing for an owner-only scope", func() {
			companies, err := repo.List(auth.Scope{OwnerUserID: "user-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(companies).To(BeEmpty())
		})
	})

	Describe("EmailExists", func() {
		It("should reflect stored companies", func() {
			Expect(repo.Create(&company.Company{Name: "Acme", Email: "acme@example.com"})).To(Succeed())

			exists, err := repo.EmailExists("acme@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = repo.EmailExists("nobody@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("Update", func() {
		It("should persist field changes including the logo", func() {
			c := &company.Company{Name: "Acme", Email: "acme@example.com"}
			Expect(repo.Create(c)).To(Succeed())

			logo := "https://cdn.example.com/logo.png"
			c.Logo = &logo
			c.City = "Berlin"
			Expect(repo.Update(c)).To(Succeed())

			loaded, err := repo.GetByID(c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Logo).NotTo(BeNil())
			Expect(*loaded.Logo).To(Equal(logo))
			Expect(loaded.City).To(Equal("Berlin"))
		})
	})

	Describe("Delete", func() {
		It("should remove the record", func() {
			c := &company.Company{Name: "Acme", Email: "acme@example.com"}
			Expect(repo.Create(c)).To(Succeed())

			Expect(repo.Delete(c.ID)).To(Succeed())

			_, err := repo.GetByID(c.ID)
			Expect(err).To(HaveOccurred())
		})

		It("should error on an unknown id", func() {
			Expect(repo.Delete("company-404")).To(HaveOccurred())
		})
	})
})
