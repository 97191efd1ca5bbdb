package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	companyDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/company"
	userDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-directory/internal/user"
	userPostgres "github.com/frahmantamala/hr-directory/internal/user/postgres"
)

func TestUserPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Postgres Suite")
}

var _ = Describe("User Repository", func() {
	var (
		db   *gorm.DB
		repo user.Repository
	)

	seed := func(id, email, role string) {
		Expect(db.Create(&userDatamodel.User{
			ID:           id,
			Email:        email,
			PasswordHash: "seed-hash",
			Role:         role,
			IsActive:     true,
		}).Error).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&companyDatamodel.Company{}, &userDatamodel.User{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&companyDatamodel.Company{ID: "company-a", Name: "Acme", Email: "acme@example.com", Status: "active"}).Error).To(Succeed())

		repo = userPostgres.NewUserRepository(db)
	})

	Describe("GetByID and List", func() {
		It("should load stored accounts", func() {
			seed("u1", "one@example.com", "employee")
			seed("u2", "two@example.com", "company_admin")

			loaded, err := repo.GetByID("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Email).To(Equal("one@example.com"))

			users, err := repo.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
		})
	})

	Describe("EmailExists", func() {
		It("should ignore the excluded account", func() {
			seed("u1", "one@example.com", "employee")

			exists, err := repo.EmailExists("one@example.com", "u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())

			exists, err = repo.EmailExists("one@example.com", "u2")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("should persist profile changes without touching the hash", func() {
			seed("u1", "one@example.com", "employee")

			loaded, err := repo.GetByID("u1")
			Expect(err).NotTo(HaveOccurred())

			companyA := "company-a"
			loaded.FirstName = "Ada"
			loaded.Role = "company_admin"
			loaded.CompanyID = &companyA
			Expect(repo.Update(loaded)).To(Succeed())

			var record userDatamodel.User
			Expect(db.Where("id = ?", "u1").First(&record).Error).To(Succeed())
			Expect(record.FirstName).To(Equal("Ada"))
			Expect(record.Role).To(Equal("company_admin"))
			Expect(record.CompanyID).NotTo(BeNil())
			Expect(record.PasswordHash).To(Equal("seed-hash"))
		})
	})

	Describe("UpdatePassword", func() {
		It("should replace only the hash", func() {
			seed("u1", "one@example.com", "employee")

			Expect(repo.UpdatePassword("u1", "new-hash")).To(Succeed())

			var record userDatamodel.User
			Expect(db.Where("id = ?", "u1").First(&record).Error).To(Succeed())
			Expect(record.PasswordHash).To(Equal("new-hash"))
			Expect(record.Email).To(Equal("one@example.com"))
		})
	})
})
