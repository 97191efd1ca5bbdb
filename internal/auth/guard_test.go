package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Tenant guard", func() {
	var (
		companyA = "company-a"
		companyB = "company-b"

		superadmin *User
		admin      *User
		worker     *User
	)

	ginkgo.BeforeEach(func() {
		superadmin = &User{ID: "sa", Role: RoleSuperAdmin}
		admin = &User{ID: "ca", Role: RoleCompanyAdmin, CompanyID: &companyA}
		worker = &User{ID: "emp", Role: RoleEmployee, CompanyID: &companyA}
	})

	ginkgo.Describe("ScopeFor", func() {
		ginkgo.It("should leave superadmins unrestricted", func() {
			gomega.Expect(ScopeFor(superadmin).Unrestricted()).To(gomega.BeTrue())
		})

		ginkgo.It("should pin company admins to their tenant", func() {
			scope := ScopeFor(admin)
			gomega.Expect(scope.CompanyID).To(gomega.Equal(companyA))
			gomega.Expect(scope.OwnerUserID).To(gomega.BeEmpty())
		})

		ginkgo.It("should pin employees to their own records", func() {
			scope := ScopeFor(worker)
			gomega.Expect(scope.OwnerUserID).To(gomega.Equal("emp"))
			gomega.Expect(scope.CompanyID).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("CanAccessCompany", func() {
		ginkgo.It("should allow superadmins everywhere", func() {
			gomega.Expect(CanAccessCompany(superadmin, companyA)).To(gomega.BeTrue())
			gomega.Expect(CanAccessCompany(superadmin, companyB)).To(gomega.BeTrue())
		})

		ginkgo.It("should restrict company admins to their own tenant", func() {
			gomega.Expect(CanAccessCompany(admin, companyA)).To(gomega.BeTrue())
			gomega.Expect(CanAccessCompany(admin, companyB)).To(gomega.BeFalse())
		})

		ginkgo.It("should deny a company admin without a tenant binding", func() {
			unbound := &User{ID: "ca2", Role: RoleCompanyAdmin}
			gomega.Expect(CanAccessCompany(unbound, companyA)).To(gomega.BeFalse())
		})

		ginkgo.It("should deny employees outright", func() {
			gomega.Expect(CanAccessCompany(worker, companyA)).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("CanAccessEmployeeRecord", func() {
		ginkgo.It("should allow a company admin within their tenant only", func() {
			owner := "someone-else"
			gomega.Expect(CanAccessEmployeeRecord(admin, companyA, &owner)).To(gomega.BeTrue())
			gomega.Expect(CanAccessEmployeeRecord(admin, companyB, &owner)).To(gomega.BeFalse())
		})

		ginkgo.It("should allow an employee only on records bound to their account", func() {
			own := "emp"
			other := "someone-else"
			gomega.Expect(CanAccessEmployeeRecord(worker, companyA, &own)).To(gomega.BeTrue())
			gomega.Expect(CanAccessEmployeeRecord(worker, companyA, &other)).To(gomega.BeFalse())
			gomega.Expect(CanAccessEmployeeRecord(worker, companyA, nil)).To(gomega.BeFalse())
		})

		ginkgo.It("should allow superadmins on any record", func() {
			gomega.Expect(CanAccessEmployeeRecord(superadmin, companyB, nil)).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("CanAccessUser", func() {
		ginkgo.It("should allow self-service and superadmin access only", func() {
			gomega.Expect(CanAccessUser(worker, "emp")).To(gomega.BeTrue())
			gomega.Expect(CanAccessUser(worker, "other")).To(gomega.BeFalse())
			gomega.Expect(CanAccessUser(superadmin, "other")).To(gomega.BeTrue())
		})
	})
})

var _ = ginkgo.Describe("CompanyRef", func() {
	ginkgo.It("should accept a plain id string", func() {
		var ref CompanyRef
		gomega.Expect(ref.UnmarshalJSON([]byte(`"company-1"`))).To(gomega.Succeed())
		gomega.Expect(ref.String()).To(gomega.Equal("company-1"))
	})

	ginkgo.It("should accept an embedded company object", func() {
		var ref CompanyRef
		gomega.Expect(ref.UnmarshalJSON([]byte(`{"id":"company-2","name":"Acme"}`))).To(gomega.Succeed())
		gomega.Expect(ref.String()).To(gomega.Equal("company-2"))
	})

	ginkgo.It("should treat null as unbound", func() {
		var ref CompanyRef
		gomega.Expect(ref.UnmarshalJSON([]byte(`null`))).To(gomega.Succeed())
		gomega.Expect(ref.IsZero()).To(gomega.BeTrue())
	})
})
