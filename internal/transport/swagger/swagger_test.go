package swagger_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSwagger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Swagger Suite")
}

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should be a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(openapi3.NewLoader().Context)).To(Succeed())
	})

	It("should document every route the router serves", func() {
		for _, path := range []string{
			"/health",
			"/ping",
			"/auth/register",
			"/auth/login",
			"/auth/me",
			"/companies",
			"/companies/public",
			"/companies/{id}",
			"/companies/{id}/status",
			"/employees",
			"/employees/company/{companyId}",
			"/employees/{id}",
			"/employees/{id}/background",
			"/users",
			"/users/{id}",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("should keep the public endpoints free of security requirements", func() {
		Expect(doc.Paths.Find("/employees/{id}").Get.Security).To(BeNil())
		Expect(doc.Paths.Find("/companies/public").Post.Security).To(BeNil())
	})
})
