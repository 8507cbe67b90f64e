package resource_test

import (
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var _ = Describe("ParsePage", func() {
	DescribeTable("accepted windows",
		func(query string, want resource.Page) {
			q, err := url.ParseQuery(query)
			Expect(err).NotTo(HaveOccurred())

			page, err := resource.ParsePage(q)
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(Equal(want))
		},
		Entry("defaults", "", resource.Page{Offset: 0, Limit: 100}),
		Entry("explicit", "skip=1&limit=2", resource.Page{Offset: 1, Limit: 2}),
		Entry("zero limit", "limit=0", resource.Page{Offset: 0, Limit: 0}),
		Entry("clamped", "limit=50000", resource.Page{Offset: 0, Limit: resource.MaxLimit}),
	)

	It("rejects negative and non-numeric values", func() {
		_, err := resource.ParsePage(url.Values{"skip": {"-1"}, "limit": {"ten"}})
		Expect(err).To(HaveOccurred())
		Expect(statusOf(err)).To(Equal(422))
		Expect(err).To(MatchError("skip must be a non-negative integer"))
	})
})
